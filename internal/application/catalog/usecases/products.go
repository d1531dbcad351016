package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gestio-app/gestio/internal/application/catalog/dto"
	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/domain/client"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

type CreateProductCommand struct {
	Name  string
	Price decimal.Decimal
}

type CreateProductUseCase struct {
	productRepo catalog.ProductRepository
	logger      logger.Interface
}

func NewCreateProductUseCase(productRepo catalog.ProductRepository, logger logger.Interface) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo, logger: logger}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*dto.ProductDTO, error) {
	p, err := catalog.NewProduct(cmd.Name, cmd.Price)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.productRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to persist product", "error", err, "name", cmd.Name)
		return nil, apperrors.NewInternalError("failed to create product")
	}
	uc.logger.Infow("product created", "product_id", p.ID(), "sid", p.SID())
	return dto.ToProductDTO(p), nil
}

type UpdateProductCommand struct {
	ProductID uint
	Name      string
	Price     decimal.Decimal
}

type UpdateProductUseCase struct {
	productRepo catalog.ProductRepository
	logger      logger.Interface
}

func NewUpdateProductUseCase(productRepo catalog.ProductRepository, logger logger.Interface) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo, logger: logger}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, cmd UpdateProductCommand) (*dto.ProductDTO, error) {
	p, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("product not found")
		}
		return nil, apperrors.NewInternalError("failed to load product")
	}
	if err := p.Update(cmd.Name, cmd.Price); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.productRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update product", "error", err, "product_id", p.ID())
		return nil, apperrors.NewInternalError("failed to update product")
	}
	return dto.ToProductDTO(p), nil
}

type DeleteProductCommand struct {
	ProductID uint
}

// DeleteProductUseCase removes a product and clears the reference on every
// client that pointed at it. Clients are never cascade-deleted.
type DeleteProductUseCase struct {
	productRepo catalog.ProductRepository
	clientRepo  client.Repository
	logger      logger.Interface
}

func NewDeleteProductUseCase(
	productRepo catalog.ProductRepository,
	clientRepo client.Repository,
	logger logger.Interface,
) *DeleteProductUseCase {
	return &DeleteProductUseCase{productRepo: productRepo, clientRepo: clientRepo, logger: logger}
}

func (uc *DeleteProductUseCase) Execute(ctx context.Context, cmd DeleteProductCommand) error {
	if _, err := uc.productRepo.GetByID(ctx, cmd.ProductID); err != nil {
		if apperrors.IsNotFoundError(err) {
			return apperrors.NewNotFoundError("product not found")
		}
		return apperrors.NewInternalError("failed to load product")
	}

	if err := uc.clientRepo.ClearProductRefs(ctx, cmd.ProductID); err != nil {
		uc.logger.Errorw("failed to clear product references", "error", err, "product_id", cmd.ProductID)
		return apperrors.NewInternalError("failed to unassign clients from product")
	}
	if err := uc.productRepo.Delete(ctx, cmd.ProductID); err != nil {
		uc.logger.Errorw("failed to delete product", "error", err, "product_id", cmd.ProductID)
		return apperrors.NewInternalError("failed to delete product")
	}

	uc.logger.Infow("product deleted", "product_id", cmd.ProductID)
	return nil
}

type ListProductsUseCase struct {
	productRepo catalog.ProductRepository
	logger      logger.Interface
}

func NewListProductsUseCase(productRepo catalog.ProductRepository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo, logger: logger}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context) ([]*dto.ProductDTO, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, apperrors.NewInternalError("failed to list products")
	}
	return dto.ToProductDTOs(products), nil
}
