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

type CreateSellerCommand struct {
	Name           string
	CommissionRate decimal.Decimal
}

type CreateSellerUseCase struct {
	sellerRepo catalog.SellerRepository
	logger     logger.Interface
}

func NewCreateSellerUseCase(sellerRepo catalog.SellerRepository, logger logger.Interface) *CreateSellerUseCase {
	return &CreateSellerUseCase{sellerRepo: sellerRepo, logger: logger}
}

func (uc *CreateSellerUseCase) Execute(ctx context.Context, cmd CreateSellerCommand) (*dto.SellerDTO, error) {
	s, err := catalog.NewSeller(cmd.Name, cmd.CommissionRate)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.sellerRepo.Create(ctx, s); err != nil {
		uc.logger.Errorw("failed to persist seller", "error", err, "name", cmd.Name)
		return nil, apperrors.NewInternalError("failed to create seller")
	}
	uc.logger.Infow("seller created", "seller_id", s.ID(), "sid", s.SID())
	return dto.ToSellerDTO(s), nil
}

type UpdateSellerCommand struct {
	SellerID       uint
	Name           string
	CommissionRate decimal.Decimal
}

type UpdateSellerUseCase struct {
	sellerRepo catalog.SellerRepository
	logger     logger.Interface
}

func NewUpdateSellerUseCase(sellerRepo catalog.SellerRepository, logger logger.Interface) *UpdateSellerUseCase {
	return &UpdateSellerUseCase{sellerRepo: sellerRepo, logger: logger}
}

func (uc *UpdateSellerUseCase) Execute(ctx context.Context, cmd UpdateSellerCommand) (*dto.SellerDTO, error) {
	s, err := uc.sellerRepo.GetByID(ctx, cmd.SellerID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("seller not found")
		}
		return nil, apperrors.NewInternalError("failed to load seller")
	}
	if err := s.Update(cmd.Name, cmd.CommissionRate); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.sellerRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update seller", "error", err, "seller_id", s.ID())
		return nil, apperrors.NewInternalError("failed to update seller")
	}
	return dto.ToSellerDTO(s), nil
}

type DeleteSellerCommand struct {
	SellerID uint
}

// DeleteSellerUseCase removes a seller and clears the reference on every
// client credited to it.
type DeleteSellerUseCase struct {
	sellerRepo catalog.SellerRepository
	clientRepo client.Repository
	logger     logger.Interface
}

func NewDeleteSellerUseCase(
	sellerRepo catalog.SellerRepository,
	clientRepo client.Repository,
	logger logger.Interface,
) *DeleteSellerUseCase {
	return &DeleteSellerUseCase{sellerRepo: sellerRepo, clientRepo: clientRepo, logger: logger}
}

func (uc *DeleteSellerUseCase) Execute(ctx context.Context, cmd DeleteSellerCommand) error {
	if _, err := uc.sellerRepo.GetByID(ctx, cmd.SellerID); err != nil {
		if apperrors.IsNotFoundError(err) {
			return apperrors.NewNotFoundError("seller not found")
		}
		return apperrors.NewInternalError("failed to load seller")
	}

	if err := uc.clientRepo.ClearSellerRefs(ctx, cmd.SellerID); err != nil {
		uc.logger.Errorw("failed to clear seller references", "error", err, "seller_id", cmd.SellerID)
		return apperrors.NewInternalError("failed to unassign clients from seller")
	}
	if err := uc.sellerRepo.Delete(ctx, cmd.SellerID); err != nil {
		uc.logger.Errorw("failed to delete seller", "error", err, "seller_id", cmd.SellerID)
		return apperrors.NewInternalError("failed to delete seller")
	}

	uc.logger.Infow("seller deleted", "seller_id", cmd.SellerID)
	return nil
}

type ListSellersUseCase struct {
	sellerRepo catalog.SellerRepository
	logger     logger.Interface
}

func NewListSellersUseCase(sellerRepo catalog.SellerRepository, logger logger.Interface) *ListSellersUseCase {
	return &ListSellersUseCase{sellerRepo: sellerRepo, logger: logger}
}

func (uc *ListSellersUseCase) Execute(ctx context.Context) ([]*dto.SellerDTO, error) {
	sellers, err := uc.sellerRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list sellers", "error", err)
		return nil, apperrors.NewInternalError("failed to list sellers")
	}
	return dto.ToSellerDTOs(sellers), nil
}
