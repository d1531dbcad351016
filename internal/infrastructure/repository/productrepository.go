package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/infrastructure/persistence/mappers"
	"github.com/gestio-app/gestio/internal/infrastructure/persistence/models"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
}

func NewProductRepository(db *gorm.DB) catalog.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mappers.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, p *catalog.Product) error {
	model := r.mapper.ToModel(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set product ID: %w", err)
	}
	return nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, productID uint) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("product not found")
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ProductRepositoryImpl) ListAll(ctx context.Context) ([]*catalog.Product, error) {
	var modelList []*models.ProductModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, p *catalog.Product) error {
	model := r.mapper.ToModel(p)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("product not found")
	}
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, productID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductModel{}, productID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("product not found")
	}
	return nil
}
