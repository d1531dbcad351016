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

type SellerRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SellerMapper
}

func NewSellerRepository(db *gorm.DB) catalog.SellerRepository {
	return &SellerRepositoryImpl{
		db:     db,
		mapper: mappers.NewSellerMapper(),
	}
}

func (r *SellerRepositoryImpl) Create(ctx context.Context, s *catalog.Seller) error {
	model := r.mapper.ToModel(s)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create seller: %w", err)
	}
	if err := s.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set seller ID: %w", err)
	}
	return nil
}

func (r *SellerRepositoryImpl) GetByID(ctx context.Context, sellerID uint) (*catalog.Seller, error) {
	var model models.SellerModel
	if err := r.db.WithContext(ctx).First(&model, sellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("seller not found")
		}
		return nil, fmt.Errorf("failed to get seller by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *SellerRepositoryImpl) ListAll(ctx context.Context) ([]*catalog.Seller, error) {
	var modelList []*models.SellerModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

func (r *SellerRepositoryImpl) Update(ctx context.Context, s *catalog.Seller) error {
	model := r.mapper.ToModel(s)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update seller: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("seller not found")
	}
	return nil
}

func (r *SellerRepositoryImpl) Delete(ctx context.Context, sellerID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SellerModel{}, sellerID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete seller: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("seller not found")
	}
	return nil
}
