package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gestio-app/gestio/internal/domain/client"
	"github.com/gestio-app/gestio/internal/infrastructure/persistence/mappers"
	"github.com/gestio-app/gestio/internal/infrastructure/persistence/models"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
)

type ClientRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ClientMapper
}

func NewClientRepository(db *gorm.DB) client.Repository {
	return &ClientRepositoryImpl{
		db:     db,
		mapper: mappers.NewClientMapper(),
	}
}

func (r *ClientRepositoryImpl) Create(ctx context.Context, c *client.Client) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map client entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set client ID: %w", err)
	}
	return nil
}

func (r *ClientRepositoryImpl) CreateBatch(ctx context.Context, clients []*client.Client) error {
	if len(clients) == 0 {
		return nil
	}

	modelList := make([]*models.ClientModel, 0, len(clients))
	for _, c := range clients {
		model, err := r.mapper.ToModel(c)
		if err != nil {
			return fmt.Errorf("failed to map client entity to model: %w", err)
		}
		modelList = append(modelList, model)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&modelList).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create clients in batch: %w", err)
	}

	for i, c := range clients {
		if err := c.SetID(modelList[i].ID); err != nil {
			return fmt.Errorf("failed to set client ID: %w", err)
		}
	}
	return nil
}

func (r *ClientRepositoryImpl) GetByID(ctx context.Context, clientID uint) (*client.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("client not found")
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ClientRepositoryImpl) GetBySID(ctx context.Context, sid string) (*client.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("client not found")
		}
		return nil, fmt.Errorf("failed to get client by SID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ClientRepositoryImpl) List(ctx context.Context, filter client.Filter) ([]*client.Client, error) {
	query := r.db.WithContext(ctx).Model(&models.ClientModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name LIKE ? OR surname LIKE ? OR email LIKE ? OR company_name LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.SubscriptionType != "" {
		query = query.Where("subscription_type = ?", filter.SubscriptionType)
	}

	var modelList []*models.ClientModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

func (r *ClientRepositoryImpl) ListAll(ctx context.Context) ([]*client.Client, error) {
	var modelList []*models.ClientModel
	if err := r.db.WithContext(ctx).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

func (r *ClientRepositoryImpl) Update(ctx context.Context, c *client.Client) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map client entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("client not found")
	}
	return nil
}

func (r *ClientRepositoryImpl) Delete(ctx context.Context, clientID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ClientModel{}, clientID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("client not found")
	}
	return nil
}

func (r *ClientRepositoryImpl) ClearProductRefs(ctx context.Context, productID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("product_id = ?", productID).
		Update("product_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to clear product references: %w", err)
	}
	return nil
}

func (r *ClientRepositoryImpl) ClearSellerRefs(ctx context.Context, sellerID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("seller_id = ?", sellerID).
		Update("seller_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to clear seller references: %w", err)
	}
	return nil
}
