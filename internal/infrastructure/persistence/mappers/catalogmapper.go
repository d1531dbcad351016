package mappers

import (
	"fmt"

	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/infrastructure/persistence/models"
)

type ProductMapper interface {
	ToEntity(model *models.ProductModel) (*catalog.Product, error)
	ToModel(entity *catalog.Product) *models.ProductModel
	ToEntities(models []*models.ProductModel) ([]*catalog.Product, error)
}

type ProductMapperImpl struct{}

func NewProductMapper() ProductMapper {
	return &ProductMapperImpl{}
}

func (m *ProductMapperImpl) ToEntity(model *models.ProductModel) (*catalog.Product, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := catalog.ReconstructProduct(model.ID, model.SID, model.Name, model.Price, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct product entity: %w", err)
	}
	return entity, nil
}

func (m *ProductMapperImpl) ToModel(entity *catalog.Product) *models.ProductModel {
	if entity == nil {
		return nil
	}
	return &models.ProductModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		Name:      entity.Name(),
		Price:     entity.Price(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *ProductMapperImpl) ToEntities(modelList []*models.ProductModel) ([]*catalog.Product, error) {
	entities := make([]*catalog.Product, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}

type SellerMapper interface {
	ToEntity(model *models.SellerModel) (*catalog.Seller, error)
	ToModel(entity *catalog.Seller) *models.SellerModel
	ToEntities(models []*models.SellerModel) ([]*catalog.Seller, error)
}

type SellerMapperImpl struct{}

func NewSellerMapper() SellerMapper {
	return &SellerMapperImpl{}
}

func (m *SellerMapperImpl) ToEntity(model *models.SellerModel) (*catalog.Seller, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := catalog.ReconstructSeller(model.ID, model.SID, model.Name, model.CommissionRate, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct seller entity: %w", err)
	}
	return entity, nil
}

func (m *SellerMapperImpl) ToModel(entity *catalog.Seller) *models.SellerModel {
	if entity == nil {
		return nil
	}
	return &models.SellerModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		Name:           entity.Name(),
		CommissionRate: entity.CommissionRate(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *SellerMapperImpl) ToEntities(modelList []*models.SellerModel) ([]*catalog.Seller, error) {
	entities := make([]*catalog.Seller, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
