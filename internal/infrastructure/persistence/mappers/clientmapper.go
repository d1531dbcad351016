package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/gestio-app/gestio/internal/domain/client"
	vo "github.com/gestio-app/gestio/internal/domain/client/valueobjects"
	"github.com/gestio-app/gestio/internal/infrastructure/persistence/models"
)

type ClientMapper interface {
	ToEntity(model *models.ClientModel) (*client.Client, error)
	ToModel(entity *client.Client) (*models.ClientModel, error)
	ToEntities(models []*models.ClientModel) ([]*client.Client, error)
}

type ClientMapperImpl struct{}

func NewClientMapper() ClientMapper {
	return &ClientMapperImpl{}
}

func (m *ClientMapperImpl) ToEntity(model *models.ClientModel) (*client.Client, error) {
	if model == nil {
		return nil, nil
	}

	sub, err := client.NewSubscription(model.SubscriptionStart, model.SubscriptionEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild subscription: %w", err)
	}

	subType, err := vo.ParseSubscriptionType(model.SubscriptionType)
	if err != nil {
		return nil, fmt.Errorf("failed to parse subscription type: %w", err)
	}

	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to decode client metadata: %w", err)
		}
	}

	entity, err := client.ReconstructClient(client.ReconstructParams{
		ID:               model.ID,
		SID:              model.SID,
		UUID:             model.UUID,
		Name:             model.Name,
		Surname:          model.Surname,
		CompanyName:      model.CompanyName,
		VATNumber:        model.VATNumber,
		Address:          model.Address,
		Email:            model.Email,
		IBAN:             model.IBAN,
		Notes:            model.Notes,
		Subscription:     sub,
		SubscriptionType: subType,
		ProductID:        model.ProductID,
		SellerID:         model.SellerID,
		Metadata:         metadata,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct client entity: %w", err)
	}
	return entity, nil
}

func (m *ClientMapperImpl) ToModel(entity *client.Client) (*models.ClientModel, error) {
	if entity == nil {
		return nil, nil
	}

	var metadata datatypes.JSON
	if entity.Metadata() != nil {
		raw, err := json.Marshal(entity.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to encode client metadata: %w", err)
		}
		metadata = raw
	}

	return &models.ClientModel{
		ID:                entity.ID(),
		SID:               entity.SID(),
		UUID:              entity.UUID(),
		Name:              entity.Name(),
		Surname:           entity.Surname(),
		CompanyName:       entity.CompanyName(),
		VATNumber:         entity.VATNumber(),
		Address:           entity.Address(),
		Email:             entity.Email(),
		IBAN:              entity.IBAN(),
		Notes:             entity.Notes(),
		SubscriptionStart: entity.Subscription().Start(),
		SubscriptionEnd:   entity.Subscription().End(),
		SubscriptionType:  entity.SubscriptionType().String(),
		ProductID:         entity.ProductID(),
		SellerID:          entity.SellerID(),
		Metadata:          metadata,
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *ClientMapperImpl) ToEntities(modelList []*models.ClientModel) ([]*client.Client, error) {
	entities := make([]*client.Client, 0, len(modelList))
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
