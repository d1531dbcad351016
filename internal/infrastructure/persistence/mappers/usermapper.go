package mappers

import (
	"fmt"

	"github.com/gestio-app/gestio/internal/domain/user"
	"github.com/gestio-app/gestio/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := user.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		model.LastLoginAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}
	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID(),
		Email:        entity.Email(),
		Name:         entity.Name(),
		PasswordHash: entity.PasswordHash(),
		LastLoginAt:  entity.LastLoginAt(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}
