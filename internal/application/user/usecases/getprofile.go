package usecases

import (
	"context"

	"github.com/gestio-app/gestio/internal/application/user/dto"
	"github.com/gestio-app/gestio/internal/domain/user"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to load user", "error", err, "user_id", query.UserID)
		return nil, apperrors.NewInternalError("failed to load user")
	}
	return dto.ToUserDTO(u), nil
}
