package usecases

import (
	"context"

	"github.com/gestio-app/gestio/internal/domain/client"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

type DeleteClientCommand struct {
	ClientID uint
}

type DeleteClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewDeleteClientUseCase(clientRepo client.Repository, logger logger.Interface) *DeleteClientUseCase {
	return &DeleteClientUseCase{clientRepo: clientRepo, logger: logger}
}

func (uc *DeleteClientUseCase) Execute(ctx context.Context, cmd DeleteClientCommand) error {
	if _, err := uc.clientRepo.GetByID(ctx, cmd.ClientID); err != nil {
		if apperrors.IsNotFoundError(err) {
			return apperrors.NewNotFoundError("client not found")
		}
		return apperrors.NewInternalError("failed to load client")
	}

	if err := uc.clientRepo.Delete(ctx, cmd.ClientID); err != nil {
		uc.logger.Errorw("failed to delete client", "error", err, "client_id", cmd.ClientID)
		return apperrors.NewInternalError("failed to delete client")
	}

	uc.logger.Infow("client deleted", "client_id", cmd.ClientID)
	return nil
}
