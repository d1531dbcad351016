package usecases

import (
	"context"
	"time"

	"github.com/gestio-app/gestio/internal/application/client/dto"
	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/domain/client"
	vo "github.com/gestio-app/gestio/internal/domain/client/valueobjects"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

type UpdateClientCommand struct {
	ClientID          uint
	Name              string
	Surname           string
	CompanyName       *string
	VATNumber         *string
	Address           string
	Email             string
	IBAN              string
	Notes             string
	SubscriptionStart time.Time
	SubscriptionEnd   time.Time
	SubscriptionType  string
	ProductID         *uint
	SellerID          *uint
}

type UpdateClientUseCase struct {
	clientRepo  client.Repository
	productRepo catalog.ProductRepository
	sellerRepo  catalog.SellerRepository
	logger      logger.Interface
}

func NewUpdateClientUseCase(
	clientRepo client.Repository,
	productRepo catalog.ProductRepository,
	sellerRepo catalog.SellerRepository,
	logger logger.Interface,
) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		logger:      logger,
	}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, cmd UpdateClientCommand) (*dto.ClientDTO, error) {
	c, err := uc.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("client not found")
		}
		uc.logger.Errorw("failed to load client", "error", err, "client_id", cmd.ClientID)
		return nil, apperrors.NewInternalError("failed to load client")
	}

	sub, err := client.NewSubscription(cmd.SubscriptionStart, cmd.SubscriptionEnd)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	subType, err := vo.ParseSubscriptionType(cmd.SubscriptionType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	product, seller, err := resolveRefs(ctx, uc.productRepo, uc.sellerRepo, cmd.ProductID, cmd.SellerID)
	if err != nil {
		return nil, err
	}

	if err := c.UpdateDetails(client.UpdateDetailsParams{
		Name:        cmd.Name,
		Surname:     cmd.Surname,
		CompanyName: cmd.CompanyName,
		VATNumber:   cmd.VATNumber,
		Address:     cmd.Address,
		Email:       cmd.Email,
		IBAN:        cmd.IBAN,
		Notes:       cmd.Notes,
	}); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := c.UpdateSubscription(sub, subType); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	c.AssignProduct(cmd.ProductID)
	c.AssignSeller(cmd.SellerID)

	if err := uc.clientRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update client", "error", err, "client_id", c.ID())
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("a client with this email already exists")
		}
		return nil, apperrors.NewInternalError("failed to update client")
	}

	uc.logger.Infow("client updated", "client_id", c.ID())
	return dto.ToClientDTO(c, product, seller, time.Now().UTC()), nil
}
