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

type CreateClientCommand struct {
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

type CreateClientUseCase struct {
	clientRepo  client.Repository
	productRepo catalog.ProductRepository
	sellerRepo  catalog.SellerRepository
	logger      logger.Interface
}

func NewCreateClientUseCase(
	clientRepo client.Repository,
	productRepo catalog.ProductRepository,
	sellerRepo catalog.SellerRepository,
	logger logger.Interface,
) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		logger:      logger,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error) {
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

	c, err := client.NewClient(client.NewClientParams{
		Name:             cmd.Name,
		Surname:          cmd.Surname,
		CompanyName:      cmd.CompanyName,
		VATNumber:        cmd.VATNumber,
		Address:          cmd.Address,
		Email:            cmd.Email,
		IBAN:             cmd.IBAN,
		Notes:            cmd.Notes,
		Subscription:     sub,
		SubscriptionType: subType,
		ProductID:        cmd.ProductID,
		SellerID:         cmd.SellerID,
	})
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to persist client", "error", err, "email", cmd.Email)
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("a client with this email already exists")
		}
		return nil, apperrors.NewInternalError("failed to create client")
	}

	uc.logger.Infow("client created", "client_id", c.ID(), "sid", c.SID())
	return dto.ToClientDTO(c, product, seller, time.Now().UTC()), nil
}

// resolveRefs loads the referenced product and seller, rejecting IDs that
// do not exist. Nil IDs resolve to nil without error.
func resolveRefs(
	ctx context.Context,
	productRepo catalog.ProductRepository,
	sellerRepo catalog.SellerRepository,
	productID, sellerID *uint,
) (*catalog.Product, *catalog.Seller, error) {
	var product *catalog.Product
	var seller *catalog.Seller

	if productID != nil {
		p, err := productRepo.GetByID(ctx, *productID)
		if err != nil {
			if apperrors.IsNotFoundError(err) {
				return nil, nil, apperrors.NewValidationError("referenced product does not exist")
			}
			return nil, nil, apperrors.NewInternalError("failed to load product")
		}
		product = p
	}
	if sellerID != nil {
		s, err := sellerRepo.GetByID(ctx, *sellerID)
		if err != nil {
			if apperrors.IsNotFoundError(err) {
				return nil, nil, apperrors.NewValidationError("referenced seller does not exist")
			}
			return nil, nil, apperrors.NewInternalError("failed to load seller")
		}
		seller = s
	}
	return product, seller, nil
}
