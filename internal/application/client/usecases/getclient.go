package usecases

import (
	"context"
	"time"

	"github.com/gestio-app/gestio/internal/application/client/dto"
	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/domain/client"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

// NotesRenderer turns free-text client notes into sanitized HTML.
type NotesRenderer interface {
	Render(markdown string) (string, error)
}

type GetClientQuery struct {
	ClientID uint
}

type GetClientUseCase struct {
	clientRepo  client.Repository
	productRepo catalog.ProductRepository
	sellerRepo  catalog.SellerRepository
	notes       NotesRenderer
	logger      logger.Interface
}

func NewGetClientUseCase(
	clientRepo client.Repository,
	productRepo catalog.ProductRepository,
	sellerRepo catalog.SellerRepository,
	notes NotesRenderer,
	logger logger.Interface,
) *GetClientUseCase {
	return &GetClientUseCase{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		notes:       notes,
		logger:      logger,
	}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, query GetClientQuery) (*dto.ClientDTO, error) {
	c, err := uc.clientRepo.GetByID(ctx, query.ClientID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("client not found")
		}
		uc.logger.Errorw("failed to load client", "error", err, "client_id", query.ClientID)
		return nil, apperrors.NewInternalError("failed to load client")
	}

	product, seller := lookupRefs(ctx, uc.productRepo, uc.sellerRepo, c)

	d := dto.ToClientDTO(c, product, seller, time.Now().UTC())
	if uc.notes != nil && c.Notes() != "" {
		html, err := uc.notes.Render(c.Notes())
		if err != nil {
			uc.logger.Warnw("failed to render client notes", "error", err, "client_id", c.ID())
		} else {
			d.NotesHTML = html
		}
	}
	return d, nil
}

// lookupRefs resolves a client's product and seller, tolerating dangling
// references. A missing reference simply yields nil.
func lookupRefs(
	ctx context.Context,
	productRepo catalog.ProductRepository,
	sellerRepo catalog.SellerRepository,
	c *client.Client,
) (*catalog.Product, *catalog.Seller) {
	var product *catalog.Product
	var seller *catalog.Seller
	if c.ProductID() != nil {
		if p, err := productRepo.GetByID(ctx, *c.ProductID()); err == nil {
			product = p
		}
	}
	if c.SellerID() != nil {
		if s, err := sellerRepo.GetByID(ctx, *c.SellerID()); err == nil {
			seller = s
		}
	}
	return product, seller
}
