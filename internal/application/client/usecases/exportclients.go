package usecases

import (
	"context"
	"sort"

	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/domain/client"
	"github.com/gestio-app/gestio/internal/shared/biztime"
	"github.com/gestio-app/gestio/internal/shared/constants"
	"github.com/gestio-app/gestio/internal/shared/csvutil"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

const exportDateLayout = "02/01/2006"

var clientExportHeaders = []string{
	"Nome",
	"Cognome",
	"Nome Azienda",
	"Partita IVA",
	"Email",
	"Indirizzo",
	"Prodotto",
	"Prezzo Prodotto (€)",
	"Venditore",
	"Inizio Abbonamento",
	"Fine Abbonamento",
	"IBAN",
	"Info Aggiuntive",
}

type ExportClientsUseCase struct {
	clientRepo  client.Repository
	productRepo catalog.ProductRepository
	sellerRepo  catalog.SellerRepository
	logger      logger.Interface
}

func NewExportClientsUseCase(
	clientRepo client.Repository,
	productRepo catalog.ProductRepository,
	sellerRepo catalog.SellerRepository,
	logger logger.Interface,
) *ExportClientsUseCase {
	return &ExportClientsUseCase{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		logger:      logger,
	}
}

// Execute renders the full client list as CSV, sorted by subscription end
// ascending. Every field is quoted; dangling references export as the
// unassigned label with price "N/A".
func (uc *ExportClientsUseCase) Execute(ctx context.Context) ([]byte, error) {
	clients, err := uc.clientRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, apperrors.NewInternalError("failed to list clients")
	}
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, apperrors.NewInternalError("failed to list products")
	}
	sellers, err := uc.sellerRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list sellers", "error", err)
		return nil, apperrors.NewInternalError("failed to list sellers")
	}

	productIdx := make(map[uint]*catalog.Product, len(products))
	for _, p := range products {
		productIdx[p.ID()] = p
	}
	sellerIdx := make(map[uint]*catalog.Seller, len(sellers))
	for _, s := range sellers {
		sellerIdx[s.ID()] = s
	}

	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].Subscription().End().Before(clients[j].Subscription().End())
	})

	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		productName := constants.UnassignedLabel
		productPrice := "N/A"
		if c.ProductID() != nil {
			if p, ok := productIdx[*c.ProductID()]; ok {
				productName = p.Name()
				productPrice = p.Price().StringFixed(2)
			}
		}
		sellerName := constants.UnassignedLabel
		if c.SellerID() != nil {
			if s, ok := sellerIdx[*c.SellerID()]; ok {
				sellerName = s.Name()
			}
		}

		rows = append(rows, []string{
			c.Name(),
			c.Surname(),
			stringOrEmpty(c.CompanyName()),
			stringOrEmpty(c.VATNumber()),
			c.Email(),
			c.Address(),
			productName,
			productPrice,
			sellerName,
			biztime.FormatInBizTimezone(c.Subscription().Start(), exportDateLayout),
			biztime.FormatInBizTimezone(c.Subscription().End(), exportDateLayout),
			c.IBAN(),
			c.Notes(),
		})
	}

	uc.logger.Infow("clients exported", "count", len(rows))
	return csvutil.Encode(clientExportHeaders, rows), nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
