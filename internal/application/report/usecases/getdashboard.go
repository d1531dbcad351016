package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestio-app/gestio/internal/application/report/dto"
	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/domain/client"
	"github.com/gestio-app/gestio/internal/domain/report"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

// snapshot loads the three entity collections every projection folds over.
type snapshot struct {
	clients  []*client.Client
	products []*catalog.Product
	sellers  []*catalog.Seller
}

func loadSnapshot(
	ctx context.Context,
	clientRepo client.Repository,
	productRepo catalog.ProductRepository,
	sellerRepo catalog.SellerRepository,
	log logger.Interface,
) (*snapshot, error) {
	clients, err := clientRepo.ListAll(ctx)
	if err != nil {
		log.Errorw("failed to list clients", "error", err)
		return nil, apperrors.NewInternalError("failed to list clients")
	}
	products, err := productRepo.ListAll(ctx)
	if err != nil {
		log.Errorw("failed to list products", "error", err)
		return nil, apperrors.NewInternalError("failed to list products")
	}
	sellers, err := sellerRepo.ListAll(ctx)
	if err != nil {
		log.Errorw("failed to list sellers", "error", err)
		return nil, apperrors.NewInternalError("failed to list sellers")
	}
	return &snapshot{clients: clients, products: products, sellers: sellers}, nil
}

type GetDashboardUseCase struct {
	clientRepo  client.Repository
	productRepo catalog.ProductRepository
	sellerRepo  catalog.SellerRepository
	logger      logger.Interface
}

func NewGetDashboardUseCase(
	clientRepo client.Repository,
	productRepo catalog.ProductRepository,
	sellerRepo catalog.SellerRepository,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		logger:      logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*dto.DashboardDTO, error) {
	snap, err := loadSnapshot(ctx, uc.clientRepo, uc.productRepo, uc.sellerRepo, uc.logger)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	active := 0
	for _, c := range snap.clients {
		if c.Subscription().Status(now).IsActive() {
			active++
		}
	}

	productSummaries := report.ProductSummaries(snap.clients, snap.products, now)
	estimated := decimal.Zero
	for _, s := range productSummaries {
		estimated = estimated.Add(s.Revenue)
	}

	sellerReports := report.SellerReports(snap.clients, snap.products, snap.sellers, now)
	summary := report.Summarize(sellerReports)
	expiring := report.ExpiringSoon(snap.clients, now)

	return &dto.DashboardDTO{
		TotalClients:     len(snap.clients),
		ActiveClients:    active,
		EstimatedRevenue: estimated.StringFixed(2),
		Summary:          dto.ToGlobalSummaryDTO(summary),
		ExpiringSoon:     dto.ToExpiringClientDTOs(expiring),
	}, nil
}
