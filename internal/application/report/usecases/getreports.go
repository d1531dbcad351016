package usecases

import (
	"context"
	"time"

	"github.com/gestio-app/gestio/internal/application/report/dto"
	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/domain/client"
	"github.com/gestio-app/gestio/internal/domain/report"
	"github.com/gestio-app/gestio/internal/shared/csvutil"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

type SellerReportsResult struct {
	Reports []dto.SellerReportDTO
	Summary dto.GlobalSummaryDTO
}

type GetSellerReportsUseCase struct {
	clientRepo  client.Repository
	productRepo catalog.ProductRepository
	sellerRepo  catalog.SellerRepository
	logger      logger.Interface
}

func NewGetSellerReportsUseCase(
	clientRepo client.Repository,
	productRepo catalog.ProductRepository,
	sellerRepo catalog.SellerRepository,
	logger logger.Interface,
) *GetSellerReportsUseCase {
	return &GetSellerReportsUseCase{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		logger:      logger,
	}
}

func (uc *GetSellerReportsUseCase) Execute(ctx context.Context) (*SellerReportsResult, error) {
	snap, err := loadSnapshot(ctx, uc.clientRepo, uc.productRepo, uc.sellerRepo, uc.logger)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reports := report.SellerReports(snap.clients, snap.products, snap.sellers, now)
	return &SellerReportsResult{
		Reports: dto.ToSellerReportDTOs(reports),
		Summary: dto.ToGlobalSummaryDTO(report.Summarize(reports)),
	}, nil
}

type GetProductSummariesUseCase struct {
	clientRepo  client.Repository
	productRepo catalog.ProductRepository
	sellerRepo  catalog.SellerRepository
	logger      logger.Interface
}

func NewGetProductSummariesUseCase(
	clientRepo client.Repository,
	productRepo catalog.ProductRepository,
	sellerRepo catalog.SellerRepository,
	logger logger.Interface,
) *GetProductSummariesUseCase {
	return &GetProductSummariesUseCase{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		logger:      logger,
	}
}

func (uc *GetProductSummariesUseCase) Execute(ctx context.Context) ([]dto.ProductSummaryDTO, error) {
	snap, err := loadSnapshot(ctx, uc.clientRepo, uc.productRepo, uc.sellerRepo, uc.logger)
	if err != nil {
		return nil, err
	}
	summaries := report.ProductSummaries(snap.clients, snap.products, time.Now().UTC())
	return dto.ToProductSummaryDTOs(summaries), nil
}

var salesExportHeaders = []string{
	"Venditore",
	"Cliente",
	"Prodotto",
	"Prezzo Prodotto (€)",
	"Provvigione (€)",
}

type ExportSellerReportsUseCase struct {
	clientRepo  client.Repository
	productRepo catalog.ProductRepository
	sellerRepo  catalog.SellerRepository
	logger      logger.Interface
}

func NewExportSellerReportsUseCase(
	clientRepo client.Repository,
	productRepo catalog.ProductRepository,
	sellerRepo catalog.SellerRepository,
	logger logger.Interface,
) *ExportSellerReportsUseCase {
	return &ExportSellerReportsUseCase{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		logger:      logger,
	}
}

// Execute flattens every seller's sales into one CSV row per sale.
func (uc *ExportSellerReportsUseCase) Execute(ctx context.Context) ([]byte, error) {
	snap, err := loadSnapshot(ctx, uc.clientRepo, uc.productRepo, uc.sellerRepo, uc.logger)
	if err != nil {
		return nil, err
	}

	reports := report.SellerReports(snap.clients, snap.products, snap.sellers, time.Now().UTC())

	var rows [][]string
	for _, r := range reports {
		for _, sale := range r.Sales {
			rows = append(rows, []string{
				r.Name,
				sale.ClientName,
				sale.ProductName,
				sale.Price.StringFixed(2),
				sale.Commission.StringFixed(2),
			})
		}
	}

	uc.logger.Infow("seller reports exported", "rows", len(rows))
	return csvutil.Encode(salesExportHeaders, rows), nil
}
