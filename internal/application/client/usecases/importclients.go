package usecases

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gestio-app/gestio/internal/application/client/dto"
	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/domain/client"
	vo "github.com/gestio-app/gestio/internal/domain/client/valueobjects"
	"github.com/gestio-app/gestio/internal/shared/biztime"
	"github.com/gestio-app/gestio/internal/shared/csvutil"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

// Italian column headers of the client import format. The first six are
// required; the rest are filled when present.
const (
	headerName    = "nome"
	headerSurname = "cognome"
	headerEmail   = "email"
	headerProduct = "prodotto"
	headerStart   = "inizio abbonamento"
	headerEnd     = "fine abbonamento"
	headerCompany = "nome azienda"
	headerVAT     = "partita iva"
	headerAddress = "indirizzo"
	headerIBAN    = "iban"
	headerNotes   = "info aggiuntive"
	headerSeller  = "venditore"
	headerSubType = "tipo abbonamento"
)

var requiredHeaders = []string{headerName, headerSurname, headerEmail, headerProduct, headerStart, headerEnd}

type ImportClientsCommand struct {
	Reader io.Reader
}

type ImportClientsUseCase struct {
	clientRepo  client.Repository
	productRepo catalog.ProductRepository
	sellerRepo  catalog.SellerRepository
	logger      logger.Interface
}

func NewImportClientsUseCase(
	clientRepo client.Repository,
	productRepo catalog.ProductRepository,
	sellerRepo catalog.SellerRepository,
	logger logger.Interface,
) *ImportClientsUseCase {
	return &ImportClientsUseCase{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		logger:      logger,
	}
}

func (uc *ImportClientsUseCase) Execute(ctx context.Context, cmd ImportClientsCommand) (*dto.ImportResultDTO, error) {
	records, err := csvutil.ReadAll(cmd.Reader)
	if err != nil {
		return nil, apperrors.NewBadRequestError("failed to parse CSV file", err.Error())
	}
	if len(records) == 0 {
		return nil, apperrors.NewBadRequestError("CSV file is empty")
	}

	headerIdx := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		headerIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var missing []string
	for _, h := range requiredHeaders {
		if _, ok := headerIdx[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("missing CSV headers: %s", strings.Join(missing, ", ")))
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
	productByName := make(map[string]*catalog.Product, len(products))
	for _, p := range products {
		productByName[strings.ToLower(p.Name())] = p
	}
	sellerByName := make(map[string]*catalog.Seller, len(sellers))
	for _, s := range sellers {
		sellerByName[strings.ToLower(s.Name())] = s
	}

	field := func(record []string, header string) string {
		idx, ok := headerIdx[header]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	result := &dto.ImportResultDTO{Errors: []dto.ImportRowError{}}
	var imported []*client.Client

	for i, record := range records[1:] {
		row := i + 1
		if len(record) == 0 {
			continue
		}

		reject := func(reason string) {
			result.Skipped++
			result.Errors = append(result.Errors, dto.ImportRowError{Row: row, Reason: reason})
		}

		name := field(record, headerName)
		surname := field(record, headerSurname)
		email := field(record, headerEmail)
		productName := field(record, headerProduct)
		startStr := field(record, headerStart)
		endStr := field(record, headerEnd)
		if name == "" || surname == "" || email == "" || productName == "" || startStr == "" || endStr == "" {
			reject("missing required fields")
			continue
		}

		product, ok := productByName[strings.ToLower(productName)]
		if !ok {
			reject(fmt.Sprintf("product %q not found", productName))
			continue
		}

		start, err := parseImportDate(startStr)
		if err != nil {
			reject(fmt.Sprintf("invalid start date %q", startStr))
			continue
		}
		end, err := parseImportDate(endStr)
		if err != nil {
			reject(fmt.Sprintf("invalid end date %q", endStr))
			continue
		}
		sub, err := client.NewSubscription(start, end)
		if err != nil {
			reject("subscription start must be before end")
			continue
		}

		subType, err := vo.ParseSubscriptionType(field(record, headerSubType))
		if err != nil {
			reject(err.Error())
			continue
		}

		var sellerID *uint
		if sellerName := field(record, headerSeller); sellerName != "" {
			if s, ok := sellerByName[strings.ToLower(sellerName)]; ok {
				id := s.ID()
				sellerID = &id
			}
		}

		productID := product.ID()
		c, err := client.NewClient(client.NewClientParams{
			Name:             name,
			Surname:          surname,
			CompanyName:      optionalField(field(record, headerCompany)),
			VATNumber:        optionalField(field(record, headerVAT)),
			Address:          field(record, headerAddress),
			Email:            email,
			IBAN:             field(record, headerIBAN),
			Notes:            field(record, headerNotes),
			Subscription:     sub,
			SubscriptionType: subType,
			ProductID:        &productID,
			SellerID:         sellerID,
		})
		if err != nil {
			reject(err.Error())
			continue
		}

		imported = append(imported, c)
	}

	if len(imported) > 0 {
		if err := uc.clientRepo.CreateBatch(ctx, imported); err != nil {
			uc.logger.Errorw("failed to persist imported clients", "error", err, "count", len(imported))
			return nil, apperrors.NewInternalError("failed to save imported clients")
		}
	}

	result.Imported = len(imported)
	uc.logger.Infow("client import finished",
		"imported", result.Imported,
		"skipped", result.Skipped,
	)
	return result, nil
}

// parseImportDate accepts DD/MM/YYYY and YYYY-MM-DD, interpreted as
// business-timezone midnight.
func parseImportDate(value string) (time.Time, error) {
	if strings.Contains(value, "/") {
		t, err := time.ParseInLocation("02/01/2006", value, biztime.Location())
		if err != nil {
			return time.Time{}, err
		}
		return t.UTC(), nil
	}
	return biztime.ParseDateInBizTimezone(value)
}

func optionalField(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
