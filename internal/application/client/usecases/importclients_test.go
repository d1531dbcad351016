package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

func seedCatalog(t *testing.T, productRepo *fakeProductRepo, sellerRepo *fakeSellerRepo) {
	t.Helper()
	premium, err := catalog.NewProduct("Premium", decimal.NewFromFloat(59.99))
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(context.Background(), premium))

	marco, err := catalog.NewSeller("Marco Neri", decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NoError(t, sellerRepo.Create(context.Background(), marco))
}

func TestImportClients(t *testing.T) {
	clientRepo := newFakeClientRepo()
	productRepo := newFakeProductRepo()
	sellerRepo := newFakeSellerRepo()
	seedCatalog(t, productRepo, sellerRepo)

	uc := NewImportClientsUseCase(clientRepo, productRepo, sellerRepo, logger.NewLogger())

	csv := strings.Join([]string{
		"nome,cognome,email,prodotto,inizio abbonamento,fine abbonamento,venditore,tipo abbonamento",
		"Anna,Rossi,anna@example.com,Premium,01/01/2026,01/01/2027,Marco Neri,annuale",
		"Bruno,Bianchi,bruno@example.com,premium,2026-02-01,2026-03-01,,mensile",
	}, "\n")

	result, err := uc.Execute(context.Background(), ImportClientsCommand{Reader: strings.NewReader(csv)})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Errors)

	clients, err := clientRepo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)

	anna := clients[0]
	assert.Equal(t, "Anna", anna.Name())
	assert.Equal(t, "annual", anna.SubscriptionType().String())
	require.NotNil(t, anna.ProductID())
	require.NotNil(t, anna.SellerID())

	bruno := clients[1]
	assert.Equal(t, "monthly", bruno.SubscriptionType().String())
	assert.Nil(t, bruno.SellerID())
}

func TestImportClients_RowErrors(t *testing.T) {
	clientRepo := newFakeClientRepo()
	productRepo := newFakeProductRepo()
	sellerRepo := newFakeSellerRepo()
	seedCatalog(t, productRepo, sellerRepo)

	uc := NewImportClientsUseCase(clientRepo, productRepo, sellerRepo, logger.NewLogger())

	csv := strings.Join([]string{
		"nome,cognome,email,prodotto,inizio abbonamento,fine abbonamento",
		"Anna,Rossi,anna@example.com,Premium,01/01/2026,01/01/2027",
		",Bianchi,bruno@example.com,Premium,01/01/2026,01/01/2027",
		"Carla,Verdi,carla@example.com,Sconosciuto,01/01/2026,01/01/2027",
		"Dario,Blu,dario@example.com,Premium,01/01/2027,01/01/2026",
		"Elena,Gialli,elena@example.com,Premium,non-una-data,01/01/2027",
	}, "\n")

	result, err := uc.Execute(context.Background(), ImportClientsCommand{Reader: strings.NewReader(csv)})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 4, result.Skipped)
	require.Len(t, result.Errors, 4)

	// row numbers are 1-based over data rows
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Reason, "missing required fields")
	assert.Equal(t, 3, result.Errors[1].Row)
	assert.Contains(t, result.Errors[1].Reason, "Sconosciuto")
	assert.Equal(t, 4, result.Errors[2].Row)
	assert.Equal(t, 5, result.Errors[3].Row)
}

func TestImportClients_QuotedFields(t *testing.T) {
	clientRepo := newFakeClientRepo()
	productRepo := newFakeProductRepo()
	sellerRepo := newFakeSellerRepo()
	seedCatalog(t, productRepo, sellerRepo)

	uc := NewImportClientsUseCase(clientRepo, productRepo, sellerRepo, logger.NewLogger())

	csv := strings.Join([]string{
		"nome,cognome,email,prodotto,inizio abbonamento,fine abbonamento,indirizzo",
		`Anna,Rossi,anna@example.com,Premium,01/01/2026,01/01/2027,"Via Roma 1, Milano"`,
	}, "\n")

	result, err := uc.Execute(context.Background(), ImportClientsCommand{Reader: strings.NewReader(csv)})
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)

	clients, err := clientRepo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Via Roma 1, Milano", clients[0].Address())
}

func TestImportClients_MissingHeaders(t *testing.T) {
	uc := NewImportClientsUseCase(newFakeClientRepo(), newFakeProductRepo(), newFakeSellerRepo(), logger.NewLogger())

	csv := "nome,cognome,email\nAnna,Rossi,anna@example.com"
	_, err := uc.Execute(context.Background(), ImportClientsCommand{Reader: strings.NewReader(csv)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prodotto")
}
