package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/domain/client"
	vo "github.com/gestio-app/gestio/internal/domain/client/valueobjects"
	"github.com/gestio-app/gestio/internal/shared/constants"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

func seedClient(t *testing.T, repo *fakeClientRepo, name, surname string, daysLeft int, productID, sellerID *uint) *client.Client {
	t.Helper()
	now := time.Now().UTC()
	sub, err := client.NewSubscription(now.AddDate(0, -6, 0), now.Add(time.Duration(daysLeft)*24*time.Hour))
	require.NoError(t, err)
	c, err := client.NewClient(client.NewClientParams{
		Name:             name,
		Surname:          surname,
		Email:            strings.ToLower(name) + "@example.com",
		Subscription:     sub,
		SubscriptionType: vo.TypeAnnual,
		ProductID:        productID,
		SellerID:         sellerID,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func TestListClients_SortByExpiry(t *testing.T) {
	clientRepo := newFakeClientRepo()
	uc := NewListClientsUseCase(clientRepo, newFakeProductRepo(), newFakeSellerRepo(), logger.NewLogger())

	seedClient(t, clientRepo, "Anna", "Rossi", 30, nil, nil)
	seedClient(t, clientRepo, "Bruno", "Bianchi", 5, nil, nil)
	seedClient(t, clientRepo, "Carla", "Verdi", 90, nil, nil)

	result, err := uc.Execute(context.Background(), ListClientsQuery{Sort: SortExpiryAsc})
	require.NoError(t, err)
	require.Len(t, result.Clients, 3)
	assert.Equal(t, "Bruno", result.Clients[0].Name)
	assert.Equal(t, "Anna", result.Clients[1].Name)
	assert.Equal(t, "Carla", result.Clients[2].Name)

	result, err = uc.Execute(context.Background(), ListClientsQuery{Sort: SortExpiryDesc})
	require.NoError(t, err)
	assert.Equal(t, "Carla", result.Clients[0].Name)
}

func TestListClients_SortByName(t *testing.T) {
	clientRepo := newFakeClientRepo()
	uc := NewListClientsUseCase(clientRepo, newFakeProductRepo(), newFakeSellerRepo(), logger.NewLogger())

	seedClient(t, clientRepo, "Anna", "Zanetti", 30, nil, nil)
	seedClient(t, clientRepo, "Bruno", "Bianchi", 5, nil, nil)

	result, err := uc.Execute(context.Background(), ListClientsQuery{Sort: SortNameAsc})
	require.NoError(t, err)
	require.Len(t, result.Clients, 2)
	assert.Equal(t, "Bianchi", result.Clients[0].Surname)
	assert.Equal(t, "Zanetti", result.Clients[1].Surname)
}

func TestListClients_FilterAndPaginate(t *testing.T) {
	clientRepo := newFakeClientRepo()
	productRepo := newFakeProductRepo()
	sellerRepo := newFakeSellerRepo()

	premium, err := catalog.NewProduct("Premium", decimal.NewFromFloat(59.99))
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(context.Background(), premium))
	productID := premium.ID()

	uc := NewListClientsUseCase(clientRepo, productRepo, sellerRepo, logger.NewLogger())

	seedClient(t, clientRepo, "Anna", "Rossi", 30, &productID, nil)
	seedClient(t, clientRepo, "Bruno", "Bianchi", 5, nil, nil)

	result, err := uc.Execute(context.Background(), ListClientsQuery{ProductID: &productID})
	require.NoError(t, err)
	require.Len(t, result.Clients, 1)
	assert.Equal(t, "Anna", result.Clients[0].Name)
	assert.Equal(t, "Premium", result.Clients[0].ProductName)
	assert.Equal(t, constants.UnassignedLabel, result.Clients[0].SellerName)

	result, err = uc.Execute(context.Background(), ListClientsQuery{Search: "bianchi"})
	require.NoError(t, err)
	require.Len(t, result.Clients, 1)
	assert.Equal(t, "Bruno", result.Clients[0].Name)

	result, err = uc.Execute(context.Background(), ListClientsQuery{Page: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Len(t, result.Clients, 1)
	assert.Equal(t, int64(2), result.Total)

	result, err = uc.Execute(context.Background(), ListClientsQuery{Page: 3, PageSize: 1})
	require.NoError(t, err)
	assert.Empty(t, result.Clients)
}

func TestExportClients(t *testing.T) {
	clientRepo := newFakeClientRepo()
	productRepo := newFakeProductRepo()
	sellerRepo := newFakeSellerRepo()

	premium, err := catalog.NewProduct("Premium", decimal.NewFromFloat(59.99))
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(context.Background(), premium))
	productID := premium.ID()

	uc := NewExportClientsUseCase(clientRepo, productRepo, sellerRepo, logger.NewLogger())

	seedClient(t, clientRepo, "Anna", "Rossi", 30, &productID, nil)
	seedClient(t, clientRepo, "Bruno", "Bianchi", 5, nil, nil)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	lines := strings.Split(string(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"Nome"`, strings.Split(lines[0], ",")[0])

	// Bruno expires first, so he is the first data row
	assert.True(t, strings.HasPrefix(lines[1], `"Bruno"`))
	assert.Contains(t, lines[1], `"N/D"`)
	assert.Contains(t, lines[1], `"N/A"`)
	assert.True(t, strings.HasPrefix(lines[2], `"Anna"`))
	assert.Contains(t, lines[2], `"59.99"`)

	// every field is wrapped in quotes
	for _, f := range strings.Split(lines[1], ",") {
		assert.True(t, strings.HasPrefix(f, `"`) && strings.HasSuffix(f, `"`), "field %q not quoted", f)
	}
}
