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
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

// In-memory repositories backing the report use case tests.

type fakeClientRepo struct {
	clients []*client.Client
	nextID  uint
}

func newFakeClientRepo() *fakeClientRepo { return &fakeClientRepo{nextID: 1} }

func (r *fakeClientRepo) Create(_ context.Context, c *client.Client) error {
	if err := c.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.clients = append(r.clients, c)
	return nil
}

func (r *fakeClientRepo) CreateBatch(ctx context.Context, clients []*client.Client) error {
	for _, c := range clients {
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, clientID uint) (*client.Client, error) {
	for _, c := range r.clients {
		if c.ID() == clientID {
			return c, nil
		}
	}
	return nil, apperrors.NewNotFoundError("client not found")
}

func (r *fakeClientRepo) GetBySID(_ context.Context, sid string) (*client.Client, error) {
	for _, c := range r.clients {
		if c.SID() == sid {
			return c, nil
		}
	}
	return nil, apperrors.NewNotFoundError("client not found")
}

func (r *fakeClientRepo) List(_ context.Context, _ client.Filter) ([]*client.Client, error) {
	return append([]*client.Client(nil), r.clients...), nil
}

func (r *fakeClientRepo) ListAll(_ context.Context) ([]*client.Client, error) {
	return append([]*client.Client(nil), r.clients...), nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *client.Client) error {
	for i, existing := range r.clients {
		if existing.ID() == c.ID() {
			r.clients[i] = c
			return nil
		}
	}
	return apperrors.NewNotFoundError("client not found")
}

func (r *fakeClientRepo) Delete(_ context.Context, clientID uint) error {
	for i, c := range r.clients {
		if c.ID() == clientID {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("client not found")
}

func (r *fakeClientRepo) ClearProductRefs(_ context.Context, productID uint) error {
	for _, c := range r.clients {
		if c.ProductID() != nil && *c.ProductID() == productID {
			c.ClearProduct()
		}
	}
	return nil
}

func (r *fakeClientRepo) ClearSellerRefs(_ context.Context, sellerID uint) error {
	for _, c := range r.clients {
		if c.SellerID() != nil && *c.SellerID() == sellerID {
			c.ClearSeller()
		}
	}
	return nil
}

type fakeProductRepo struct {
	products []*catalog.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo { return &fakeProductRepo{nextID: 1} }

func (r *fakeProductRepo) Create(_ context.Context, p *catalog.Product) error {
	if err := p.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.products = append(r.products, p)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, productID uint) (*catalog.Product, error) {
	for _, p := range r.products {
		if p.ID() == productID {
			return p, nil
		}
	}
	return nil, apperrors.NewNotFoundError("product not found")
}

func (r *fakeProductRepo) ListAll(_ context.Context) ([]*catalog.Product, error) {
	return append([]*catalog.Product(nil), r.products...), nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *catalog.Product) error {
	for i, existing := range r.products {
		if existing.ID() == p.ID() {
			r.products[i] = p
			return nil
		}
	}
	return apperrors.NewNotFoundError("product not found")
}

func (r *fakeProductRepo) Delete(_ context.Context, productID uint) error {
	for i, p := range r.products {
		if p.ID() == productID {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("product not found")
}

type fakeSellerRepo struct {
	sellers []*catalog.Seller
	nextID  uint
}

func newFakeSellerRepo() *fakeSellerRepo { return &fakeSellerRepo{nextID: 1} }

func (r *fakeSellerRepo) Create(_ context.Context, s *catalog.Seller) error {
	if err := s.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.sellers = append(r.sellers, s)
	return nil
}

func (r *fakeSellerRepo) GetByID(_ context.Context, sellerID uint) (*catalog.Seller, error) {
	for _, s := range r.sellers {
		if s.ID() == sellerID {
			return s, nil
		}
	}
	return nil, apperrors.NewNotFoundError("seller not found")
}

func (r *fakeSellerRepo) ListAll(_ context.Context) ([]*catalog.Seller, error) {
	return append([]*catalog.Seller(nil), r.sellers...), nil
}

func (r *fakeSellerRepo) Update(_ context.Context, s *catalog.Seller) error {
	for i, existing := range r.sellers {
		if existing.ID() == s.ID() {
			r.sellers[i] = s
			return nil
		}
	}
	return apperrors.NewNotFoundError("seller not found")
}

func (r *fakeSellerRepo) Delete(_ context.Context, sellerID uint) error {
	for i, s := range r.sellers {
		if s.ID() == sellerID {
			r.sellers = append(r.sellers[:i], r.sellers[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("seller not found")
}

type recordedReminder struct {
	To      string
	Subject string
	Body    string
}

type fakeSender struct {
	sent []recordedReminder
	err  error
}

func (s *fakeSender) SendReminder(_ context.Context, to, subject, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, recordedReminder{To: to, Subject: subject, Body: body})
	return nil
}

func seedClient(t *testing.T, repo *fakeClientRepo, name string, daysLeft int, productID, sellerID *uint) *client.Client {
	t.Helper()
	now := time.Now().UTC()
	sub, err := client.NewSubscription(now.AddDate(0, -6, 0), now.Add(time.Duration(daysLeft)*24*time.Hour))
	require.NoError(t, err)
	c, err := client.NewClient(client.NewClientParams{
		Name:             name,
		Surname:          "Rossi",
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

func TestGetDashboard_CountsAndRevenue(t *testing.T) {
	clientRepo := newFakeClientRepo()
	productRepo := newFakeProductRepo()
	sellerRepo := newFakeSellerRepo()

	product, err := catalog.NewProduct("Premium", decimal.NewFromFloat(50))
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(context.Background(), product))

	seller, err := catalog.NewSeller("Mario", decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NoError(t, sellerRepo.Create(context.Background(), seller))

	pid, sid := product.ID(), seller.ID()
	seedClient(t, clientRepo, "Anna", 90, &pid, &sid)
	seedClient(t, clientRepo, "Bruno", 15, &pid, nil)
	seedClient(t, clientRepo, "Carla", -10, &pid, nil)

	uc := NewGetDashboardUseCase(clientRepo, productRepo, sellerRepo, logger.NewLogger())
	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalClients)
	assert.Equal(t, 2, result.ActiveClients)
	assert.Equal(t, "100.00", result.EstimatedRevenue)

	// Only Anna is credited to a seller, so the commission summary sees
	// a single 50.00 sale at a 10% rate.
	assert.Equal(t, 1, result.Summary.SaleCount)
	assert.Equal(t, "50.00", result.Summary.TotalRevenue)
	assert.Equal(t, "5.00", result.Summary.TotalCommission)

	require.Len(t, result.ExpiringSoon, 1)
	assert.Equal(t, "expiring_soon", result.ExpiringSoon[0].Status)
	assert.Equal(t, "Bruno Rossi", result.ExpiringSoon[0].Name)
}

func TestGetDashboard_EmptyDatabase(t *testing.T) {
	uc := NewGetDashboardUseCase(newFakeClientRepo(), newFakeProductRepo(), newFakeSellerRepo(), logger.NewLogger())
	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalClients)
	assert.Equal(t, "0.00", result.EstimatedRevenue)
	assert.Equal(t, "0.00", result.Summary.AverageSale)
	assert.Empty(t, result.ExpiringSoon)
}

func TestGetSellerReports_CommissionPerSale(t *testing.T) {
	clientRepo := newFakeClientRepo()
	productRepo := newFakeProductRepo()
	sellerRepo := newFakeSellerRepo()

	product, err := catalog.NewProduct("Base", decimal.NewFromFloat(30))
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(context.Background(), product))

	seller, err := catalog.NewSeller("Luisa", decimal.NewFromInt(20))
	require.NoError(t, err)
	require.NoError(t, sellerRepo.Create(context.Background(), seller))

	pid, sid := product.ID(), seller.ID()
	seedClient(t, clientRepo, "Anna", 90, &pid, &sid)
	seedClient(t, clientRepo, "Bruno", 60, nil, &sid)

	uc := NewGetSellerReportsUseCase(clientRepo, productRepo, sellerRepo, logger.NewLogger())
	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Reports, 1)
	r := result.Reports[0]
	assert.Equal(t, "Luisa", r.Name)
	assert.Equal(t, 2, r.TotalSales)
	assert.Equal(t, "30.00", r.Revenue)
	assert.Equal(t, "6.00", r.Commission)

	// Bruno has no product, so his sale contributes zero revenue and
	// shows the unassigned label.
	require.Len(t, r.Sales, 2)
	var unassigned int
	for _, sale := range r.Sales {
		if sale.ProductName == "N/D" {
			unassigned++
			assert.Equal(t, "0.00", sale.Price)
		}
	}
	assert.Equal(t, 1, unassigned)

	assert.Equal(t, "15.00", result.Summary.AverageSale)
}

func TestGetProductSummaries_ActiveOnly(t *testing.T) {
	clientRepo := newFakeClientRepo()
	productRepo := newFakeProductRepo()
	sellerRepo := newFakeSellerRepo()

	product, err := catalog.NewProduct("Base", decimal.NewFromFloat(25.50))
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(context.Background(), product))

	pid := product.ID()
	seedClient(t, clientRepo, "Anna", 90, &pid, nil)
	seedClient(t, clientRepo, "Bruno", -5, &pid, nil)

	uc := NewGetProductSummariesUseCase(clientRepo, productRepo, sellerRepo, logger.NewLogger())
	summaries, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].ActiveClients)
	assert.Equal(t, "25.50", summaries[0].Revenue)
}

func TestSendReminder_IncludesProductAndDate(t *testing.T) {
	clientRepo := newFakeClientRepo()
	productRepo := newFakeProductRepo()

	product, err := catalog.NewProduct("Premium", decimal.NewFromFloat(50))
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(context.Background(), product))

	pid := product.ID()
	c := seedClient(t, clientRepo, "Anna", 10, &pid, nil)

	sender := &fakeSender{}
	uc := NewSendReminderUseCase(clientRepo, productRepo, sender, logger.NewLogger())
	require.NoError(t, uc.Execute(context.Background(), SendReminderCommand{ClientID: c.ID()}))

	require.Len(t, sender.sent, 1)
	sent := sender.sent[0]
	assert.Equal(t, "anna@example.com", sent.To)
	assert.Equal(t, ReminderSubject, sent.Subject)
	assert.Contains(t, sent.Body, "Ciao Anna")
	assert.Contains(t, sent.Body, `"Premium"`)
}

func TestSendReminder_FallbackLabelWithoutProduct(t *testing.T) {
	clientRepo := newFakeClientRepo()
	c := seedClient(t, clientRepo, "Bruno", 5, nil, nil)

	sender := &fakeSender{}
	uc := NewSendReminderUseCase(clientRepo, newFakeProductRepo(), sender, logger.NewLogger())
	require.NoError(t, uc.Execute(context.Background(), SendReminderCommand{ClientID: c.ID()}))

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].Body, "il nostro servizio")
}

func TestSendReminder_ClientNotFound(t *testing.T) {
	uc := NewSendReminderUseCase(newFakeClientRepo(), newFakeProductRepo(), &fakeSender{}, logger.NewLogger())
	err := uc.Execute(context.Background(), SendReminderCommand{ClientID: 42})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
