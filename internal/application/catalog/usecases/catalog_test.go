package usecases

import (
	"context"
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

type memProductRepo struct {
	products map[uint]*catalog.Product
	nextID   uint
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[uint]*catalog.Product{}, nextID: 1}
}

func (r *memProductRepo) Create(_ context.Context, p *catalog.Product) error {
	if err := p.SetID(r.nextID); err != nil {
		return err
	}
	r.products[p.ID()] = p
	r.nextID++
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id uint) (*catalog.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("product not found")
	}
	return p, nil
}

func (r *memProductRepo) ListAll(_ context.Context) ([]*catalog.Product, error) {
	out := make([]*catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, p *catalog.Product) error {
	if _, ok := r.products[p.ID()]; !ok {
		return apperrors.NewNotFoundError("product not found")
	}
	r.products[p.ID()] = p
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.products[id]; !ok {
		return apperrors.NewNotFoundError("product not found")
	}
	delete(r.products, id)
	return nil
}

type memSellerRepo struct {
	sellers map[uint]*catalog.Seller
	nextID  uint
}

func newMemSellerRepo() *memSellerRepo {
	return &memSellerRepo{sellers: map[uint]*catalog.Seller{}, nextID: 1}
}

func (r *memSellerRepo) Create(_ context.Context, s *catalog.Seller) error {
	if err := s.SetID(r.nextID); err != nil {
		return err
	}
	r.sellers[s.ID()] = s
	r.nextID++
	return nil
}

func (r *memSellerRepo) GetByID(_ context.Context, id uint) (*catalog.Seller, error) {
	s, ok := r.sellers[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("seller not found")
	}
	return s, nil
}

func (r *memSellerRepo) ListAll(_ context.Context) ([]*catalog.Seller, error) {
	out := make([]*catalog.Seller, 0, len(r.sellers))
	for _, s := range r.sellers {
		out = append(out, s)
	}
	return out, nil
}

func (r *memSellerRepo) Update(_ context.Context, s *catalog.Seller) error {
	if _, ok := r.sellers[s.ID()]; !ok {
		return apperrors.NewNotFoundError("seller not found")
	}
	r.sellers[s.ID()] = s
	return nil
}

func (r *memSellerRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.sellers[id]; !ok {
		return apperrors.NewNotFoundError("seller not found")
	}
	delete(r.sellers, id)
	return nil
}

// memClientRepo implements only what the catalog use cases touch.
type memClientRepo struct {
	clients []*client.Client
	nextID  uint
}

func newMemClientRepo() *memClientRepo { return &memClientRepo{nextID: 1} }

func (r *memClientRepo) Create(_ context.Context, c *client.Client) error {
	if err := c.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.clients = append(r.clients, c)
	return nil
}

func (r *memClientRepo) CreateBatch(ctx context.Context, cs []*client.Client) error {
	for _, c := range cs {
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *memClientRepo) GetByID(_ context.Context, id uint) (*client.Client, error) {
	for _, c := range r.clients {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, apperrors.NewNotFoundError("client not found")
}

func (r *memClientRepo) GetBySID(_ context.Context, sid string) (*client.Client, error) {
	for _, c := range r.clients {
		if c.SID() == sid {
			return c, nil
		}
	}
	return nil, apperrors.NewNotFoundError("client not found")
}

func (r *memClientRepo) List(_ context.Context, _ client.Filter) ([]*client.Client, error) {
	return r.clients, nil
}

func (r *memClientRepo) ListAll(_ context.Context) ([]*client.Client, error) {
	return r.clients, nil
}

func (r *memClientRepo) Update(_ context.Context, _ *client.Client) error { return nil }

func (r *memClientRepo) Delete(_ context.Context, _ uint) error { return nil }

func (r *memClientRepo) ClearProductRefs(_ context.Context, productID uint) error {
	for _, c := range r.clients {
		if c.ProductID() != nil && *c.ProductID() == productID {
			c.ClearProduct()
		}
	}
	return nil
}

func (r *memClientRepo) ClearSellerRefs(_ context.Context, sellerID uint) error {
	for _, c := range r.clients {
		if c.SellerID() != nil && *c.SellerID() == sellerID {
			c.ClearSeller()
		}
	}
	return nil
}

func newTestClient(t *testing.T, repo *memClientRepo, productID, sellerID *uint) *client.Client {
	t.Helper()
	now := time.Now().UTC()
	sub, err := client.NewSubscription(now, now.AddDate(1, 0, 0))
	require.NoError(t, err)
	c, err := client.NewClient(client.NewClientParams{
		Name:             "Anna",
		Surname:          "Rossi",
		Email:            "anna@example.com",
		Subscription:     sub,
		SubscriptionType: vo.TypeAnnual,
		ProductID:        productID,
		SellerID:         sellerID,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func TestCreateProduct(t *testing.T) {
	repo := newMemProductRepo()
	uc := NewCreateProductUseCase(repo, logger.NewLogger())

	d, err := uc.Execute(context.Background(), CreateProductCommand{
		Name:  "Premium",
		Price: decimal.NewFromFloat(59.99),
	})
	require.NoError(t, err)
	assert.Equal(t, "Premium", d.Name)
	assert.Equal(t, "59.99", d.Price)

	_, err = uc.Execute(context.Background(), CreateProductCommand{
		Name:  "Bad",
		Price: decimal.NewFromInt(-1),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestDeleteProduct_ClearsClientRefs(t *testing.T) {
	productRepo := newMemProductRepo()
	clientRepo := newMemClientRepo()

	p, err := catalog.NewProduct("Premium", decimal.NewFromFloat(59.99))
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(context.Background(), p))
	productID := p.ID()

	c := newTestClient(t, clientRepo, &productID, nil)

	uc := NewDeleteProductUseCase(productRepo, clientRepo, logger.NewLogger())
	require.NoError(t, uc.Execute(context.Background(), DeleteProductCommand{ProductID: productID}))

	_, err = productRepo.GetByID(context.Background(), productID)
	assert.True(t, apperrors.IsNotFoundError(err))

	// client survives with the reference cleared
	got, err := clientRepo.GetByID(context.Background(), c.ID())
	require.NoError(t, err)
	assert.Nil(t, got.ProductID())
}

func TestDeleteSeller_ClearsClientRefs(t *testing.T) {
	sellerRepo := newMemSellerRepo()
	clientRepo := newMemClientRepo()

	s, err := catalog.NewSeller("Marco", decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NoError(t, sellerRepo.Create(context.Background(), s))
	sellerID := s.ID()

	c := newTestClient(t, clientRepo, nil, &sellerID)

	uc := NewDeleteSellerUseCase(sellerRepo, clientRepo, logger.NewLogger())
	require.NoError(t, uc.Execute(context.Background(), DeleteSellerCommand{SellerID: sellerID}))

	got, err := clientRepo.GetByID(context.Background(), c.ID())
	require.NoError(t, err)
	assert.Nil(t, got.SellerID())
}

func TestUpdateSeller(t *testing.T) {
	sellerRepo := newMemSellerRepo()
	s, err := catalog.NewSeller("Marco", decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NoError(t, sellerRepo.Create(context.Background(), s))

	uc := NewUpdateSellerUseCase(sellerRepo, logger.NewLogger())
	d, err := uc.Execute(context.Background(), UpdateSellerCommand{
		SellerID:       s.ID(),
		Name:           "Marco Neri",
		CommissionRate: decimal.NewFromFloat(12.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "Marco Neri", d.Name)
	assert.Equal(t, "12.5", d.CommissionRate)

	_, err = uc.Execute(context.Background(), UpdateSellerCommand{SellerID: 99, Name: "X"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
