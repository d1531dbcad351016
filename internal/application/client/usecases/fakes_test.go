package usecases

import (
	"context"
	"strings"

	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/domain/client"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
)

// In-memory repositories backing the use case tests.

type fakeClientRepo struct {
	clients []*client.Client
	nextID  uint
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{nextID: 1}
}

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

func (r *fakeClientRepo) List(_ context.Context, filter client.Filter) ([]*client.Client, error) {
	var out []*client.Client
	for _, c := range r.clients {
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			haystack := strings.ToLower(c.FullName() + " " + c.Email())
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		if filter.ProductID != nil && (c.ProductID() == nil || *c.ProductID() != *filter.ProductID) {
			continue
		}
		if filter.SellerID != nil && (c.SellerID() == nil || *c.SellerID() != *filter.SellerID) {
			continue
		}
		if filter.SubscriptionType != "" && c.SubscriptionType().String() != filter.SubscriptionType {
			continue
		}
		out = append(out, c)
	}
	return out, nil
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

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1}
}

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

func newFakeSellerRepo() *fakeSellerRepo {
	return &fakeSellerRepo{nextID: 1}
}

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
