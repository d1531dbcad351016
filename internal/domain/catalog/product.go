// Package catalog holds the product and seller aggregates: the priced
// offerings clients subscribe to and the commissioned agents credited with
// their acquisition.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestio-app/gestio/internal/shared/id"
)

// Product is a priced offering a client can be subscribed to.
type Product struct {
	productID uint
	sid       string
	name      string
	price     decimal.Decimal
	createdAt time.Time
	updatedAt time.Time
}

// NewProduct creates a product with a generated SID. Price must be
// non-negative; the unit is currency-agnostic.
func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("product price cannot be negative")
	}

	now := time.Now().UTC()
	return &Product{
		sid:       id.MustGenerateWithPrefix(id.PrefixProduct, id.DefaultLength),
		name:      strings.TrimSpace(name),
		price:     price,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructProduct rebuilds a product from persistence.
func ReconstructProduct(productID uint, sid, name string, price decimal.Decimal, createdAt, updatedAt time.Time) (*Product, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("product name is required")
	}
	return &Product{
		productID: productID,
		sid:       sid,
		name:      name,
		price:     price,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Product) ID() uint               { return p.productID }
func (p *Product) SID() string            { return p.sid }
func (p *Product) Name() string           { return p.name }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }

// SetID sets the product ID (only for persistence layer use)
func (p *Product) SetID(productID uint) error {
	if p.productID != 0 {
		return fmt.Errorf("product ID is already set")
	}
	if productID == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.productID = productID
	return nil
}

// Update replaces the product's name and price.
func (p *Product) Update(name string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("product name is required")
	}
	if price.IsNegative() {
		return fmt.Errorf("product price cannot be negative")
	}
	p.name = strings.TrimSpace(name)
	p.price = price
	p.updatedAt = time.Now().UTC()
	return nil
}
