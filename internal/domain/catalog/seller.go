package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestio-app/gestio/internal/shared/id"
)

// Seller is a commissioned agent. CommissionRate is a percentage: 10 means
// 10% of the product price per sale.
type Seller struct {
	sellerID       uint
	sid            string
	name           string
	commissionRate decimal.Decimal
	createdAt      time.Time
	updatedAt      time.Time
}

// NewSeller creates a seller with a generated SID. The rate must be
// non-negative; values above 100 are accepted since the rate is a plain
// percentage, not a share.
func NewSeller(name string, commissionRate decimal.Decimal) (*Seller, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("seller name is required")
	}
	if commissionRate.IsNegative() {
		return nil, fmt.Errorf("commission rate cannot be negative")
	}

	now := time.Now().UTC()
	return &Seller{
		sid:            id.MustGenerateWithPrefix(id.PrefixSeller, id.DefaultLength),
		name:           strings.TrimSpace(name),
		commissionRate: commissionRate,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructSeller rebuilds a seller from persistence.
func ReconstructSeller(sellerID uint, sid, name string, commissionRate decimal.Decimal, createdAt, updatedAt time.Time) (*Seller, error) {
	if sellerID == 0 {
		return nil, fmt.Errorf("seller ID cannot be zero")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("seller name is required")
	}
	return &Seller{
		sellerID:       sellerID,
		sid:            sid,
		name:           name,
		commissionRate: commissionRate,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (s *Seller) ID() uint                        { return s.sellerID }
func (s *Seller) SID() string                     { return s.sid }
func (s *Seller) Name() string                    { return s.name }
func (s *Seller) CommissionRate() decimal.Decimal { return s.commissionRate }
func (s *Seller) CreatedAt() time.Time            { return s.createdAt }
func (s *Seller) UpdatedAt() time.Time            { return s.updatedAt }

// SetID sets the seller ID (only for persistence layer use)
func (s *Seller) SetID(sellerID uint) error {
	if s.sellerID != 0 {
		return fmt.Errorf("seller ID is already set")
	}
	if sellerID == 0 {
		return fmt.Errorf("seller ID cannot be zero")
	}
	s.sellerID = sellerID
	return nil
}

// Update replaces the seller's name and commission rate.
func (s *Seller) Update(name string, commissionRate decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("seller name is required")
	}
	if commissionRate.IsNegative() {
		return fmt.Errorf("commission rate cannot be negative")
	}
	s.name = strings.TrimSpace(name)
	s.commissionRate = commissionRate
	s.updatedAt = time.Now().UTC()
	return nil
}
