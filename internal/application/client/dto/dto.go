package dto

import (
	"time"

	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/domain/client"
	"github.com/gestio-app/gestio/internal/domain/report"
	"github.com/gestio-app/gestio/internal/shared/constants"
)

// RemainingDTO is the countdown breakdown shown next to a subscription.
type RemainingDTO struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

type ClientDTO struct {
	ID                uint                   `json:"id"`
	SID               string                 `json:"sid"`
	UUID              string                 `json:"uuid"`
	Name              string                 `json:"name"`
	Surname           string                 `json:"surname"`
	CompanyName       *string                `json:"company_name,omitempty"`
	VATNumber         *string                `json:"vat_number,omitempty"`
	Address           string                 `json:"address,omitempty"`
	Email             string                 `json:"email"`
	IBAN              string                 `json:"iban,omitempty"`
	Notes             string                 `json:"notes,omitempty"`
	NotesHTML         string                 `json:"notes_html,omitempty"`
	SubscriptionStart time.Time              `json:"subscription_start"`
	SubscriptionEnd   time.Time              `json:"subscription_end"`
	SubscriptionType  string                 `json:"subscription_type"`
	Status            string                 `json:"status"`
	IsActive          bool                   `json:"is_active"`
	Progress          float64                `json:"progress"`
	Remaining         RemainingDTO           `json:"remaining"`
	ProductID         *uint                  `json:"product_id,omitempty"`
	ProductName       string                 `json:"product_name"`
	SellerID          *uint                  `json:"seller_id,omitempty"`
	SellerName        string                 `json:"seller_name"`
	Commission        string                 `json:"commission"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// ImportRowError reports one rejected CSV row. Row numbers are 1-based and
// count data rows, not the header.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResultDTO summarizes a CSV import: how many rows became clients
// and, per rejected row, why.
type ImportResultDTO struct {
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Errors   []ImportRowError `json:"errors"`
}

// ToClientDTO builds the full client view. Product and seller may be nil
// when unassigned or dangling; names then fall back to the unassigned
// label and commission to zero.
func ToClientDTO(c *client.Client, product *catalog.Product, seller *catalog.Seller, now time.Time) *ClientDTO {
	if c == nil {
		return nil
	}

	sub := c.Subscription()
	status := sub.Status(now)
	remaining, _ := sub.Remaining(now)

	d := &ClientDTO{
		ID:                c.ID(),
		SID:               c.SID(),
		UUID:              c.UUID(),
		Name:              c.Name(),
		Surname:           c.Surname(),
		CompanyName:       c.CompanyName(),
		VATNumber:         c.VATNumber(),
		Address:           c.Address(),
		Email:             c.Email(),
		IBAN:              c.IBAN(),
		Notes:             c.Notes(),
		SubscriptionStart: sub.Start(),
		SubscriptionEnd:   sub.End(),
		SubscriptionType:  c.SubscriptionType().String(),
		Status:            status.String(),
		IsActive:          status.IsActive(),
		Progress:          sub.Progress(now),
		Remaining: RemainingDTO{
			Days:    remaining.Days,
			Hours:   remaining.Hours,
			Minutes: remaining.Minutes,
			Seconds: remaining.Seconds,
		},
		ProductID:   c.ProductID(),
		ProductName: constants.UnassignedLabel,
		SellerID:    c.SellerID(),
		SellerName:  constants.UnassignedLabel,
		Commission:  report.Commission(product, seller).StringFixed(2),
		Metadata:    c.Metadata(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
	if product != nil {
		d.ProductName = product.Name()
	}
	if seller != nil {
		d.SellerName = seller.Name()
	}
	return d
}
