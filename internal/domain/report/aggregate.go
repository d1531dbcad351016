package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/domain/client"
	vo "github.com/gestio-app/gestio/internal/domain/client/valueobjects"
	"github.com/gestio-app/gestio/internal/shared/constants"
	"github.com/gestio-app/gestio/internal/shared/timeutil"
)

// ProductSummary is one row of the product report: how many clients with a
// live subscription reference the product, and the revenue they represent.
// Revenue is active count times unit price regardless of subscription type.
type ProductSummary struct {
	ProductID     uint
	SID           string
	Name          string
	UnitPrice     decimal.Decimal
	ActiveClients int
	Revenue       decimal.Decimal
}

// Sale is one active client credited to a seller. Price and commission are
// zero when the client has no product assigned; the product name falls
// back to the unassigned label.
type Sale struct {
	ClientID    uint
	ClientSID   string
	ClientName  string
	ProductName string
	Price       decimal.Decimal
	Commission  decimal.Decimal
}

// SellerReport is one row of the seller report: every active client
// credited to the seller, with revenue and commission summed per sale.
type SellerReport struct {
	SellerID       uint
	SID            string
	Name           string
	CommissionRate decimal.Decimal
	Sales          []Sale
	Revenue        decimal.Decimal
	Commission     decimal.Decimal
}

// GlobalSummary folds all seller reports into the dashboard totals.
type GlobalSummary struct {
	TotalRevenue    decimal.Decimal
	TotalCommission decimal.Decimal
	SaleCount       int
	AverageSale     decimal.Decimal
}

// ExpiringClient is a client inside the 30-day warning window, paired with
// its classification and remaining-time breakdown at evaluation time.
type ExpiringClient struct {
	Client    *client.Client
	Status    vo.LifecycleStatus
	Remaining timeutil.Breakdown
}

func productIndex(products []*catalog.Product) map[uint]*catalog.Product {
	idx := make(map[uint]*catalog.Product, len(products))
	for _, p := range products {
		idx[p.ID()] = p
	}
	return idx
}

func isActive(c *client.Client, now time.Time) bool {
	return c.Subscription().Status(now).IsActive()
}

// ProductSummaries computes one summary per product, preserving the input
// product order. Clients with a dangling product reference simply do not
// count toward any product.
func ProductSummaries(clients []*client.Client, products []*catalog.Product, now time.Time) []ProductSummary {
	activeByProduct := make(map[uint]int, len(products))
	for _, c := range clients {
		if c.ProductID() == nil || !isActive(c, now) {
			continue
		}
		activeByProduct[*c.ProductID()]++
	}

	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		count := activeByProduct[p.ID()]
		summaries = append(summaries, ProductSummary{
			ProductID:     p.ID(),
			SID:           p.SID(),
			Name:          p.Name(),
			UnitPrice:     p.Price(),
			ActiveClients: count,
			Revenue:       p.Price().Mul(decimal.NewFromInt(int64(count))),
		})
	}
	return summaries
}

// SellerReports computes one report per seller, preserving the input
// seller order. Commission is computed per sale and then summed, never
// derived from the aggregate revenue.
func SellerReports(clients []*client.Client, products []*catalog.Product, sellers []*catalog.Seller, now time.Time) []SellerReport {
	productIdx := productIndex(products)

	salesBySeller := make(map[uint][]Sale, len(sellers))
	for _, c := range clients {
		if c.SellerID() == nil || !isActive(c, now) {
			continue
		}

		sale := Sale{
			ClientID:    c.ID(),
			ClientSID:   c.SID(),
			ClientName:  c.FullName(),
			ProductName: constants.UnassignedLabel,
			Price:       decimal.Zero,
			Commission:  decimal.Zero,
		}
		if c.ProductID() != nil {
			if p, ok := productIdx[*c.ProductID()]; ok {
				sale.ProductName = p.Name()
				sale.Price = p.Price()
			}
		}
		salesBySeller[*c.SellerID()] = append(salesBySeller[*c.SellerID()], sale)
	}

	reports := make([]SellerReport, 0, len(sellers))
	for _, s := range sellers {
		report := SellerReport{
			SellerID:       s.ID(),
			SID:            s.SID(),
			Name:           s.Name(),
			CommissionRate: s.CommissionRate(),
			Revenue:        decimal.Zero,
			Commission:     decimal.Zero,
		}
		for _, sale := range salesBySeller[s.ID()] {
			sale.Commission = sale.Price.Mul(s.CommissionRate()).Div(oneHundred)
			report.Sales = append(report.Sales, sale)
			report.Revenue = report.Revenue.Add(sale.Price)
			report.Commission = report.Commission.Add(sale.Commission)
		}
		reports = append(reports, report)
	}
	return reports
}

// Summarize folds seller reports into the global dashboard totals. Average
// sale is zero when there are no sales.
func Summarize(reports []SellerReport) GlobalSummary {
	summary := GlobalSummary{
		TotalRevenue:    decimal.Zero,
		TotalCommission: decimal.Zero,
		AverageSale:     decimal.Zero,
	}
	for _, r := range reports {
		summary.TotalRevenue = summary.TotalRevenue.Add(r.Revenue)
		summary.TotalCommission = summary.TotalCommission.Add(r.Commission)
		summary.SaleCount += len(r.Sales)
	}
	if summary.SaleCount > 0 {
		summary.AverageSale = summary.TotalRevenue.Div(decimal.NewFromInt(int64(summary.SaleCount)))
	}
	return summary
}

// ExpiringSoon lists clients whose subscription ends within the 30-day
// window, nearest expiry first. The ordering is part of the report
// contract.
func ExpiringSoon(clients []*client.Client, now time.Time) []ExpiringClient {
	var expiring []ExpiringClient
	for _, c := range clients {
		status := c.Subscription().Status(now)
		if status != vo.LifecycleUrgent && status != vo.LifecycleExpiringSoon {
			continue
		}
		remaining, _ := c.Subscription().Remaining(now)
		expiring = append(expiring, ExpiringClient{
			Client:    c,
			Status:    status,
			Remaining: remaining,
		})
	}
	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].Client.Subscription().End().Before(expiring[j].Client.Subscription().End())
	})
	return expiring
}
