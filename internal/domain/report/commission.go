// Package report is the pure read-side of the system: per-sale commission
// arithmetic and the aggregate projections behind the dashboard and the
// seller/product reports. Nothing here mutates its inputs or touches
// storage; every projection is recomputed from entity snapshots plus the
// current instant.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/gestio-app/gestio/internal/domain/catalog"
)

var oneHundred = decimal.NewFromInt(100)

// Commission returns the amount owed to a seller for one sale of a
// product: price times rate divided by 100. Either reference missing
// yields zero. Full precision is kept; rounding to 2 digits happens only
// at presentation time.
func Commission(product *catalog.Product, seller *catalog.Seller) decimal.Decimal {
	if product == nil || seller == nil {
		return decimal.Zero
	}
	return product.Price().Mul(seller.CommissionRate()).Div(oneHundred)
}
