package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	product, err := NewProduct("Abbonamento Base", decimal.NewFromFloat(29.99))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(product.SID(), "prd_"))
	assert.Equal(t, "Abbonamento Base", product.Name())
	assert.True(t, product.Price().Equal(decimal.NewFromFloat(29.99)))

	_, err = NewProduct("", decimal.NewFromInt(10))
	assert.Error(t, err)

	_, err = NewProduct("Negativo", decimal.NewFromInt(-1))
	assert.Error(t, err)

	product, err = NewProduct("Gratis", decimal.Zero)
	require.NoError(t, err, "zero price is allowed")
	assert.True(t, product.Price().IsZero())
}

func TestProduct_Update(t *testing.T) {
	product, err := NewProduct("Base", decimal.NewFromFloat(29.99))
	require.NoError(t, err)

	require.NoError(t, product.Update("Premium", decimal.NewFromFloat(59.99)))
	assert.Equal(t, "Premium", product.Name())
	assert.True(t, product.Price().Equal(decimal.NewFromFloat(59.99)))

	assert.Error(t, product.Update("", decimal.NewFromInt(1)))
	assert.Error(t, product.Update("Premium", decimal.NewFromInt(-5)))
}

func TestProduct_SetID(t *testing.T) {
	product, err := NewProduct("Base", decimal.NewFromFloat(29.99))
	require.NoError(t, err)

	require.NoError(t, product.SetID(3))
	assert.Equal(t, uint(3), product.ID())
	assert.Error(t, product.SetID(4))
}

func TestNewSeller(t *testing.T) {
	seller, err := NewSeller("Marco Neri", decimal.NewFromInt(10))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(seller.SID(), "sel_"))
	assert.True(t, seller.CommissionRate().Equal(decimal.NewFromInt(10)))

	_, err = NewSeller("  ", decimal.NewFromInt(10))
	assert.Error(t, err)

	_, err = NewSeller("Marco", decimal.NewFromInt(-1))
	assert.Error(t, err)
}

func TestSeller_Update(t *testing.T) {
	seller, err := NewSeller("Marco Neri", decimal.NewFromInt(10))
	require.NoError(t, err)

	require.NoError(t, seller.Update("Laura Gialli", decimal.NewFromInt(12)))
	assert.Equal(t, "Laura Gialli", seller.Name())
	assert.True(t, seller.CommissionRate().Equal(decimal.NewFromInt(12)))

	assert.Error(t, seller.Update("Laura", decimal.NewFromInt(-3)))
}

func TestReconstruct(t *testing.T) {
	now := time.Now().UTC()

	product, err := ReconstructProduct(1, "prd_x", "Base", decimal.NewFromFloat(29.99), now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(1), product.ID())

	_, err = ReconstructProduct(0, "prd_x", "Base", decimal.Zero, now, now)
	assert.Error(t, err)

	seller, err := ReconstructSeller(2, "sel_x", "Marco", decimal.NewFromInt(10), now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(2), seller.ID())

	_, err = ReconstructSeller(0, "sel_x", "Marco", decimal.Zero, now, now)
	assert.Error(t, err)
}
