package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("  Arroz 5kg  ", decimal.RequireFromString("25.90"), decimal.RequireFromString("18.00"))
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Arroz 5kg", p.Name)
	assert.Equal(t, "un", p.Unit)
	assert.True(t, p.Active)
	assert.True(t, p.StockQty.IsZero())
	assert.True(t, p.MinStock.IsZero())
}

func TestNewProductValidation(t *testing.T) {
	_, err := NewProduct("   ", decimal.NewFromInt(10), decimal.Zero)
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = NewProduct("Produto", decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewProduct("Produto", decimal.NewFromInt(10), decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, ErrInvalidCost)
}

func TestUpdate(t *testing.T) {
	p, err := NewProduct("Arroz", decimal.NewFromInt(20), decimal.Zero)
	require.NoError(t, err)

	err = p.Update("Arroz Tipo 1", "pacote 5kg", "7891234567890", "ARZ-01", "mercearia", "pct",
		decimal.RequireFromString("27.50"), decimal.RequireFromString("19.00"), decimal.NewFromInt(5))
	require.NoError(t, err)

	assert.Equal(t, "Arroz Tipo 1", p.Name)
	assert.Equal(t, "7891234567890", p.Barcode)
	assert.Equal(t, "pct", p.Unit)
	assert.True(t, p.MinStock.Equal(decimal.NewFromInt(5)))
}

func TestUpdateKeepsUnitWhenEmpty(t *testing.T) {
	p, err := NewProduct("Arroz", decimal.NewFromInt(20), decimal.Zero)
	require.NoError(t, err)

	require.NoError(t, p.Update("Arroz", "", "", "", "", "", decimal.NewFromInt(20), decimal.Zero, decimal.Zero))
	assert.Equal(t, "un", p.Unit)
}

func TestUpdateValidation(t *testing.T) {
	p, err := NewProduct("Arroz", decimal.NewFromInt(20), decimal.Zero)
	require.NoError(t, err)

	err = p.Update("Arroz", "", "", "", "", "", decimal.NewFromInt(20), decimal.Zero, decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, ErrNegativeStock)
}

func TestSetFiscalData(t *testing.T) {
	p, err := NewProduct("Arroz", decimal.NewFromInt(20), decimal.Zero)
	require.NoError(t, err)

	p.SetFiscalData("10063021", "5102", "102")
	assert.Equal(t, "10063021", p.NCM)
	assert.Equal(t, "5102", p.CFOP)
	assert.Equal(t, "102", p.CST)
}

func TestActivateDeactivate(t *testing.T) {
	p, err := NewProduct("Arroz", decimal.NewFromInt(20), decimal.Zero)
	require.NoError(t, err)

	p.Deactivate()
	assert.False(t, p.Active)
	p.Activate()
	assert.True(t, p.Active)
}

func TestBelowMinStock(t *testing.T) {
	p, err := NewProduct("Arroz", decimal.NewFromInt(20), decimal.Zero)
	require.NoError(t, err)

	// Sem mínimo configurado nunca alerta
	assert.False(t, p.BelowMinStock())

	p.MinStock = decimal.NewFromInt(5)
	p.StockQty = decimal.NewFromInt(3)
	assert.True(t, p.BelowMinStock())

	p.StockQty = decimal.NewFromInt(5)
	assert.False(t, p.BelowMinStock())
}
