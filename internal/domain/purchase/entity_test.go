package purchase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	items := []ItemInput{
		{ProductID: "p-1", ProductName: "Arroz 5kg", Quantity: decimal.NewFromInt(10), UnitCost: decimal.RequireFromString("18.00")},
		{ProductID: "p-2", ProductName: "Feijão 1kg", Quantity: decimal.RequireFromString("24.5"), UnitCost: decimal.RequireFromString("4.00")},
	}

	p, err := New("sup-1", "NF 123", "carga de terça", "user-1", items)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "sup-1", p.SupplierID)
	assert.Equal(t, "NF 123", p.InvoiceRef)
	assert.Equal(t, StatusRecebida, p.Status)
	require.Len(t, p.Items, 2)

	assert.True(t, p.Items[0].Total.Equal(decimal.RequireFromString("180.00")))
	assert.True(t, p.Items[1].Total.Equal(decimal.RequireFromString("98.00")))
	assert.True(t, p.Total.Equal(decimal.RequireFromString("278.00")))

	for _, item := range p.Items {
		assert.Equal(t, p.ID, item.PurchaseID)
		assert.NotEmpty(t, item.ID)
	}
}

func TestNewValidation(t *testing.T) {
	item := ItemInput{ProductID: "p-1", Quantity: decimal.NewFromInt(1), UnitCost: decimal.NewFromInt(1)}

	_, err := New("", "", "", "user-1", []ItemInput{item})
	assert.ErrorIs(t, err, ErrSupplierRequired)

	_, err = New("sup-1", "", "", "user-1", nil)
	assert.ErrorIs(t, err, ErrNoItems)

	_, err = New("sup-1", "", "", "user-1", []ItemInput{
		{ProductID: "p-1", Quantity: decimal.Zero, UnitCost: decimal.NewFromInt(1)},
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = New("sup-1", "", "", "user-1", []ItemInput{
		{ProductID: "p-1", Quantity: decimal.NewFromInt(1), UnitCost: decimal.RequireFromString("-1")},
	})
	assert.ErrorIs(t, err, ErrInvalidCost)
}

func TestNewAcceptsZeroCost(t *testing.T) {
	p, err := New("sup-1", "", "bonificação", "user-1", []ItemInput{
		{ProductID: "p-1", ProductName: "Brinde", Quantity: decimal.NewFromInt(5), UnitCost: decimal.Zero},
	})
	require.NoError(t, err)
	assert.True(t, p.Total.IsZero())
}
