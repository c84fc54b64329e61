package sale

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viamercado/pdv-varejo/internal/domain/cart"
	"github.com/viamercado/pdv-varejo/internal/domain/product"
)

func cartWithItems(t *testing.T) *cart.Cart {
	t.Helper()
	arroz, err := product.NewProduct("Arroz 5kg", decimal.RequireFromString("20.00"), decimal.Zero)
	require.NoError(t, err)
	feijao, err := product.NewProduct("Feijão 1kg", decimal.RequireFromString("5.00"), decimal.Zero)
	require.NoError(t, err)

	c := cart.New("op-1")
	require.NoError(t, c.Add(arroz))
	require.NoError(t, c.Add(feijao))
	return c
}

func TestNewFromCart(t *testing.T) {
	c := cartWithItems(t)

	s, err := NewFromCart(c, "Maria Silva", "12345678901", PaymentPix, "chave-1", "op-1")
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Zero(t, s.Number)
	assert.Equal(t, "Maria Silva", s.CustomerName)
	assert.Equal(t, "12345678901", s.CustomerCPF)
	assert.Equal(t, PaymentPix, s.PaymentMethod)
	assert.Equal(t, StatusFinalizada, s.Status)
	assert.Equal(t, "chave-1", s.IdempotencyKey)
	assert.Equal(t, "op-1", s.UserID)

	assert.True(t, s.Subtotal.Equal(decimal.RequireFromString("25.00")))
	assert.True(t, s.Discount.IsZero())
	assert.True(t, s.Total.Equal(decimal.RequireFromString("25.00")))

	require.Len(t, s.Items, 2)
	for _, item := range s.Items {
		assert.Equal(t, s.ID, item.SaleID)
		assert.NotEmpty(t, item.ID)
		assert.True(t, item.Total.Equal(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))))
	}
	assert.Equal(t, "Arroz 5kg", s.Items[0].ProductName)
	assert.Equal(t, "Feijão 1kg", s.Items[1].ProductName)
}

func TestNewFromCartWithDiscount(t *testing.T) {
	c := cartWithItems(t)
	require.NoError(t, c.SetDiscount(decimal.RequireFromString("3.00")))

	s, err := NewFromCart(c, "", "", PaymentDinheiro, "chave-2", "op-1")
	require.NoError(t, err)

	assert.True(t, s.Subtotal.Equal(decimal.RequireFromString("25.00")))
	assert.True(t, s.Discount.Equal(decimal.RequireFromString("3.00")))
	assert.True(t, s.Total.Equal(decimal.RequireFromString("22.00")))
}

func TestNewFromCartEmpty(t *testing.T) {
	_, err := NewFromCart(cart.New("op-1"), "", "", PaymentDinheiro, "chave", "op-1")
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = NewFromCart(nil, "", "", PaymentDinheiro, "chave", "op-1")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestNewFromCartInvalidPaymentMethod(t *testing.T) {
	c := cartWithItems(t)

	_, err := NewFromCart(c, "", "", "cheque", "chave", "op-1")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)

	_, err = NewFromCart(c, "", "", "", "chave", "op-1")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestNewFromCartMissingIdempotencyKey(t *testing.T) {
	c := cartWithItems(t)

	_, err := NewFromCart(c, "", "", PaymentCartao, "", "op-1")
	assert.ErrorIs(t, err, ErrIdempotencyKeyMissing)
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(PaymentDinheiro))
	assert.True(t, ValidPaymentMethod(PaymentCartao))
	assert.True(t, ValidPaymentMethod(PaymentPix))
	assert.False(t, ValidPaymentMethod("boleto"))
	assert.False(t, ValidPaymentMethod(""))
}

func TestStockConflictError(t *testing.T) {
	err := &StockConflictError{ProductID: "p-1", ProductName: "Arroz 5kg"}
	assert.Contains(t, err.Error(), "Arroz 5kg")
	assert.Contains(t, err.Error(), "estoque insuficiente")
}
