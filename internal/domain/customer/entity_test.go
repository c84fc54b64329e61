package customer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("  Maria Silva  ", "123.456.789-01")
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Maria Silva", c.Name)
	assert.Equal(t, "12345678901", c.Document)
	assert.True(t, c.Active)
	assert.True(t, c.CreditLimit.IsZero())
}

func TestNewCustomerAcceptsCNPJ(t *testing.T) {
	c, err := NewCustomer("Mercadinho da Esquina", "12.345.678/0001-90")
	require.NoError(t, err)
	assert.Equal(t, "12345678000190", c.Document)
}

func TestNewCustomerWithoutDocument(t *testing.T) {
	c, err := NewCustomer("Consumidor", "")
	require.NoError(t, err)
	assert.Empty(t, c.Document)
}

func TestNewCustomerValidation(t *testing.T) {
	_, err := NewCustomer("  ", "")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = NewCustomer("Maria", "123")
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestUpdate(t *testing.T) {
	c, err := NewCustomer("Maria", "")
	require.NoError(t, err)

	err = c.Update("Maria Silva", "maria@email.com", "11999990000", "Rua A, 10", "cliente antiga",
		decimal.RequireFromString("200.00"))
	require.NoError(t, err)

	assert.Equal(t, "Maria Silva", c.Name)
	assert.Equal(t, "maria@email.com", c.Email)
	assert.True(t, c.CreditLimit.Equal(decimal.RequireFromString("200.00")))

	assert.ErrorIs(t, c.Update("", "", "", "", "", decimal.Zero), ErrNameRequired)
	assert.ErrorIs(t, c.Update("Maria", "", "", "", "", decimal.RequireFromString("-1")), ErrNegativeCredit)
}

func TestDeactivate(t *testing.T) {
	c, err := NewCustomer("Maria", "")
	require.NoError(t, err)

	c.Deactivate()
	assert.False(t, c.Active)
}
