package stock

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovement(t *testing.T) {
	m, err := NewMovement("p-1", MovementAjuste, decimal.RequireFromString("-3"), "quebra de validade", "", "user-1")
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "p-1", m.ProductID)
	assert.Equal(t, MovementAjuste, m.Type)
	assert.True(t, m.Quantity.Equal(decimal.RequireFromString("-3")))
	assert.Equal(t, "quebra de validade", m.Reason)
}

func TestNewMovementValidation(t *testing.T) {
	_, err := NewMovement("", MovementEntrada, decimal.NewFromInt(1), "", "", "user-1")
	assert.ErrorIs(t, err, ErrProductRequired)

	_, err = NewMovement("p-1", MovementType("transferencia"), decimal.NewFromInt(1), "", "", "user-1")
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = NewMovement("p-1", MovementSaida, decimal.Zero, "", "", "user-1")
	assert.ErrorIs(t, err, ErrZeroQuantity)
}
