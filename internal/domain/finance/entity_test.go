package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovement(t *testing.T) {
	m, err := NewMovement(MovementSaida, decimal.RequireFromString("150.00"), "Pagamento de fornecedor", "pix", "ref-1", "user-1")
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, MovementSaida, m.Type)
	assert.True(t, m.Amount.Equal(decimal.RequireFromString("150.00")))
	assert.Equal(t, "Pagamento de fornecedor", m.Description)
	assert.Equal(t, "pix", m.PaymentMethod)
	assert.Equal(t, "ref-1", m.ReferenceID)
}

func TestNewMovementInvalidType(t *testing.T) {
	_, err := NewMovement("transferencia", decimal.NewFromInt(10), "desc", "", "", "user-1")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestNewMovementInvalidAmount(t *testing.T) {
	_, err := NewMovement(MovementEntrada, decimal.Zero, "desc", "", "", "user-1")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewMovement(MovementEntrada, decimal.RequireFromString("-5.00"), "desc", "", "", "user-1")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestNewMovementMissingDescription(t *testing.T) {
	_, err := NewMovement(MovementEntrada, decimal.NewFromInt(10), "   ", "", "", "user-1")
	assert.ErrorIs(t, err, ErrDescriptionMissing)
}

func TestNewReceivable(t *testing.T) {
	due := time.Now().AddDate(0, 1, 0)
	r, err := NewReceivable("cust-1", "Compra fiada", decimal.RequireFromString("80.00"), due, "user-1")
	require.NoError(t, err)

	assert.Equal(t, ReceivableAberta, r.Status)
	assert.Nil(t, r.SettledAt)
	assert.Equal(t, "cust-1", r.CustomerID)
}

func TestNewReceivableValidation(t *testing.T) {
	due := time.Now()

	_, err := NewReceivable("", "desc", decimal.NewFromInt(10), due, "user-1")
	assert.ErrorIs(t, err, ErrCustomerRequired)

	_, err = NewReceivable("cust-1", "desc", decimal.Zero, due, "user-1")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewReceivable("cust-1", "", decimal.NewFromInt(10), due, "user-1")
	assert.ErrorIs(t, err, ErrDescriptionMissing)
}

func TestSettle(t *testing.T) {
	r, err := NewReceivable("cust-1", "Compra fiada", decimal.RequireFromString("80.00"), time.Now(), "user-1")
	require.NoError(t, err)

	now := time.Now()
	m, err := r.Settle(now)
	require.NoError(t, err)

	assert.Equal(t, ReceivableQuitada, r.Status)
	require.NotNil(t, r.SettledAt)
	assert.Equal(t, now, *r.SettledAt)

	assert.Equal(t, MovementEntrada, m.Type)
	assert.True(t, m.Amount.Equal(r.Amount))
	assert.Equal(t, "Recebimento crediário: Compra fiada", m.Description)
	assert.Equal(t, r.ID, m.ReferenceID)
}

func TestSettleTwice(t *testing.T) {
	r, err := NewReceivable("cust-1", "Compra fiada", decimal.NewFromInt(50), time.Now(), "user-1")
	require.NoError(t, err)

	_, err = r.Settle(time.Now())
	require.NoError(t, err)

	_, err = r.Settle(time.Now())
	assert.ErrorIs(t, err, ErrAlreadySettled)
}
