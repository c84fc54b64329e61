package finance

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementType representa o sentido do movimento financeiro
type MovementType string

// ReceivableStatus representa o status de uma conta a receber
type ReceivableStatus string

// Tipos de movimento
const (
	MovementEntrada MovementType = "entrada"
	MovementSaida   MovementType = "saida"
)

// Status de conta a receber
const (
	ReceivableAberta  ReceivableStatus = "aberta"
	ReceivableQuitada ReceivableStatus = "quitada"
)

// Erros de validação e de regra de negócio
var (
	ErrInvalidType        = errors.New("tipo de movimento inválido")
	ErrInvalidAmount      = errors.New("valor deve ser maior que zero")
	ErrDescriptionMissing = errors.New("descrição é obrigatória")
	ErrCustomerRequired   = errors.New("cliente é obrigatório na conta a receber")
	ErrAlreadySettled     = errors.New("conta a receber já quitada")
)

// Movement é um lançamento do livro caixa. O livro é append-only: um
// lançamento nunca é alterado depois de gravado.
type Movement struct {
	ID            string          `json:"id"`
	Type          MovementType    `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	UserID        string          `json:"user_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewMovement cria um lançamento financeiro validado
func NewMovement(movType MovementType, amount decimal.Decimal, description, paymentMethod, referenceID, userID string) (*Movement, error) {
	if movType != MovementEntrada && movType != MovementSaida {
		return nil, ErrInvalidType
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrDescriptionMissing
	}

	return &Movement{
		ID:            uuid.New().String(),
		Type:          movType,
		Amount:        amount,
		Description:   description,
		PaymentMethod: paymentMethod,
		ReferenceID:   referenceID,
		UserID:        userID,
		CreatedAt:     time.Now(),
	}, nil
}

// Receivable é uma conta a receber (crediário)
type Receivable struct {
	ID          string           `json:"id"`
	CustomerID  string           `json:"customer_id"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	DueDate     time.Time        `json:"due_date"`
	Status      ReceivableStatus `json:"status"`
	SettledAt   *time.Time       `json:"settled_at,omitempty"`
	UserID      string           `json:"user_id"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NewReceivable cria uma conta a receber em aberto
func NewReceivable(customerID, description string, amount decimal.Decimal, dueDate time.Time, userID string) (*Receivable, error) {
	if customerID == "" {
		return nil, ErrCustomerRequired
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrDescriptionMissing
	}

	return &Receivable{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		Description: description,
		Amount:      amount,
		DueDate:     dueDate,
		Status:      ReceivableAberta,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}, nil
}

// Settle quita a conta a receber. A quitação gera um lançamento de entrada
// no caixa referenciando a conta.
func (r *Receivable) Settle(now time.Time) (*Movement, error) {
	if r.Status == ReceivableQuitada {
		return nil, ErrAlreadySettled
	}
	r.Status = ReceivableQuitada
	r.SettledAt = &now

	return NewMovement(MovementEntrada, r.Amount, "Recebimento crediário: "+r.Description, "", r.ID, r.UserID)
}

// Summary agrega entradas, saídas e saldo de um período
type Summary struct {
	Inflows  decimal.Decimal `json:"inflows"`
	Outflows decimal.Decimal `json:"outflows"`
	Balance  decimal.Decimal `json:"balance"`
}
