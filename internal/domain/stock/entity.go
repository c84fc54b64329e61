package stock

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementType representa o tipo de movimento de estoque
type MovementType string

// Tipos de movimento
const (
	MovementEntrada MovementType = "entrada"
	MovementSaida   MovementType = "saida"
	MovementAjuste  MovementType = "ajuste"
)

// Erros de validação
var (
	ErrProductRequired = errors.New("produto é obrigatório")
	ErrInvalidType     = errors.New("tipo de movimento inválido")
	ErrZeroQuantity    = errors.New("quantidade do movimento não pode ser zero")
)

// Movement é um registro do livro de estoque. O livro é append-only:
// movimentos nunca são alterados depois de gravados.
type Movement struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Type        MovementType    `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason,omitempty"`
	ReferenceID string          `json:"reference_id,omitempty"`
	UserID      string          `json:"user_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewMovement cria um movimento de estoque validado
func NewMovement(productID string, movType MovementType, quantity decimal.Decimal, reason, referenceID, userID string) (*Movement, error) {
	if productID == "" {
		return nil, ErrProductRequired
	}
	switch movType {
	case MovementEntrada, MovementSaida, MovementAjuste:
	default:
		return nil, ErrInvalidType
	}
	if quantity.IsZero() {
		return nil, ErrZeroQuantity
	}

	return &Movement{
		ID:          uuid.New().String(),
		ProductID:   productID,
		Type:        movType,
		Quantity:    quantity,
		Reason:      reason,
		ReferenceID: referenceID,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}, nil
}
