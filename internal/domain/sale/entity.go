package sale

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/domain/cart"
)

// PaymentMethod representa a forma de pagamento da venda
type PaymentMethod string

// Status representa o status da venda
type Status string

// Formas de pagamento aceitas
const (
	PaymentDinheiro PaymentMethod = "dinheiro"
	PaymentCartao   PaymentMethod = "cartao"
	PaymentPix      PaymentMethod = "pix"
)

// Status de venda
const (
	StatusFinalizada Status = "finalizada"
)

// Erros de validação
var (
	ErrEmptyCart             = errors.New("não é possível finalizar uma venda sem itens")
	ErrInvalidPaymentMethod  = errors.New("forma de pagamento inválida")
	ErrInvalidDiscount       = errors.New("desconto não pode ser negativo nem maior que o subtotal")
	ErrInvalidQuantity       = errors.New("quantidade do item deve ser maior que zero")
	ErrIdempotencyKeyMissing = errors.New("chave de idempotência é obrigatória")
)

// StockConflictError indica que a finalização foi rejeitada porque o
// decremento deixaria o estoque do produto negativo. A transação inteira
// é desfeita; nenhuma venda parcial é gravada.
type StockConflictError struct {
	ProductID   string
	ProductName string
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("estoque insuficiente para o produto %s", e.ProductName)
}

// ValidPaymentMethod verifica se a forma de pagamento é uma das aceitas
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentDinheiro, PaymentCartao, PaymentPix:
		return true
	}
	return false
}

// Item é um item imutável de uma venda finalizada. Nome e preço unitário
// são cópias do momento da venda; o produto pode ser alterado ou removido
// depois sem invalidar o histórico.
type Item struct {
	ID          string          `json:"id"`
	SaleID      string          `json:"sale_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Sale representa uma venda finalizada
type Sale struct {
	ID             string          `json:"id"`
	Number         int64           `json:"sale_number"`
	CustomerName   string          `json:"customer_name,omitempty"`
	CustomerCPF    string          `json:"customer_cpf,omitempty"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	Total          decimal.Decimal `json:"total"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	Status         Status          `json:"status"`
	Notes          string          `json:"notes,omitempty"`
	IdempotencyKey string          `json:"-"`
	UserID         string          `json:"user_id"`
	Items          []Item          `json:"items,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// NewFromCart monta a venda a partir do snapshot do carrinho, validando as
// precondições locais (carrinho, pagamento, desconto, quantidades). O número
// sequencial da venda só é atribuído dentro da transação de finalização.
func NewFromCart(c *cart.Cart, customerName, customerCPF string, method PaymentMethod, idempotencyKey, userID string) (*Sale, error) {
	if c == nil || c.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if !ValidPaymentMethod(method) {
		return nil, ErrInvalidPaymentMethod
	}
	if idempotencyKey == "" {
		return nil, ErrIdempotencyKeyMissing
	}

	subtotal := c.Subtotal()
	discount := c.Discount
	if discount.IsNegative() || discount.GreaterThan(subtotal) {
		return nil, ErrInvalidDiscount
	}

	now := time.Now()
	s := &Sale{
		ID:             uuid.New().String(),
		CustomerName:   customerName,
		CustomerCPF:    customerCPF,
		Subtotal:       subtotal,
		Discount:       discount,
		Total:          subtotal.Sub(discount),
		PaymentMethod:  method,
		Status:         StatusFinalizada,
		IdempotencyKey: idempotencyKey,
		UserID:         userID,
		CreatedAt:      now,
	}

	for _, line := range c.Snapshot() {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		s.Items = append(s.Items, Item{
			ID:          uuid.New().String(),
			SaleID:      s.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Total:       line.Total(),
			CreatedAt:   now,
		})
	}

	return s, nil
}
