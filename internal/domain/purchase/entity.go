package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status representa o status da compra
type Status string

// Status de compra
const (
	StatusRecebida Status = "recebida"
)

// Erros de validação
var (
	ErrSupplierRequired = errors.New("fornecedor é obrigatório")
	ErrNoItems          = errors.New("compra deve ter ao menos um item")
	ErrInvalidQuantity  = errors.New("quantidade do item deve ser maior que zero")
	ErrInvalidCost      = errors.New("custo unitário não pode ser negativo")
)

// Item é um item de uma compra registrada
type Item struct {
	ID          string          `json:"id"`
	PurchaseID  string          `json:"purchase_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Total       decimal.Decimal `json:"total"`
}

// Purchase representa uma entrada de mercadoria de um fornecedor. O
// registro é o espelho da finalização de venda: incrementa o estoque,
// grava movimentos de entrada e lança a saída no caixa, tudo na mesma
// transação.
type Purchase struct {
	ID         string          `json:"id"`
	SupplierID string          `json:"supplier_id"`
	InvoiceRef string          `json:"invoice_ref,omitempty"`
	Total      decimal.Decimal `json:"total"`
	Status     Status          `json:"status"`
	Notes      string          `json:"notes,omitempty"`
	UserID     string          `json:"user_id"`
	Items      []Item          `json:"items,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ItemInput descreve um item a registrar na compra
type ItemInput struct {
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
}

// New monta uma compra validada a partir dos itens informados
func New(supplierID, invoiceRef, notes, userID string, items []ItemInput) (*Purchase, error) {
	if supplierID == "" {
		return nil, ErrSupplierRequired
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	p := &Purchase{
		ID:         uuid.New().String(),
		SupplierID: supplierID,
		InvoiceRef: invoiceRef,
		Total:      decimal.Zero,
		Status:     StatusRecebida,
		Notes:      notes,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}

	for _, in := range items {
		if in.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, ErrInvalidQuantity
		}
		if in.UnitCost.IsNegative() {
			return nil, ErrInvalidCost
		}
		total := in.UnitCost.Mul(in.Quantity)
		p.Items = append(p.Items, Item{
			ID:          uuid.New().String(),
			PurchaseID:  p.ID,
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Quantity:    in.Quantity,
			UnitCost:    in.UnitCost,
			Total:       total,
		})
		p.Total = p.Total.Add(total)
	}

	return p, nil
}
