package dto

import (
	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/domain/cart"
	"github.com/viamercado/pdv-varejo/internal/domain/sale"
)

// AddItemRequest representa a requisição de inclusão de produto no carrinho
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// SetQuantityRequest representa a requisição de alteração de quantidade
type SetQuantityRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// DiscountRequest representa a requisição de desconto sobre o carrinho
type DiscountRequest struct {
	Discount float64 `json:"discount" binding:"gte=0"`
}

// FinalizeRequest representa a requisição de finalização da venda. A chave
// de idempotência é gerada pelo cliente e repetida em reenvios da mesma
// tentativa de finalização.
type FinalizeRequest struct {
	CustomerName   string             `json:"customer_name"`
	CustomerCPF    string             `json:"customer_cpf"`
	PaymentMethod  sale.PaymentMethod `json:"payment_method" binding:"required"`
	IdempotencyKey string             `json:"idempotency_key" binding:"required"`
}

// CartLineResponse representa uma linha do carrinho
type CartLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// CartResponse representa o estado atual do carrinho do operador
type CartResponse struct {
	OperatorID string             `json:"operator_id"`
	Lines      []CartLineResponse `json:"lines"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
	Discount   decimal.Decimal    `json:"discount"`
	Total      decimal.Decimal    `json:"total"`
}

// ToCartResponse converte o carrinho para o formato de resposta
func ToCartResponse(c *cart.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(c.Lines))
	for _, l := range c.Snapshot() {
		lines = append(lines, CartLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Total:       l.Total(),
		})
	}

	return CartResponse{
		OperatorID: c.OperatorID,
		Lines:      lines,
		Subtotal:   c.Subtotal(),
		Discount:   c.Discount,
		Total:      c.Total(),
	}
}
