package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/domain/stock"
)

// StockAdjustRequest representa a requisição de ajuste manual de estoque.
// A quantidade é o delta a aplicar: positiva para entrada, negativa para
// baixa.
type StockAdjustRequest struct {
	Quantity float64 `json:"quantity" binding:"required"`
	Reason   string  `json:"reason" binding:"required"`
}

// StockMovementResponse representa um movimento de estoque
type StockMovementResponse struct {
	ID          string             `json:"id"`
	ProductID   string             `json:"product_id"`
	Type        stock.MovementType `json:"type"`
	Quantity    decimal.Decimal    `json:"quantity"`
	Reason      string             `json:"reason,omitempty"`
	ReferenceID string             `json:"reference_id,omitempty"`
	UserID      string             `json:"user_id"`
	CreatedAt   time.Time          `json:"created_at"`
}

// StockAdjustResponse representa o resultado de um ajuste de estoque
type StockAdjustResponse struct {
	Movement StockMovementResponse `json:"movement"`
	StockQty decimal.Decimal       `json:"stock_qty"`
}

// ToStockMovementResponse converte um movimento de estoque para o formato de resposta
func ToStockMovementResponse(m *stock.Movement) StockMovementResponse {
	return StockMovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		ReferenceID: m.ReferenceID,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
	}
}

// ToStockMovementResponses converte uma lista de movimentos de estoque
func ToStockMovementResponses(movements []*stock.Movement) []StockMovementResponse {
	items := make([]StockMovementResponse, len(movements))
	for i, m := range movements {
		items[i] = ToStockMovementResponse(m)
	}
	return items
}
