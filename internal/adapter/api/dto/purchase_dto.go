package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/domain/purchase"
)

// PurchaseItemRequest representa um item da requisição de compra
type PurchaseItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	UnitCost  float64 `json:"unit_cost" binding:"gte=0"`
}

// PurchaseRequest representa a requisição de registro de compra
type PurchaseRequest struct {
	SupplierID string                `json:"supplier_id" binding:"required"`
	InvoiceRef string                `json:"invoice_ref"`
	Notes      string                `json:"notes"`
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1"`
}

// PurchaseItemResponse representa um item da compra
type PurchaseItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Total       decimal.Decimal `json:"total"`
}

// PurchaseResponse representa a resposta de compra
type PurchaseResponse struct {
	ID         string                 `json:"id"`
	SupplierID string                 `json:"supplier_id"`
	InvoiceRef string                 `json:"invoice_ref,omitempty"`
	Total      decimal.Decimal        `json:"total"`
	Status     purchase.Status        `json:"status"`
	Notes      string                 `json:"notes,omitempty"`
	UserID     string                 `json:"user_id"`
	Items      []PurchaseItemResponse `json:"items,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

// PurchaseListResponse representa a resposta de lista de compras
type PurchaseListResponse struct {
	Items      []PurchaseResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToPurchaseResponse converte uma compra de domínio para o formato de resposta
func ToPurchaseResponse(p *purchase.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(p.Items))
	for i, it := range p.Items {
		items[i] = PurchaseItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitCost:    it.UnitCost,
			Total:       it.Total,
		}
	}

	return PurchaseResponse{
		ID:         p.ID,
		SupplierID: p.SupplierID,
		InvoiceRef: p.InvoiceRef,
		Total:      p.Total,
		Status:     p.Status,
		Notes:      p.Notes,
		UserID:     p.UserID,
		Items:      items,
		CreatedAt:  p.CreatedAt,
	}
}

// ToPurchaseListResponse converte uma lista de compras para o formato de resposta
func ToPurchaseListResponse(purchases []*purchase.Purchase, totalCount, page, pageSize int) PurchaseListResponse {
	items := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		items[i] = ToPurchaseResponse(p)
	}

	return PurchaseListResponse{
		Items:      items,
		Total:      totalCount,
		Page:       page,
		Size:       pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}
