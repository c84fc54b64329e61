package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/domain/product"
)

// ProductRequest representa a requisição de produto
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Barcode     string  `json:"barcode"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CostPrice   float64 `json:"cost_price" binding:"gte=0"`
	MinStock    float64 `json:"min_stock" binding:"gte=0"`
	NCM         string  `json:"ncm"`
	CFOP        string  `json:"cfop"`
	CST         string  `json:"cst"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Barcode     string          `json:"barcode,omitempty"`
	SKU         string          `json:"sku,omitempty"`
	Category    string          `json:"category,omitempty"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	StockQty    decimal.Decimal `json:"stock_qty"`
	MinStock    decimal.Decimal `json:"min_stock"`
	NCM         string          `json:"ncm,omitempty"`
	CFOP        string          `json:"cfop,omitempty"`
	CST         string          `json:"cst,omitempty"`
	Active      bool            `json:"active"`
	LowStock    bool            `json:"low_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// ToProductResponse converte um produto de domínio para o formato de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Barcode:     p.Barcode,
		SKU:         p.SKU,
		Category:    p.Category,
		Unit:        p.Unit,
		Price:       p.Price,
		CostPrice:   p.CostPrice,
		StockQty:    p.StockQty,
		MinStock:    p.MinStock,
		NCM:         p.NCM,
		CFOP:        p.CFOP,
		CST:         p.CST,
		Active:      p.Active,
		LowStock:    p.BelowMinStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos para o formato de resposta
func ToProductListResponse(products []*product.Product, totalCount, page, pageSize int) ProductListResponse {
	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = ToProductResponse(p)
	}

	return ProductListResponse{
		Items:      items,
		Total:      totalCount,
		Page:       page,
		Size:       pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}

// ToProductResponses converte uma lista simples de produtos, sem paginação
func ToProductResponses(products []*product.Product) []ProductResponse {
	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = ToProductResponse(p)
	}
	return items
}
