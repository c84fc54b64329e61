package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/domain/sale"
)

// SaleItemResponse representa um item de venda
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID            string             `json:"id"`
	Number        int64              `json:"sale_number"`
	CustomerName  string             `json:"customer_name,omitempty"`
	CustomerCPF   string             `json:"customer_cpf,omitempty"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Discount      decimal.Decimal    `json:"discount"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod sale.PaymentMethod `json:"payment_method"`
	Status        sale.Status        `json:"status"`
	UserID        string             `json:"user_id"`
	Items         []SaleItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// SaleListResponse representa a resposta de lista de vendas
type SaleListResponse struct {
	Items      []SaleResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// DailySummaryResponse representa o resumo de vendas de um dia
type DailySummaryResponse struct {
	Date       string          `json:"date"`
	SalesCount int             `json:"sales_count"`
	Total      decimal.Decimal `json:"total"`
}

// ToSaleResponse converte uma venda de domínio para o formato de resposta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		}
	}

	return SaleResponse{
		ID:            s.ID,
		Number:        s.Number,
		CustomerName:  s.CustomerName,
		CustomerCPF:   s.CustomerCPF,
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
		UserID:        s.UserID,
		Items:         items,
		CreatedAt:     s.CreatedAt,
	}
}

// ToSaleListResponse converte uma lista de vendas para o formato de resposta
func ToSaleListResponse(sales []*sale.Sale, totalCount, page, pageSize int) SaleListResponse {
	items := make([]SaleResponse, len(sales))
	for i, s := range sales {
		items[i] = ToSaleResponse(s)
	}

	return SaleListResponse{
		Items:      items,
		Total:      totalCount,
		Page:       page,
		Size:       pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}

// ToDailySummaryResponse converte o resumo diário para o formato de resposta
func ToDailySummaryResponse(s *sale.DailySummary) DailySummaryResponse {
	return DailySummaryResponse{
		Date:       s.Date.Format("2006-01-02"),
		SalesCount: s.SalesCount,
		Total:      s.Total,
	}
}
