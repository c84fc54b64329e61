package dto

import (
	"github.com/shopspring/decimal"
)

// DashboardResponse agrega os indicadores do painel do dia
type DashboardResponse struct {
	Date             string            `json:"date"`
	SalesCount       int               `json:"sales_count"`
	SalesTotal       decimal.Decimal   `json:"sales_total"`
	Inflows          decimal.Decimal   `json:"inflows"`
	Outflows         decimal.Decimal   `json:"outflows"`
	Balance          decimal.Decimal   `json:"balance"`
	LowStockCount    int               `json:"low_stock_count"`
	OpenReceivables  int               `json:"open_receivables"`
	LowStockProducts []ProductResponse `json:"low_stock_products,omitempty"`
}
