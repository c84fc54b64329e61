package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/domain/customer"
)

// CustomerRequest representa a requisição de cliente
type CustomerRequest struct {
	Name        string  `json:"name" binding:"required"`
	Document    string  `json:"document"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	CreditLimit float64 `json:"credit_limit" binding:"gte=0"`
	Notes       string  `json:"notes"`
}

// CustomerResponse representa a resposta de cliente
type CustomerResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Document    string          `json:"document,omitempty"`
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Address     string          `json:"address,omitempty"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Notes       string          `json:"notes,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CustomerListResponse representa a resposta de lista de clientes
type CustomerListResponse struct {
	Items      []CustomerResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToCustomerResponse converte um cliente de domínio para o formato de resposta
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Document:    c.Document,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		CreditLimit: c.CreditLimit,
		Notes:       c.Notes,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCustomerListResponse converte uma lista de clientes para o formato de resposta
func ToCustomerListResponse(customers []*customer.Customer, totalCount, page, pageSize int) CustomerListResponse {
	items := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		items[i] = ToCustomerResponse(c)
	}

	return CustomerListResponse{
		Items:      items,
		Total:      totalCount,
		Page:       page,
		Size:       pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}
