package dto

import (
	"time"

	"github.com/viamercado/pdv-varejo/internal/domain/supplier"
)

// SupplierRequest representa a requisição de fornecedor
type SupplierRequest struct {
	Name      string `json:"name" binding:"required"`
	TradeName string `json:"trade_name"`
	CNPJ      string `json:"cnpj"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
}

// SupplierResponse representa a resposta de fornecedor
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TradeName string    `json:"trade_name,omitempty"`
	CNPJ      string    `json:"cnpj,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListResponse representa a resposta de lista de fornecedores
type SupplierListResponse struct {
	Items      []SupplierResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToSupplierResponse converte um fornecedor de domínio para o formato de resposta
func ToSupplierResponse(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		TradeName: s.TradeName,
		CNPJ:      s.CNPJ,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		Notes:     s.Notes,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSupplierListResponse converte uma lista de fornecedores para o formato de resposta
func ToSupplierListResponse(suppliers []*supplier.Supplier, totalCount, page, pageSize int) SupplierListResponse {
	items := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		items[i] = ToSupplierResponse(s)
	}

	return SupplierListResponse{
		Items:      items,
		Total:      totalCount,
		Page:       page,
		Size:       pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}
