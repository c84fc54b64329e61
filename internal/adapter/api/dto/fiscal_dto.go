package dto

import (
	"time"

	"github.com/viamercado/pdv-varejo/internal/domain/invoice"
)

// EmitInvoiceRequest representa a requisição de emissão de documento fiscal
type EmitInvoiceRequest struct {
	SaleID string       `json:"sale_id" binding:"required"`
	Type   invoice.Type `json:"type"`
}

// CorrectionRequest representa a requisição de carta de correção
type CorrectionRequest struct {
	Text string `json:"text" binding:"required"`
}

// InvoiceResponse representa a resposta de documento fiscal
type InvoiceResponse struct {
	ID              string         `json:"id"`
	SaleID          string         `json:"sale_id"`
	Type            invoice.Type   `json:"type"`
	Number          int64          `json:"number,omitempty"`
	Series          int            `json:"series,omitempty"`
	Status          invoice.Status `json:"status"`
	AccessKey       string         `json:"access_key,omitempty"`
	Protocol        string         `json:"protocol,omitempty"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// InvoiceListResponse representa a resposta de lista de documentos fiscais
type InvoiceListResponse struct {
	Items      []InvoiceResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// CorrectionResponse representa a resposta de carta de correção
type CorrectionResponse struct {
	ID        string    `json:"id"`
	InvoiceID string    `json:"invoice_id"`
	Sequence  int       `json:"sequence"`
	Text      string    `json:"text"`
	Protocol  string    `json:"protocol"`
	CreatedAt time.Time `json:"created_at"`
}

// ToInvoiceResponse converte um documento fiscal para o formato de resposta.
// O XML autorizado não entra na resposta padrão; é servido pelo endpoint
// próprio de download.
func ToInvoiceResponse(inv *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:              inv.ID,
		SaleID:          inv.SaleID,
		Type:            inv.Type,
		Number:          inv.Number,
		Series:          inv.Series,
		Status:          inv.Status,
		AccessKey:       inv.AccessKey,
		Protocol:        inv.Protocol,
		RejectionReason: inv.RejectionReason,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

// ToInvoiceListResponse converte uma lista de documentos fiscais
func ToInvoiceListResponse(invoices []*invoice.Invoice, totalCount, page, pageSize int) InvoiceListResponse {
	items := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = ToInvoiceResponse(inv)
	}

	return InvoiceListResponse{
		Items:      items,
		Total:      totalCount,
		Page:       page,
		Size:       pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}

// ToCorrectionResponse converte uma carta de correção para o formato de resposta
func ToCorrectionResponse(letter *invoice.CorrectionLetter) CorrectionResponse {
	return CorrectionResponse{
		ID:        letter.ID,
		InvoiceID: letter.InvoiceID,
		Sequence:  letter.Sequence,
		Text:      letter.Text,
		Protocol:  letter.Protocol,
		CreatedAt: letter.CreatedAt,
	}
}

// ToCorrectionResponses converte uma lista de cartas de correção
func ToCorrectionResponses(letters []*invoice.CorrectionLetter) []CorrectionResponse {
	items := make([]CorrectionResponse, len(letters))
	for i, l := range letters {
		items[i] = ToCorrectionResponse(l)
	}
	return items
}
