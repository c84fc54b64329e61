package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/domain/finance"
)

// FinancialMovementRequest representa a requisição de lançamento manual no caixa
type FinancialMovementRequest struct {
	Type          finance.MovementType `json:"type" binding:"required"`
	Amount        float64              `json:"amount" binding:"required,gt=0"`
	Description   string               `json:"description" binding:"required"`
	PaymentMethod string               `json:"payment_method"`
}

// ReceivableRequest representa a requisição de criação de conta a receber
type ReceivableRequest struct {
	CustomerID  string    `json:"customer_id" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	DueDate     time.Time `json:"due_date" binding:"required"`
}

// FinancialMovementResponse representa um lançamento do livro caixa
type FinancialMovementResponse struct {
	ID            string               `json:"id"`
	Type          finance.MovementType `json:"type"`
	Amount        decimal.Decimal      `json:"amount"`
	Description   string               `json:"description"`
	PaymentMethod string               `json:"payment_method,omitempty"`
	ReferenceID   string               `json:"reference_id,omitempty"`
	UserID        string               `json:"user_id"`
	CreatedAt     time.Time            `json:"created_at"`
}

// FinancialSummaryResponse representa o resumo financeiro de um período
type FinancialSummaryResponse struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	Inflows  decimal.Decimal `json:"inflows"`
	Outflows decimal.Decimal `json:"outflows"`
	Balance  decimal.Decimal `json:"balance"`
}

// ReceivableResponse representa uma conta a receber
type ReceivableResponse struct {
	ID          string                   `json:"id"`
	CustomerID  string                   `json:"customer_id"`
	Description string                   `json:"description"`
	Amount      decimal.Decimal          `json:"amount"`
	DueDate     time.Time                `json:"due_date"`
	Status      finance.ReceivableStatus `json:"status"`
	SettledAt   *time.Time               `json:"settled_at,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
}

// ToFinancialMovementResponse converte um lançamento para o formato de resposta
func ToFinancialMovementResponse(m *finance.Movement) FinancialMovementResponse {
	return FinancialMovementResponse{
		ID:            m.ID,
		Type:          m.Type,
		Amount:        m.Amount,
		Description:   m.Description,
		PaymentMethod: m.PaymentMethod,
		ReferenceID:   m.ReferenceID,
		UserID:        m.UserID,
		CreatedAt:     m.CreatedAt,
	}
}

// ToFinancialMovementResponses converte uma lista de lançamentos
func ToFinancialMovementResponses(movements []*finance.Movement) []FinancialMovementResponse {
	items := make([]FinancialMovementResponse, len(movements))
	for i, m := range movements {
		items[i] = ToFinancialMovementResponse(m)
	}
	return items
}

// ToFinancialSummaryResponse converte o resumo do período para o formato de resposta
func ToFinancialSummaryResponse(s *finance.Summary, from, to time.Time) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		From:     from.Format("2006-01-02"),
		To:       to.Format("2006-01-02"),
		Inflows:  s.Inflows,
		Outflows: s.Outflows,
		Balance:  s.Balance,
	}
}

// ToReceivableResponse converte uma conta a receber para o formato de resposta
func ToReceivableResponse(r *finance.Receivable) ReceivableResponse {
	return ReceivableResponse{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		Description: r.Description,
		Amount:      r.Amount,
		DueDate:     r.DueDate,
		Status:      r.Status,
		SettledAt:   r.SettledAt,
		CreatedAt:   r.CreatedAt,
	}
}

// ToReceivableResponses converte uma lista de contas a receber
func ToReceivableResponses(receivables []*finance.Receivable) []ReceivableResponse {
	items := make([]ReceivableResponse, len(receivables))
	for i, r := range receivables {
		items[i] = ToReceivableResponse(r)
	}
	return items
}
