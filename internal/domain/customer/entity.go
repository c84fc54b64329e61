package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Erros de validação
var (
	ErrNameRequired    = errors.New("nome do cliente é obrigatório")
	ErrInvalidDocument = errors.New("CPF/CNPJ inválido")
	ErrNegativeCredit  = errors.New("limite de crédito não pode ser negativo")
)

// Customer representa um cliente cadastrado. Vendas de balcão não exigem
// cadastro: a venda guarda apenas nome/CPF como texto livre.
type Customer struct {
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

// NewCustomer cria um novo cliente ativo
func NewCustomer(name, document string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	document = normalizeDocument(document)
	if document != "" && len(document) != 11 && len(document) != 14 {
		return nil, ErrInvalidDocument
	}

	now := time.Now()
	return &Customer{
		ID:          uuid.New().String(),
		Name:        name,
		Document:    document,
		CreditLimit: decimal.Zero,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os dados cadastrais do cliente
func (c *Customer) Update(name, email, phone, address, notes string, creditLimit decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if creditLimit.IsNegative() {
		return ErrNegativeCredit
	}

	c.Name = name
	c.Email = email
	c.Phone = phone
	c.Address = address
	c.Notes = notes
	c.CreditLimit = creditLimit
	c.UpdatedAt = time.Now()
	return nil
}

// Deactivate desativa o cliente mantendo o histórico
func (c *Customer) Deactivate() {
	c.Active = false
	c.UpdatedAt = time.Now()
}

// normalizeDocument remove a pontuação usual de CPF/CNPJ
func normalizeDocument(document string) string {
	replacer := strings.NewReplacer(".", "", "-", "", "/", "", " ", "")
	return replacer.Replace(document)
}
