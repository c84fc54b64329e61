package supplier

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Erros de validação
var (
	ErrNameRequired = errors.New("razão social do fornecedor é obrigatória")
	ErrInvalidCNPJ  = errors.New("CNPJ inválido")
)

// Supplier representa um fornecedor
type Supplier struct {
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

// NewSupplier cria um novo fornecedor ativo
func NewSupplier(name, cnpj string) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	cnpj = normalizeCNPJ(cnpj)
	if cnpj != "" && len(cnpj) != 14 {
		return nil, ErrInvalidCNPJ
	}

	now := time.Now()
	return &Supplier{
		ID:        uuid.New().String(),
		Name:      name,
		CNPJ:      cnpj,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados cadastrais do fornecedor
func (s *Supplier) Update(name, tradeName, email, phone, address, notes string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}

	s.Name = name
	s.TradeName = tradeName
	s.Email = email
	s.Phone = phone
	s.Address = address
	s.Notes = notes
	s.UpdatedAt = time.Now()
	return nil
}

// Deactivate desativa o fornecedor mantendo o histórico
func (s *Supplier) Deactivate() {
	s.Active = false
	s.UpdatedAt = time.Now()
}

// normalizeCNPJ remove a pontuação usual do CNPJ
func normalizeCNPJ(cnpj string) string {
	replacer := strings.NewReplacer(".", "", "-", "", "/", "", " ", "")
	return replacer.Replace(cnpj)
}
