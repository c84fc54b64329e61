package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role representa o papel/função do usuário
type Role string

// Status representa o status do usuário
type Status string

// Constantes para Role
const (
	RoleAdmin         Role = "admin"          // Administrador do sistema
	RoleGerente       Role = "gerente"        // Gerente da loja
	RoleOperadorCaixa Role = "operador_caixa" // Operador de caixa (PDV)
	RoleVendedor      Role = "vendedor"       // Vendedor
)

// Constantes para Status
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Erros de validação
var (
	ErrNameRequired     = errors.New("nome é obrigatório")
	ErrEmailRequired    = errors.New("email é obrigatório")
	ErrPasswordTooShort = errors.New("senha deve ter no mínimo 6 caracteres")
	ErrInvalidRole      = errors.New("papel de usuário inválido")
)

// User representa um usuário do sistema
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CPF         string    `json:"cpf,omitempty"`
	Password    string    `json:"-"`
	Role        Role      `json:"role"`
	Status      Status    `json:"status"`
	LastLoginAt time.Time `json:"last_login_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidRole verifica se o papel informado é um dos papéis conhecidos
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleGerente, RoleOperadorCaixa, RoleVendedor:
		return true
	}
	return false
}

// NewUser cria um novo usuário com senha já em hash
func NewUser(name, email, password string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if name == "" {
		return nil, ErrNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}
	if !ValidRole(role) {
		return nil, ErrInvalidRole
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      role,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// Update atualiza os dados cadastrais do usuário
func (u *User) Update(name, cpf string, role Role) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if !ValidRole(role) {
		return ErrInvalidRole
	}

	u.Name = name
	u.CPF = cpf
	u.Role = role
	u.UpdatedAt = time.Now()
	return nil
}

// SetPassword configura a senha do usuário com hash bcrypt
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	u.UpdatedAt = time.Now()
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// IsActive verifica se o usuário está ativo
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// RegisterLogin registra o momento do último login
func (u *User) RegisterLogin() {
	u.LastLoginAt = time.Now()
	u.UpdatedAt = time.Now()
}
