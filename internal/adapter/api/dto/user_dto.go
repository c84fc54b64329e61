package dto

import (
	"time"

	"github.com/viamercado/pdv-varejo/internal/domain/user"
)

// UserRequest representa a requisição de criação de usuário
type UserRequest struct {
	Name     string    `json:"name" binding:"required"`
	Email    string    `json:"email" binding:"required,email"`
	CPF      string    `json:"cpf"`
	Password string    `json:"password" binding:"required,min=6"`
	Role     user.Role `json:"role" binding:"required"`
}

// UserUpdateRequest representa a requisição de atualização de usuário
type UserUpdateRequest struct {
	Name string    `json:"name" binding:"required"`
	CPF  string    `json:"cpf"`
	Role user.Role `json:"role" binding:"required"`
}

// ChangePasswordRequest representa a requisição de troca de senha
type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// UserResponse representa a resposta de usuário
type UserResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	CPF         string      `json:"cpf,omitempty"`
	Role        user.Role   `json:"role"`
	Status      user.Status `json:"status"`
	LastLoginAt time.Time   `json:"last_login_at"`
	CreatedAt   time.Time   `json:"created_at"`
}

// UserListResponse representa a resposta de lista de usuários
type UserListResponse struct {
	Items      []UserResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// ToUserResponse converte um usuário de domínio para o formato de resposta
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		CPF:         u.CPF,
		Role:        u.Role,
		Status:      u.Status,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// ToUserListResponse converte uma lista de usuários para o formato de resposta
func ToUserListResponse(users []*user.User, totalCount, page, pageSize int) UserListResponse {
	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = ToUserResponse(u)
	}

	return UserListResponse{
		Items:      items,
		Total:      totalCount,
		Page:       page,
		Size:       pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}
