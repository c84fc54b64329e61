package dto

import (
	"time"

	"github.com/viamercado/pdv-varejo/internal/domain/user"
)

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta de login com o token JWT
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// ToLoginResponse monta a resposta de login
func ToLoginResponse(token string, expiresAt time.Time, u *user.User) LoginResponse {
	return LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      ToUserResponse(u),
	}
}
