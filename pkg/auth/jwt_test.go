package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viamercado/pdv-varejo/internal/domain/user"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")
	svc, err := NewJWTService()
	require.NoError(t, err)
	return svc
}

func TestNewJWTServiceMissingKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t)

	u, err := user.NewUser("Maria", "maria@loja.com.br", "senha-segura", user.RoleGerente)
	require.NoError(t, err)

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, "Maria", claims.Name)
	assert.Equal(t, string(user.RoleGerente), claims.Role)
}

func TestValidateGarbageToken(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateToken("nao-e-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenSignedWithOtherKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "chave-a")
	first, err := NewJWTService()
	require.NoError(t, err)

	u, err := user.NewUser("Maria", "maria@loja.com.br", "senha-segura", user.RoleAdmin)
	require.NoError(t, err)
	token, err := first.GenerateToken(u)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "chave-b")
	second, err := NewJWTService()
	require.NoError(t, err)

	_, err = second.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
