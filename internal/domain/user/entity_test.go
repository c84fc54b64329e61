package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("  João da Silva  ", "  Joao@Loja.com.BR ", "senha123", RoleOperadorCaixa)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "João da Silva", u.Name)
	assert.Equal(t, "joao@loja.com.br", u.Email)
	assert.Equal(t, RoleOperadorCaixa, u.Role)
	assert.Equal(t, StatusActive, u.Status)
	assert.True(t, u.IsActive())

	// A senha é armazenada em hash, nunca em claro
	assert.NotEqual(t, "senha123", u.Password)
	assert.True(t, u.CheckPassword("senha123"))
	assert.False(t, u.CheckPassword("senha errada"))
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("", "a@b.com", "senha123", RoleAdmin)
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = NewUser("Nome", "", "senha123", RoleAdmin)
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = NewUser("Nome", "a@b.com", "12345", RoleAdmin)
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = NewUser("Nome", "a@b.com", "senha123", Role("diretor"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUpdate(t *testing.T) {
	u, err := NewUser("Nome", "a@b.com", "senha123", RoleVendedor)
	require.NoError(t, err)

	require.NoError(t, u.Update("Novo Nome", "12345678901", RoleGerente))
	assert.Equal(t, "Novo Nome", u.Name)
	assert.Equal(t, "12345678901", u.CPF)
	assert.Equal(t, RoleGerente, u.Role)

	assert.ErrorIs(t, u.Update("", "", RoleGerente), ErrNameRequired)
	assert.ErrorIs(t, u.Update("Nome", "", Role("diretor")), ErrInvalidRole)
}

func TestSetPassword(t *testing.T) {
	u, err := NewUser("Nome", "a@b.com", "senha123", RoleAdmin)
	require.NoError(t, err)

	assert.ErrorIs(t, u.SetPassword("curta"), ErrPasswordTooShort)

	require.NoError(t, u.SetPassword("nova-senha"))
	assert.True(t, u.CheckPassword("nova-senha"))
	assert.False(t, u.CheckPassword("senha123"))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleGerente))
	assert.True(t, ValidRole(RoleOperadorCaixa))
	assert.True(t, ValidRole(RoleVendedor))
	assert.False(t, ValidRole(Role("diretor")))
}
