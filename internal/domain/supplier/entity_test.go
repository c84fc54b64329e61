package supplier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	s, err := NewSupplier("Distribuidora Central Ltda", "12.345.678/0001-90")
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "Distribuidora Central Ltda", s.Name)
	assert.Equal(t, "12345678000190", s.CNPJ)
	assert.True(t, s.Active)
}

func TestNewSupplierWithoutCNPJ(t *testing.T) {
	s, err := NewSupplier("Produtor Rural", "")
	require.NoError(t, err)
	assert.Empty(t, s.CNPJ)
}

func TestNewSupplierValidation(t *testing.T) {
	_, err := NewSupplier("  ", "")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = NewSupplier("Distribuidora", "12345")
	assert.ErrorIs(t, err, ErrInvalidCNPJ)
}

func TestUpdate(t *testing.T) {
	s, err := NewSupplier("Distribuidora Central Ltda", "")
	require.NoError(t, err)

	err = s.Update("Distribuidora Central Ltda", "Central Alimentos", "contato@central.com.br",
		"1133330000", "Av. Industrial, 500", "entrega às terças")
	require.NoError(t, err)

	assert.Equal(t, "Central Alimentos", s.TradeName)
	assert.Equal(t, "contato@central.com.br", s.Email)

	assert.ErrorIs(t, s.Update("", "", "", "", "", ""), ErrNameRequired)
}

func TestDeactivate(t *testing.T) {
	s, err := NewSupplier("Distribuidora", "")
	require.NoError(t, err)

	s.Deactivate()
	assert.False(t, s.Active)
}
