package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate(t *testing.T) {
	s := &CompanySettings{ID: "company"}

	err := s.Update("Via Mercado Ltda", "Via Mercado", "12.345.678/0001-90", "123456",
		"Rua do Comércio, 100", "São Paulo", "SP", "01000-000", Homologation, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, "Via Mercado Ltda", s.CompanyName)
	assert.Equal(t, "12345678000190", s.CNPJ)
	assert.Equal(t, Homologation, s.Environment)
	assert.Equal(t, 1, s.NFCeSeries)
	assert.Equal(t, int64(1), s.NFCeNextNumber)
}

func TestUpdateValidation(t *testing.T) {
	s := &CompanySettings{ID: "company"}

	err := s.Update("", "", "12345678000190", "", "", "", "", "", Homologation, 1, 1)
	assert.ErrorIs(t, err, ErrCompanyNameRequired)

	err = s.Update("Empresa", "", "123", "", "", "", "", "", Homologation, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidCNPJ)

	err = s.Update("Empresa", "", "12345678000190", "", "", "", "", "", Homologation, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidSeries)

	err = s.Update("Empresa", "", "12345678000190", "", "", "", "", "", Homologation, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidNextNumber)
}

func TestUpdateUnknownEnvironmentFallsBackToHomologation(t *testing.T) {
	s := &CompanySettings{ID: "company"}

	err := s.Update("Empresa", "", "12345678000190", "", "", "", "", "", Environment("teste"), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, Homologation, s.Environment)

	err = s.Update("Empresa", "", "12345678000190", "", "", "", "", "", Production, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, Production, s.Environment)
}

func TestSetCertificate(t *testing.T) {
	s := &CompanySettings{ID: "company"}
	notAfter := time.Now().AddDate(1, 0, 0)

	s.SetCertificate("CN=VIA MERCADO LTDA:12345678000190", notAfter)

	assert.Equal(t, "CN=VIA MERCADO LTDA:12345678000190", s.CertificateSubject)
	require.NotNil(t, s.CertificateNotAfter)
	assert.Equal(t, notAfter, *s.CertificateNotAfter)
}
