package settings

import (
	"errors"
	"strings"
	"time"
)

// Environment define o ambiente da SEFAZ
type Environment string

// Ambientes de emissão. A emissão em produção exige certificado A1
// válido; em homologação a autorização é simulada.
const (
	Production   Environment = "producao"
	Homologation Environment = "homologacao"
)

// Erros de validação
var (
	ErrCompanyNameRequired = errors.New("razão social é obrigatória")
	ErrInvalidCNPJ         = errors.New("CNPJ inválido")
	ErrInvalidSeries       = errors.New("série da NFC-e deve ser maior que zero")
	ErrInvalidNextNumber   = errors.New("próximo número da NFC-e deve ser maior que zero")
)

// CompanySettings são as configurações da empresa, mantidas em linha única
type CompanySettings struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	TradeName   string `json:"trade_name,omitempty"`
	CNPJ        string `json:"cnpj"`
	IE          string `json:"ie,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	ZipCode     string `json:"zip_code,omitempty"`

	// Parâmetros de emissão fiscal
	Environment    Environment `json:"environment"`
	NFCeSeries     int         `json:"nfce_series"`
	NFCeNextNumber int64       `json:"nfce_next_number"`

	// Certificado digital A1 (arquivo PFX e validade extraída na importação)
	CertificateSubject  string     `json:"certificate_subject,omitempty"`
	CertificateNotAfter *time.Time `json:"certificate_not_after,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Update valida e aplica os dados cadastrais e fiscais da empresa
func (s *CompanySettings) Update(companyName, tradeName, cnpj, ie, address, city, state, zipCode string, env Environment, nfceSeries int, nfceNextNumber int64) error {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return ErrCompanyNameRequired
	}
	cnpj = strings.NewReplacer(".", "", "-", "", "/", "", " ", "").Replace(cnpj)
	if len(cnpj) != 14 {
		return ErrInvalidCNPJ
	}
	if nfceSeries <= 0 {
		return ErrInvalidSeries
	}
	if nfceNextNumber <= 0 {
		return ErrInvalidNextNumber
	}
	if env != Production {
		env = Homologation
	}

	s.CompanyName = companyName
	s.TradeName = tradeName
	s.CNPJ = cnpj
	s.IE = ie
	s.Address = address
	s.City = city
	s.State = state
	s.ZipCode = zipCode
	s.Environment = env
	s.NFCeSeries = nfceSeries
	s.NFCeNextNumber = nfceNextNumber
	s.UpdatedAt = time.Now()
	return nil
}

// SetCertificate registra os dados do certificado A1 importado
func (s *CompanySettings) SetCertificate(subject string, notAfter time.Time) {
	s.CertificateSubject = subject
	s.CertificateNotAfter = &notAfter
	s.UpdatedAt = time.Now()
}
