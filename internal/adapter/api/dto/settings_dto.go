package dto

import (
	"time"

	"github.com/viamercado/pdv-varejo/internal/domain/settings"
)

// SettingsRequest representa a requisição de atualização das configurações
type SettingsRequest struct {
	CompanyName    string               `json:"company_name" binding:"required"`
	TradeName      string               `json:"trade_name"`
	CNPJ           string               `json:"cnpj" binding:"required"`
	IE             string               `json:"ie"`
	Address        string               `json:"address"`
	City           string               `json:"city"`
	State          string               `json:"state"`
	ZipCode        string               `json:"zip_code"`
	Environment    settings.Environment `json:"environment"`
	NFCeSeries     int                  `json:"nfce_series" binding:"required,gt=0"`
	NFCeNextNumber int64                `json:"nfce_next_number" binding:"required,gt=0"`
}

// CertificateUploadRequest representa a requisição de importação do
// certificado A1. O arquivo PFX vem em multipart; a senha no formulário.
type CertificateUploadRequest struct {
	Password string `form:"password" binding:"required"`
}

// SettingsResponse representa a resposta das configurações da empresa
type SettingsResponse struct {
	CompanyName         string               `json:"company_name"`
	TradeName           string               `json:"trade_name,omitempty"`
	CNPJ                string               `json:"cnpj"`
	IE                  string               `json:"ie,omitempty"`
	Address             string               `json:"address,omitempty"`
	City                string               `json:"city,omitempty"`
	State               string               `json:"state,omitempty"`
	ZipCode             string               `json:"zip_code,omitempty"`
	Environment         settings.Environment `json:"environment"`
	NFCeSeries          int                  `json:"nfce_series"`
	NFCeNextNumber      int64                `json:"nfce_next_number"`
	CertificateSubject  string               `json:"certificate_subject,omitempty"`
	CertificateNotAfter *time.Time           `json:"certificate_not_after,omitempty"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

// CertificateResponse representa os dados do certificado A1 importado
type CertificateResponse struct {
	Subject   string    `json:"subject"`
	Issuer    string    `json:"issuer"`
	NotBefore time.Time `json:"not_before"`
	NotAfter  time.Time `json:"not_after"`
}

// ToSettingsResponse converte as configurações para o formato de resposta
func ToSettingsResponse(s *settings.CompanySettings) SettingsResponse {
	return SettingsResponse{
		CompanyName:         s.CompanyName,
		TradeName:           s.TradeName,
		CNPJ:                s.CNPJ,
		IE:                  s.IE,
		Address:             s.Address,
		City:                s.City,
		State:               s.State,
		ZipCode:             s.ZipCode,
		Environment:         s.Environment,
		NFCeSeries:          s.NFCeSeries,
		NFCeNextNumber:      s.NFCeNextNumber,
		CertificateSubject:  s.CertificateSubject,
		CertificateNotAfter: s.CertificateNotAfter,
		UpdatedAt:           s.UpdatedAt,
	}
}
