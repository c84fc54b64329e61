package pkcs12

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"time"

	"software.sslmate.com/src/go-pkcs12"
)

// Erros de validação do certificado A1
var (
	ErrCertificadoInvalido = errors.New("certificado digital inválido ou senha incorreta")
	ErrCertificadoVencido  = errors.New("certificado digital vencido")
)

// CertificateInfo resume os dados do certificado A1 usados na emissão fiscal
type CertificateInfo struct {
	Subject   string
	Issuer    string
	NotBefore time.Time
	NotAfter  time.Time
}

// Validate decodifica o arquivo PFX e verifica se o certificado está vigente
func Validate(pfxData []byte, password string) (*CertificateInfo, error) {
	_, certificate, _, err := pkcs12.DecodeChain(pfxData, password)
	if err != nil || certificate == nil {
		return nil, ErrCertificadoInvalido
	}

	now := time.Now()
	if now.After(certificate.NotAfter) {
		return nil, ErrCertificadoVencido
	}

	return &CertificateInfo{
		Subject:   certificate.Subject.CommonName,
		Issuer:    certificate.Issuer.CommonName,
		NotBefore: certificate.NotBefore,
		NotAfter:  certificate.NotAfter,
	}, nil
}

// ToPEM converte um certificado PKCS12 para blocos PEM
func ToPEM(pfxData []byte, password string) ([]*pem.Block, error) {
	privateKey, certificate, caCerts, err := pkcs12.DecodeChain(pfxData, password)
	if err != nil {
		return nil, err
	}

	var blocks []*pem.Block

	if certificate != nil {
		blocks = append(blocks, &pem.Block{
			Type:  "CERTIFICATE",
			Bytes: certificate.Raw,
		})
	}

	for _, cert := range caCerts {
		blocks = append(blocks, &pem.Block{
			Type:  "CERTIFICATE",
			Bytes: cert.Raw,
		})
	}

	if privateKey != nil {
		pkData, err := x509.MarshalPKCS8PrivateKey(privateKey)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, &pem.Block{
			Type:  "PRIVATE KEY",
			Bytes: pkData,
		})
	}

	return blocks, nil
}
