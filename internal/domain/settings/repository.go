package settings

import "context"

// Repository define a interface para as configurações da empresa
type Repository interface {
	// Get retorna as configurações atuais, criando a linha padrão se ainda
	// não existir
	Get(ctx context.Context) (*CompanySettings, error)

	// Save persiste as configurações
	Save(ctx context.Context, s *CompanySettings) error

	// NextNFCeNumber aloca atomicamente o próximo número de NFC-e
	NextNFCeNumber(ctx context.Context) (int64, int, error)
}
