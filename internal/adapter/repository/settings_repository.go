package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viamercado/pdv-varejo/internal/domain/settings"
)

// settingsRowID é o ID fixo da linha única de configurações
const settingsRowID = "company"

// SettingsRepository implementa a interface settings.Repository
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository cria uma nova instância de SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) settings.Repository {
	return &SettingsRepository{
		db: db,
	}
}

// Get implementa settings.Repository.Get
func (r *SettingsRepository) Get(ctx context.Context) (*settings.CompanySettings, error) {
	var s settings.CompanySettings
	err := r.db.QueryRow(ctx,
		`SELECT id, company_name, trade_name, cnpj, ie, address, city, state,
			zip_code, environment, nfce_series, nfce_next_number,
			certificate_subject, certificate_not_after, updated_at
		FROM company_settings WHERE id = $1`,
		settingsRowID).Scan(
		&s.ID, &s.CompanyName, &s.TradeName, &s.CNPJ, &s.IE, &s.Address,
		&s.City, &s.State, &s.ZipCode, &s.Environment, &s.NFCeSeries,
		&s.NFCeNextNumber, &s.CertificateSubject, &s.CertificateNotAfter,
		&s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Linha padrão criada na primeira leitura
			return r.createDefault(ctx)
		}
		return nil, fmt.Errorf("erro ao buscar configurações: %w", err)
	}

	return &s, nil
}

// Save implementa settings.Repository.Save
func (r *SettingsRepository) Save(ctx context.Context, s *settings.CompanySettings) error {
	_, err := r.db.Exec(ctx,
		`UPDATE company_settings SET
			company_name = $2, trade_name = $3, cnpj = $4, ie = $5,
			address = $6, city = $7, state = $8, zip_code = $9,
			environment = $10, nfce_series = $11, nfce_next_number = $12,
			certificate_subject = $13, certificate_not_after = $14,
			updated_at = $15
		WHERE id = $1`,
		settingsRowID, s.CompanyName, s.TradeName, s.CNPJ, s.IE, s.Address,
		s.City, s.State, s.ZipCode, s.Environment, s.NFCeSeries,
		s.NFCeNextNumber, s.CertificateSubject, s.CertificateNotAfter,
		s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao salvar configurações: %w", err)
	}
	return nil
}

// NextNFCeNumber implementa settings.Repository.NextNFCeNumber. A alocação
// é um UPDATE atômico para que emissões concorrentes nunca repitam número.
func (r *SettingsRepository) NextNFCeNumber(ctx context.Context) (int64, int, error) {
	var number int64
	var series int
	err := r.db.QueryRow(ctx,
		`UPDATE company_settings
		SET nfce_next_number = nfce_next_number + 1, updated_at = now()
		WHERE id = $1
		RETURNING nfce_next_number - 1, nfce_series`,
		settingsRowID).Scan(&number, &series)
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao alocar número da NFC-e: %w", err)
	}
	return number, series, nil
}

func (r *SettingsRepository) createDefault(ctx context.Context) (*settings.CompanySettings, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO company_settings (id, company_name, cnpj, environment, nfce_series, nfce_next_number, updated_at)
		VALUES ($1, '', '', 'homologacao', 1, 1, now())
		ON CONFLICT (id) DO NOTHING`,
		settingsRowID)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar configurações padrão: %w", err)
	}
	return r.Get(ctx)
}
