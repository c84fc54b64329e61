package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viamercado/pdv-varejo/internal/domain/invoice"
)

// Erros específicos do repositório
var (
	ErrInvoiceNotFound = errors.New("documento fiscal não encontrado")
)

// InvoiceRepository implementa a interface invoice.Repository
type InvoiceRepository struct {
	db *pgxpool.Pool
}

// NewInvoiceRepository cria uma nova instância de InvoiceRepository
func NewInvoiceRepository(db *pgxpool.Pool) invoice.Repository {
	return &InvoiceRepository{
		db: db,
	}
}

const invoiceColumns = `
	id, sale_id, type, number, series, status, access_key, protocol,
	rejection_reason, xml, user_id, created_at, updated_at`

// Create implementa invoice.Repository.Create
func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO invoices (
			id, sale_id, type, number, series, status, access_key, protocol,
			rejection_reason, xml, user_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		inv.ID, inv.SaleID, inv.Type, inv.Number, inv.Series, inv.Status,
		inv.AccessKey, inv.Protocol, inv.RejectionReason, inv.XML,
		inv.UserID, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao gravar documento fiscal: %w", err)
	}
	return nil
}

// FindByID implementa invoice.Repository.FindByID
func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*invoice.Invoice, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	return scanInvoice(row)
}

// FindBySale implementa invoice.Repository.FindBySale
func (r *InvoiceRepository) FindBySale(ctx context.Context, saleID string) ([]*invoice.Invoice, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+invoiceColumns+`
		FROM invoices
		WHERE sale_id = $1
		ORDER BY created_at DESC`,
		saleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar documentos da venda: %w", err)
	}
	defer rows.Close()

	return scanInvoiceRows(rows)
}

// List implementa invoice.Repository.List
func (r *InvoiceRepository) List(ctx context.Context, limit, offset int) ([]*invoice.Invoice, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+invoiceColumns+`
		FROM invoices
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar documentos fiscais: %w", err)
	}
	defer rows.Close()

	return scanInvoiceRows(rows)
}

// Update implementa invoice.Repository.Update
func (r *InvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE invoices SET
			number = $2, series = $3, status = $4, access_key = $5,
			protocol = $6, rejection_reason = $7, xml = $8, updated_at = $9
		WHERE id = $1`,
		inv.ID, inv.Number, inv.Series, inv.Status, inv.AccessKey,
		inv.Protocol, inv.RejectionReason, inv.XML, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar documento fiscal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

// AddCorrectionLetter implementa invoice.Repository.AddCorrectionLetter
func (r *InvoiceRepository) AddCorrectionLetter(ctx context.Context, letter *invoice.CorrectionLetter) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO invoice_corrections (id, invoice_id, sequence, text, protocol, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		letter.ID, letter.InvoiceID, letter.Sequence, letter.Text,
		letter.Protocol, letter.UserID, letter.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao gravar carta de correção: %w", err)
	}
	return nil
}

// ListCorrectionLetters implementa invoice.Repository.ListCorrectionLetters
func (r *InvoiceRepository) ListCorrectionLetters(ctx context.Context, invoiceID string) ([]*invoice.CorrectionLetter, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, invoice_id, sequence, text, protocol, user_id, created_at
		FROM invoice_corrections
		WHERE invoice_id = $1
		ORDER BY sequence ASC`,
		invoiceID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar cartas de correção: %w", err)
	}
	defer rows.Close()

	var letters []*invoice.CorrectionLetter
	for rows.Next() {
		var l invoice.CorrectionLetter
		err := rows.Scan(&l.ID, &l.InvoiceID, &l.Sequence, &l.Text,
			&l.Protocol, &l.UserID, &l.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler carta de correção: %w", err)
		}
		letters = append(letters, &l)
	}
	return letters, rows.Err()
}

// CountCorrectionLetters implementa invoice.Repository.CountCorrectionLetters
func (r *InvoiceRepository) CountCorrectionLetters(ctx context.Context, invoiceID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM invoice_corrections WHERE invoice_id = $1`,
		invoiceID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar cartas de correção: %w", err)
	}
	return count, nil
}

func scanInvoice(row pgx.Row) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(
		&inv.ID, &inv.SaleID, &inv.Type, &inv.Number, &inv.Series,
		&inv.Status, &inv.AccessKey, &inv.Protocol, &inv.RejectionReason,
		&inv.XML, &inv.UserID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("erro ao buscar documento fiscal: %w", err)
	}
	return &inv, nil
}

func scanInvoiceRows(rows pgx.Rows) ([]*invoice.Invoice, error) {
	var invoices []*invoice.Invoice
	for rows.Next() {
		var inv invoice.Invoice
		err := rows.Scan(
			&inv.ID, &inv.SaleID, &inv.Type, &inv.Number, &inv.Series,
			&inv.Status, &inv.AccessKey, &inv.Protocol, &inv.RejectionReason,
			&inv.XML, &inv.UserID, &inv.CreatedAt, &inv.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler documento fiscal: %w", err)
		}
		invoices = append(invoices, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer documentos fiscais: %w", err)
	}
	return invoices, nil
}
