package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/viamercado/pdv-varejo/internal/domain/finance"
	"github.com/viamercado/pdv-varejo/internal/infrastructure/database"
)

// Erros específicos do repositório
var (
	ErrReceivableNotFound = errors.New("conta a receber não encontrada")
)

// FinanceRepository implementa a interface finance.Repository
type FinanceRepository struct {
	db *database.PostgresDB
}

// NewFinanceRepository cria uma nova instância de FinanceRepository
func NewFinanceRepository(db *database.PostgresDB) finance.Repository {
	return &FinanceRepository{
		db: db,
	}
}

// CreateMovement implementa finance.Repository.CreateMovement
func (r *FinanceRepository) CreateMovement(ctx context.Context, m *finance.Movement) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO financial_movements (id, type, amount, description, payment_method, reference_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.Type, m.Amount, m.Description, m.PaymentMethod,
		m.ReferenceID, m.UserID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao gravar lançamento financeiro: %w", err)
	}
	return nil
}

// ListMovements implementa finance.Repository.ListMovements
func (r *FinanceRepository) ListMovements(ctx context.Context, limit, offset int) ([]*finance.Movement, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, type, amount, description, payment_method, reference_id, user_id, created_at
		FROM financial_movements
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lançamentos: %w", err)
	}
	defer rows.Close()

	var movements []*finance.Movement
	for rows.Next() {
		var m finance.Movement
		err := rows.Scan(&m.ID, &m.Type, &m.Amount, &m.Description,
			&m.PaymentMethod, &m.ReferenceID, &m.UserID, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler lançamento: %w", err)
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}

// SummaryByPeriod implementa finance.Repository.SummaryByPeriod
func (r *FinanceRepository) SummaryByPeriod(ctx context.Context, from, to time.Time) (*finance.Summary, error) {
	var summary finance.Summary
	err := r.db.Pool().QueryRow(ctx,
		`SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'entrada'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'saida'), 0)
		FROM financial_movements
		WHERE created_at >= $1 AND created_at < $2`,
		from, to).Scan(&summary.Inflows, &summary.Outflows)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar lançamentos do período: %w", err)
	}

	summary.Balance = summary.Inflows.Sub(summary.Outflows)
	return &summary, nil
}

// CreateReceivable implementa finance.Repository.CreateReceivable
func (r *FinanceRepository) CreateReceivable(ctx context.Context, rec *finance.Receivable) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO receivables (id, customer_id, description, amount, due_date, status, settled_at, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.CustomerID, rec.Description, rec.Amount, rec.DueDate,
		rec.Status, rec.SettledAt, rec.UserID, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao gravar conta a receber: %w", err)
	}
	return nil
}

// FindReceivableByID implementa finance.Repository.FindReceivableByID
func (r *FinanceRepository) FindReceivableByID(ctx context.Context, id string) (*finance.Receivable, error) {
	var rec finance.Receivable
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, customer_id, description, amount, due_date, status, settled_at, user_id, created_at
		FROM receivables WHERE id = $1`,
		id).Scan(&rec.ID, &rec.CustomerID, &rec.Description, &rec.Amount,
		&rec.DueDate, &rec.Status, &rec.SettledAt, &rec.UserID, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReceivableNotFound
		}
		return nil, fmt.Errorf("erro ao buscar conta a receber: %w", err)
	}
	return &rec, nil
}

// ListReceivables implementa finance.Repository.ListReceivables
func (r *FinanceRepository) ListReceivables(ctx context.Context, onlyOpen bool, limit, offset int) ([]*finance.Receivable, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, customer_id, description, amount, due_date, status, settled_at, user_id, created_at
		FROM receivables
		WHERE ($1 = false OR status = 'aberta')
		ORDER BY due_date ASC
		LIMIT $2 OFFSET $3`,
		onlyOpen, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas a receber: %w", err)
	}
	defer rows.Close()

	var receivables []*finance.Receivable
	for rows.Next() {
		var rec finance.Receivable
		err := rows.Scan(&rec.ID, &rec.CustomerID, &rec.Description,
			&rec.Amount, &rec.DueDate, &rec.Status, &rec.SettledAt,
			&rec.UserID, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler conta a receber: %w", err)
		}
		receivables = append(receivables, &rec)
	}
	return receivables, rows.Err()
}

// SettleReceivable implementa finance.Repository.SettleReceivable. A
// quitação e o lançamento de entrada são gravados na mesma transação.
func (r *FinanceRepository) SettleReceivable(ctx context.Context, rec *finance.Receivable, m *finance.Movement) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE receivables SET status = $2, settled_at = $3
			WHERE id = $1 AND status = 'aberta'`,
			rec.ID, rec.Status, rec.SettledAt)
		if err != nil {
			return fmt.Errorf("erro ao quitar conta a receber: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return finance.ErrAlreadySettled
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO financial_movements (id, type, amount, description, payment_method, reference_id, user_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			m.ID, m.Type, m.Amount, m.Description, m.PaymentMethod,
			m.ReferenceID, m.UserID, m.CreatedAt)
		if err != nil {
			return fmt.Errorf("erro ao lançar recebimento no caixa: %w", err)
		}

		return nil
	})
}

// CountOpenReceivables implementa finance.Repository.CountOpenReceivables
func (r *FinanceRepository) CountOpenReceivables(ctx context.Context) (int, error) {
	var count int
	err := r.db.Pool().QueryRow(ctx,
		`SELECT COUNT(*) FROM receivables WHERE status = 'aberta'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar contas a receber: %w", err)
	}
	return count, nil
}
