package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viamercado/pdv-varejo/internal/domain/stock"
)

// StockRepository implementa a interface stock.Repository
type StockRepository struct {
	db *pgxpool.Pool
}

// NewStockRepository cria uma nova instância de StockRepository
func NewStockRepository(db *pgxpool.Pool) stock.Repository {
	return &StockRepository{
		db: db,
	}
}

// Create implementa stock.Repository.Create
func (r *StockRepository) Create(ctx context.Context, m *stock.Movement) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO stock_movements (id, product_id, type, qty, reason, reference_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.ProductID, m.Type, m.Quantity, m.Reason, m.ReferenceID,
		m.UserID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao gravar movimento de estoque: %w", err)
	}
	return nil
}

// FindByProduct implementa stock.Repository.FindByProduct
func (r *StockRepository) FindByProduct(ctx context.Context, productID string, limit, offset int) ([]*stock.Movement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, type, qty, reason, reference_id, user_id, created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar movimentos do produto: %w", err)
	}
	defer rows.Close()

	return scanMovementRows(rows)
}

// List implementa stock.Repository.List
func (r *StockRepository) List(ctx context.Context, limit, offset int) ([]*stock.Movement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, type, qty, reason, reference_id, user_id, created_at
		FROM stock_movements
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar movimentos de estoque: %w", err)
	}
	defer rows.Close()

	return scanMovementRows(rows)
}

func scanMovementRows(rows pgx.Rows) ([]*stock.Movement, error) {
	var movements []*stock.Movement
	for rows.Next() {
		var m stock.Movement
		err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reason,
			&m.ReferenceID, &m.UserID, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler movimento de estoque: %w", err)
		}
		movements = append(movements, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer movimentos de estoque: %w", err)
	}
	return movements, nil
}
