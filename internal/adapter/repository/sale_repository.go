package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/domain/sale"
	"github.com/viamercado/pdv-varejo/internal/infrastructure/database"
)

// Erros específicos do repositório
var (
	ErrSaleNotFound = errors.New("venda não encontrada")
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *database.PostgresDB
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *database.PostgresDB) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

const saleColumns = `
	id, sale_number, customer_name, customer_cpf, subtotal, discount, total,
	payment_method, status, notes, idempotency_key, user_id, created_at`

// Finalize implementa sale.Finalizer. Toda a finalização acontece em uma
// única transação: número sequencial, cabeçalho, itens, decremento
// condicional de estoque, movimentos de saída e entrada no caixa. Se o
// decremento de qualquer item deixaria o estoque negativo, a transação
// inteira é desfeita e o erro identifica o produto em conflito.
func (r *SaleRepository) Finalize(ctx context.Context, s *sale.Sale) (*sale.Sale, error) {
	// Reenvio da mesma requisição devolve a venda já gravada
	if existing, err := r.FindByIdempotencyKey(ctx, s.IdempotencyKey); err == nil {
		return existing, nil
	} else if !errors.Is(err, ErrSaleNotFound) {
		return nil, err
	}

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx,
			`SELECT nextval('sale_number_seq')`).Scan(&s.Number); err != nil {
			return fmt.Errorf("erro ao alocar número da venda: %w", err)
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO sales (
				id, sale_number, customer_name, customer_cpf, subtotal,
				discount, total, payment_method, status, notes,
				idempotency_key, user_id, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			s.ID, s.Number, s.CustomerName, s.CustomerCPF, s.Subtotal,
			s.Discount, s.Total, s.PaymentMethod, s.Status, s.Notes,
			s.IdempotencyKey, s.UserID, s.CreatedAt)
		if err != nil {
			return fmt.Errorf("erro ao gravar venda: %w", err)
		}

		for _, item := range s.Items {
			_, err := tx.Exec(ctx,
				`INSERT INTO sale_items (
					id, sale_id, product_id, product_name, qty, unit_price,
					total, created_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				item.ID, item.SaleID, item.ProductID, item.ProductName,
				item.Quantity, item.UnitPrice, item.Total, item.CreatedAt)
			if err != nil {
				return fmt.Errorf("erro ao gravar item da venda: %w", err)
			}

			// Decremento condicional: serializa com vendas concorrentes na
			// linha do produto e falha limpo em vez de vender sem estoque
			qty := decimal.NewFromInt(int64(item.Quantity))
			tag, err := tx.Exec(ctx,
				`UPDATE products
				SET stock_qty = stock_qty - $2, updated_at = now()
				WHERE id = $1 AND stock_qty >= $2`,
				item.ProductID, qty)
			if err != nil {
				return fmt.Errorf("erro ao baixar estoque: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return &sale.StockConflictError{
					ProductID:   item.ProductID,
					ProductName: item.ProductName,
				}
			}

			_, err = tx.Exec(ctx,
				`INSERT INTO stock_movements (id, product_id, type, qty, reason, reference_id, user_id, created_at)
				VALUES (gen_random_uuid(), $1, 'saida', $2, 'Venda', $3, $4, $5)`,
				item.ProductID, qty, s.ID, s.UserID, s.CreatedAt)
			if err != nil {
				return fmt.Errorf("erro ao registrar movimento de estoque: %w", err)
			}
		}

		// A entrada no caixa sai na mesma transação para que o livro caixa e
		// o histórico de vendas nunca divirjam
		_, err = tx.Exec(ctx,
			`INSERT INTO financial_movements (id, type, amount, description, payment_method, reference_id, user_id, created_at)
			VALUES (gen_random_uuid(), 'entrada', $1, $2, $3, $4, $5, $6)`,
			s.Total, fmt.Sprintf("Venda nº %d", s.Number), s.PaymentMethod,
			s.ID, s.UserID, s.CreatedAt)
		if err != nil {
			return fmt.Errorf("erro ao lançar entrada no caixa: %w", err)
		}

		return nil
	})

	if err != nil {
		// Corrida entre dois reenvios simultâneos da mesma requisição: o
		// segundo perde no índice único e devolve a venda do primeiro
		if strings.Contains(err.Error(), "duplicate key") &&
			strings.Contains(err.Error(), "idempotency") {
			return r.FindByIdempotencyKey(ctx, s.IdempotencyKey)
		}
		return nil, err
	}

	return s, nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	row := r.db.Pool().QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)

	s, err := scanSale(row)
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// FindByIdempotencyKey implementa sale.Repository.FindByIdempotencyKey
func (r *SaleRepository) FindByIdempotencyKey(ctx context.Context, key string) (*sale.Sale, error) {
	row := r.db.Pool().QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE idempotency_key = $1`, key)

	s, err := scanSale(row)
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT `+saleColumns+`
		FROM sales
		ORDER BY sale_number DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return scanSaleRows(rows)
}

// ListByPeriod implementa sale.Repository.ListByPeriod
func (r *SaleRepository) ListByPeriod(ctx context.Context, from, to time.Time) ([]*sale.Sale, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT `+saleColumns+`
		FROM sales
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY sale_number DESC`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas do período: %w", err)
	}
	defer rows.Close()

	return scanSaleRows(rows)
}

// SummaryByDay implementa sale.Repository.SummaryByDay
func (r *SaleRepository) SummaryByDay(ctx context.Context, day time.Time) (*sale.DailySummary, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	summary := &sale.DailySummary{Date: start, Total: decimal.Zero}
	err := r.db.Pool().QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM sales
		WHERE created_at >= $1 AND created_at < $2`,
		start, end).Scan(&summary.SalesCount, &summary.Total)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar vendas do dia: %w", err)
	}

	return summary, nil
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}
	return count, nil
}

func (r *SaleRepository) loadItems(ctx context.Context, s *sale.Sale) error {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, sale_id, product_id, product_name, qty, unit_price, total, created_at
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY created_at ASC, id ASC`,
		s.ID)
	if err != nil {
		return fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item sale.Item
		err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID,
			&item.ProductName, &item.Quantity, &item.UnitPrice, &item.Total,
			&item.CreatedAt)
		if err != nil {
			return fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		s.Items = append(s.Items, item)
	}
	return rows.Err()
}

func scanSale(row pgx.Row) (*sale.Sale, error) {
	var s sale.Sale
	err := row.Scan(
		&s.ID, &s.Number, &s.CustomerName, &s.CustomerCPF, &s.Subtotal,
		&s.Discount, &s.Total, &s.PaymentMethod, &s.Status, &s.Notes,
		&s.IdempotencyKey, &s.UserID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}
	return &s, nil
}

func scanSaleRows(rows pgx.Rows) ([]*sale.Sale, error) {
	var sales []*sale.Sale
	for rows.Next() {
		var s sale.Sale
		err := rows.Scan(
			&s.ID, &s.Number, &s.CustomerName, &s.CustomerCPF, &s.Subtotal,
			&s.Discount, &s.Total, &s.PaymentMethod, &s.Status, &s.Notes,
			&s.IdempotencyKey, &s.UserID, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer vendas: %w", err)
	}
	return sales, nil
}
