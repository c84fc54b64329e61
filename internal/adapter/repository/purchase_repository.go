package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/viamercado/pdv-varejo/internal/domain/purchase"
	"github.com/viamercado/pdv-varejo/internal/infrastructure/database"
)

// Erros específicos do repositório
var (
	ErrPurchaseNotFound = errors.New("compra não encontrada")
)

// PurchaseRepository implementa a interface purchase.Repository
type PurchaseRepository struct {
	db *database.PostgresDB
}

// NewPurchaseRepository cria uma nova instância de PurchaseRepository
func NewPurchaseRepository(db *database.PostgresDB) purchase.Repository {
	return &PurchaseRepository{
		db: db,
	}
}

// Register implementa purchase.Repository.Register. É o espelho da
// finalização de venda: compra, itens, incremento de estoque, movimentos
// de entrada e saída no caixa são confirmados ou desfeitos em conjunto.
func (r *PurchaseRepository) Register(ctx context.Context, p *purchase.Purchase) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO purchases (id, supplier_id, invoice_ref, total, status, notes, user_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			p.ID, p.SupplierID, p.InvoiceRef, p.Total, p.Status, p.Notes,
			p.UserID, p.CreatedAt)
		if err != nil {
			return fmt.Errorf("erro ao gravar compra: %w", err)
		}

		for _, item := range p.Items {
			_, err := tx.Exec(ctx,
				`INSERT INTO purchase_items (id, purchase_id, product_id, product_name, qty, unit_cost, total)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				item.ID, item.PurchaseID, item.ProductID, item.ProductName,
				item.Quantity, item.UnitCost, item.Total)
			if err != nil {
				return fmt.Errorf("erro ao gravar item da compra: %w", err)
			}

			tag, err := tx.Exec(ctx,
				`UPDATE products
				SET stock_qty = stock_qty + $2, cost_price = $3, updated_at = now()
				WHERE id = $1`,
				item.ProductID, item.Quantity, item.UnitCost)
			if err != nil {
				return fmt.Errorf("erro ao repor estoque: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return ErrProductNotFound
			}

			_, err = tx.Exec(ctx,
				`INSERT INTO stock_movements (id, product_id, type, qty, reason, reference_id, user_id, created_at)
				VALUES (gen_random_uuid(), $1, 'entrada', $2, 'Compra', $3, $4, $5)`,
				item.ProductID, item.Quantity, p.ID, p.UserID, p.CreatedAt)
			if err != nil {
				return fmt.Errorf("erro ao registrar movimento de estoque: %w", err)
			}
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO financial_movements (id, type, amount, description, payment_method, reference_id, user_id, created_at)
			VALUES (gen_random_uuid(), 'saida', $1, $2, '', $3, $4, $5)`,
			p.Total, "Compra de mercadoria", p.ID, p.UserID, p.CreatedAt)
		if err != nil {
			return fmt.Errorf("erro ao lançar saída no caixa: %w", err)
		}

		return nil
	})
}

// FindByID implementa purchase.Repository.FindByID
func (r *PurchaseRepository) FindByID(ctx context.Context, id string) (*purchase.Purchase, error) {
	var p purchase.Purchase
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, supplier_id, invoice_ref, total, status, notes, user_id, created_at
		FROM purchases WHERE id = $1`,
		id).Scan(&p.ID, &p.SupplierID, &p.InvoiceRef, &p.Total, &p.Status,
		&p.Notes, &p.UserID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("erro ao buscar compra: %w", err)
	}

	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, purchase_id, product_id, product_name, qty, unit_cost, total
		FROM purchase_items WHERE purchase_id = $1`,
		id)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da compra: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item purchase.Item
		err := rows.Scan(&item.ID, &item.PurchaseID, &item.ProductID,
			&item.ProductName, &item.Quantity, &item.UnitCost, &item.Total)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler item da compra: %w", err)
		}
		p.Items = append(p.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &p, nil
}

// List implementa purchase.Repository.List
func (r *PurchaseRepository) List(ctx context.Context, limit, offset int) ([]*purchase.Purchase, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, supplier_id, invoice_ref, total, status, notes, user_id, created_at
		FROM purchases
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar compras: %w", err)
	}
	defer rows.Close()

	var purchases []*purchase.Purchase
	for rows.Next() {
		var p purchase.Purchase
		err := rows.Scan(&p.ID, &p.SupplierID, &p.InvoiceRef, &p.Total,
			&p.Status, &p.Notes, &p.UserID, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler compra: %w", err)
		}
		purchases = append(purchases, &p)
	}
	return purchases, rows.Err()
}
