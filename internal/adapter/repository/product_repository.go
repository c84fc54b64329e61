package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/domain/product"
)

// Erros específicos do repositório
var (
	ErrProductNotFound      = errors.New("produto não encontrado")
	ErrProductDuplicateKey  = errors.New("produto com mesmo código de barras ou SKU já existe")
	ErrStockWouldGoNegative = errors.New("ajuste deixaria o estoque negativo")
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

const productColumns = `
	id, name, description, barcode, sku, category, unit, price, cost_price,
	stock_qty, min_stock, ncm, cfop, cst, active, created_by, created_at, updated_at`

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, name, description, barcode, sku, category, unit, price,
			cost_price, stock_qty, min_stock, ncm, cfop, cst, active,
			created_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18
		)`,
		p.ID, p.Name, p.Description, p.Barcode, p.SKU, p.Category, p.Unit,
		p.Price, p.CostPrice, p.StockQty, p.MinStock, p.NCM, p.CFOP, p.CST,
		p.Active, p.CreatedBy, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

// FindByBarcode implementa product.Repository.FindByBarcode
func (r *ProductRepository) FindByBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE barcode = $1 AND active`, barcode)
	return scanProduct(row)
}

// Search implementa product.Repository.Search
func (r *ProductRepository) Search(ctx context.Context, query string) ([]*product.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+`
		FROM products
		WHERE active AND (name ILIKE '%' || $1 || '%' OR barcode = $1 OR sku = $1)
		ORDER BY name ASC
		LIMIT $2`,
		query, product.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+`
		FROM products
		WHERE ($1 = false OR active)
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		onlyActive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// ListBelowMinStock implementa product.Repository.ListBelowMinStock
func (r *ProductRepository) ListBelowMinStock(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+`
		FROM products
		WHERE active AND min_stock > 0 AND stock_qty < min_stock
		ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos abaixo do estoque mínimo: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $2, description = $3, barcode = $4, sku = $5, category = $6,
			unit = $7, price = $8, cost_price = $9, min_stock = $10,
			ncm = $11, cfop = $12, cst = $13, active = $14, updated_at = $15
		WHERE id = $1`,
		p.ID, p.Name, p.Description, p.Barcode, p.SKU, p.Category, p.Unit,
		p.Price, p.CostPrice, p.MinStock, p.NCM, p.CFOP, p.CST, p.Active,
		p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// UpdateActive implementa product.Repository.UpdateActive
func (r *ProductRepository) UpdateActive(ctx context.Context, id string, active bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET active = $2, updated_at = now() WHERE id = $1`,
		id, active)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// AdjustStock implementa product.Repository.AdjustStock. O ajuste é um
// único UPDATE condicional, nunca um read-modify-write no cliente, para
// que ajustes concorrentes serializem na linha do produto.
func (r *ProductRepository) AdjustStock(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	var newQty decimal.Decimal
	err := r.db.QueryRow(ctx,
		`UPDATE products
		SET stock_qty = stock_qty + $2, updated_at = now()
		WHERE id = $1 AND stock_qty + $2 >= 0
		RETURNING stock_qty`,
		id, delta).Scan(&newQty)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Ou o produto não existe, ou o ajuste deixaria o estoque negativo
			exists, exErr := r.exists(ctx, id)
			if exErr != nil {
				return decimal.Zero, exErr
			}
			if !exists {
				return decimal.Zero, ErrProductNotFound
			}
			return decimal.Zero, ErrStockWouldGoNegative
		}
		return decimal.Zero, fmt.Errorf("erro ao ajustar estoque: %w", err)
	}

	return newQty, nil
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context, onlyActive bool) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE ($1 = false OR active)`, onlyActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	return count, nil
}

func (r *ProductRepository) exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do produto: %w", err)
	}
	return exists, nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Barcode, &p.SKU, &p.Category,
		&p.Unit, &p.Price, &p.CostPrice, &p.StockQty, &p.MinStock,
		&p.NCM, &p.CFOP, &p.CST, &p.Active, &p.CreatedBy, &p.CreatedAt,
		&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return &p, nil
}

func scanProductRows(rows pgx.Rows) ([]*product.Product, error) {
	var products []*product.Product
	for rows.Next() {
		var p product.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Barcode, &p.SKU, &p.Category,
			&p.Unit, &p.Price, &p.CostPrice, &p.StockQty, &p.MinStock,
			&p.NCM, &p.CFOP, &p.CST, &p.Active, &p.CreatedBy, &p.CreatedAt,
			&p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer produtos: %w", err)
	}
	return products, nil
}
