package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viamercado/pdv-varejo/internal/domain/customer"
)

// Erros específicos do repositório
var (
	ErrCustomerNotFound     = errors.New("cliente não encontrado")
	ErrCustomerDuplicateKey = errors.New("cliente com mesmo documento já existe")
)

// CustomerRepository implementa a interface customer.Repository
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &CustomerRepository{
		db: db,
	}
}

const customerColumns = `
	id, name, document, email, phone, address, credit_limit, notes, active,
	created_at, updated_at`

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if c.Document != "" {
		exists, err := r.ExistsByDocument(ctx, c.Document)
		if err != nil {
			return err
		}
		if exists {
			return ErrCustomerDuplicateKey
		}
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (
			id, name, document, email, phone, address, credit_limit, notes,
			active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.Name, c.Document, c.Email, c.Phone, c.Address,
		c.CreditLimit, c.Notes, c.Active, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrCustomerDuplicateKey
		}
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	return scanCustomer(row)
}

// FindByDocument implementa customer.Repository.FindByDocument
func (r *CustomerRepository) FindByDocument(ctx context.Context, document string) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE document = $1`, document)
	return scanCustomer(row)
}

// FindByName implementa customer.Repository.FindByName
func (r *CustomerRepository) FindByName(ctx context.Context, name string, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+`
		FROM customers
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		name, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes por nome: %w", err)
	}
	defer rows.Close()

	return scanCustomerRows(rows)
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+`
		FROM customers
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	return scanCustomerRows(rows)
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE customers SET
			name = $2, email = $3, phone = $4, address = $5,
			credit_limit = $6, notes = $7, active = $8, updated_at = $9
		WHERE id = $1`,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.CreditLimit, c.Notes,
		c.Active, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// Delete implementa customer.Repository.Delete
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// ExistsByDocument implementa customer.Repository.ExistsByDocument
func (r *CustomerRepository) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE document = $1)`,
		document).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do cliente: %w", err)
	}
	return exists, nil
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.Address,
		&c.CreditLimit, &c.Notes, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	return &c, nil
}

func scanCustomerRows(rows pgx.Rows) ([]*customer.Customer, error) {
	var customers []*customer.Customer
	for rows.Next() {
		var c customer.Customer
		err := rows.Scan(
			&c.ID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.Address,
			&c.CreditLimit, &c.Notes, &c.Active, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer clientes: %w", err)
	}
	return customers, nil
}
