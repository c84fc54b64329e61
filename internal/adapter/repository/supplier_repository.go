package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viamercado/pdv-varejo/internal/domain/supplier"
)

// Erros específicos do repositório
var (
	ErrSupplierNotFound     = errors.New("fornecedor não encontrado")
	ErrSupplierDuplicateKey = errors.New("fornecedor com mesmo CNPJ já existe")
)

// SupplierRepository implementa a interface supplier.Repository
type SupplierRepository struct {
	db *pgxpool.Pool
}

// NewSupplierRepository cria uma nova instância de SupplierRepository
func NewSupplierRepository(db *pgxpool.Pool) supplier.Repository {
	return &SupplierRepository{
		db: db,
	}
}

const supplierColumns = `
	id, name, trade_name, cnpj, email, phone, address, notes, active,
	created_at, updated_at`

// Create implementa supplier.Repository.Create
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	if s.CNPJ != "" {
		exists, err := r.ExistsByCNPJ(ctx, s.CNPJ)
		if err != nil {
			return err
		}
		if exists {
			return ErrSupplierDuplicateKey
		}
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO suppliers (
			id, name, trade_name, cnpj, email, phone, address, notes, active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, s.Name, s.TradeName, s.CNPJ, s.Email, s.Phone, s.Address,
		s.Notes, s.Active, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrSupplierDuplicateKey
		}
		return fmt.Errorf("erro ao criar fornecedor: %w", err)
	}

	return nil
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	var s supplier.Supplier
	err := r.db.QueryRow(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id).Scan(
		&s.ID, &s.Name, &s.TradeName, &s.CNPJ, &s.Email, &s.Phone,
		&s.Address, &s.Notes, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fornecedor: %w", err)
	}
	return &s, nil
}

// List implementa supplier.Repository.List
func (r *SupplierRepository) List(ctx context.Context, limit, offset int) ([]*supplier.Supplier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+supplierColumns+`
		FROM suppliers
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fornecedores: %w", err)
	}
	defer rows.Close()

	var suppliers []*supplier.Supplier
	for rows.Next() {
		var s supplier.Supplier
		err := rows.Scan(
			&s.ID, &s.Name, &s.TradeName, &s.CNPJ, &s.Email, &s.Phone,
			&s.Address, &s.Notes, &s.Active, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler fornecedor: %w", err)
		}
		suppliers = append(suppliers, &s)
	}
	return suppliers, rows.Err()
}

// Update implementa supplier.Repository.Update
func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE suppliers SET
			name = $2, trade_name = $3, email = $4, phone = $5, address = $6,
			notes = $7, active = $8, updated_at = $9
		WHERE id = $1`,
		s.ID, s.Name, s.TradeName, s.Email, s.Phone, s.Address, s.Notes,
		s.Active, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar fornecedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

// Delete implementa supplier.Repository.Delete
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover fornecedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

// ExistsByCNPJ implementa supplier.Repository.ExistsByCNPJ
func (r *SupplierRepository) ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM suppliers WHERE cnpj = $1)`, cnpj).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do fornecedor: %w", err)
	}
	return exists, nil
}
