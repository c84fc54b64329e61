package stock

import "context"

// Repository define a interface para o livro de movimentos de estoque
type Repository interface {
	// Create grava um movimento de estoque
	Create(ctx context.Context, m *Movement) error

	// FindByProduct lista os movimentos de um produto, mais recentes primeiro
	FindByProduct(ctx context.Context, productID string, limit, offset int) ([]*Movement, error)

	// List lista os movimentos de estoque, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*Movement, error)
}
