package supplier

import "context"

// Repository define a interface para operações de repositório de fornecedores
type Repository interface {
	// Create cria um novo fornecedor
	Create(ctx context.Context, s *Supplier) error

	// FindByID busca um fornecedor pelo ID
	FindByID(ctx context.Context, id string) (*Supplier, error)

	// List lista os fornecedores com paginação
	List(ctx context.Context, limit, offset int) ([]*Supplier, error)

	// Update atualiza os dados de um fornecedor existente
	Update(ctx context.Context, s *Supplier) error

	// Delete remove um fornecedor
	Delete(ctx context.Context, id string) error

	// ExistsByCNPJ verifica se já existe fornecedor com o CNPJ
	ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error)
}
