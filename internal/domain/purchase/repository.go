package purchase

import "context"

// Repository define a interface para operações de repositório de compras
type Repository interface {
	// Register grava a compra e seus itens, incrementa o estoque de cada
	// produto, registra os movimentos de entrada e o lançamento de saída no
	// caixa em uma única transação atômica.
	Register(ctx context.Context, p *Purchase) error

	// FindByID busca uma compra, com itens, pelo ID
	FindByID(ctx context.Context, id string) (*Purchase, error)

	// List lista as compras, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*Purchase, error)
}
