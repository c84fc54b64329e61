package product

import (
	"context"

	"github.com/shopspring/decimal"
)

// SearchLimit é o número máximo de resultados da busca de catálogo
const SearchLimit = 10

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByBarcode busca um produto ativo pelo código de barras exato
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// Search busca produtos ativos por nome parcial (case-insensitive) ou
	// código de barras/SKU exato, limitado a SearchLimit resultados.
	// A quantidade retornada é apenas informativa: a checagem autoritativa
	// de estoque acontece na finalização da venda.
	Search(ctx context.Context, query string) ([]*Product, error)

	// List lista os produtos com paginação
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*Product, error)

	// ListBelowMinStock lista os produtos com estoque abaixo do mínimo
	ListBelowMinStock(ctx context.Context) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// UpdateActive ativa ou desativa um produto
	UpdateActive(ctx context.Context, id string, active bool) error

	// AdjustStock aplica um delta (positivo ou negativo) ao estoque de forma
	// atômica e condicional: a operação falha se o resultado ficar negativo.
	// É o único caminho de mutação de estoque fora da finalização de venda.
	AdjustStock(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error)

	// Count conta os produtos cadastrados
	Count(ctx context.Context, onlyActive bool) (int, error)
}
