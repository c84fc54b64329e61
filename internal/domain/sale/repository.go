package sale

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySummary agrega as vendas de um dia para o painel
type DailySummary struct {
	Date       time.Time       `json:"date"`
	SalesCount int             `json:"sales_count"`
	Total      decimal.Decimal `json:"total"`
}

// Finalizer executa a transação de finalização de venda. Em uma única
// transação atômica: atribui o número sequencial, grava a venda e seus
// itens, decrementa o estoque de cada produto (falhando com
// StockConflictError se algum decremento deixaria o estoque negativo),
// registra os movimentos de estoque de saída e a entrada no caixa.
// Tudo é confirmado ou desfeito em conjunto.
//
// A finalização é idempotente pela chave de idempotência: reenviar a mesma
// requisição (por exemplo após um timeout de rede) devolve a venda já
// gravada em vez de cometer uma segunda vez.
type Finalizer interface {
	Finalize(ctx context.Context, s *Sale) (*Sale, error)
}

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	Finalizer

	// FindByID busca uma venda, com itens, pelo ID
	FindByID(ctx context.Context, id string) (*Sale, error)

	// FindByIdempotencyKey busca uma venda pela chave de idempotência
	FindByIdempotencyKey(ctx context.Context, key string) (*Sale, error)

	// List lista as vendas em ordem decrescente de número, com paginação
	List(ctx context.Context, limit, offset int) ([]*Sale, error)

	// ListByPeriod lista as vendas de um período
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*Sale, error)

	// SummaryByDay agrega contagem e total de vendas do dia
	SummaryByDay(ctx context.Context, day time.Time) (*DailySummary, error)

	// Count conta as vendas registradas
	Count(ctx context.Context) (int, error)
}
