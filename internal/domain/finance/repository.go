package finance

import (
	"context"
	"time"
)

// Repository define a interface para o livro caixa e contas a receber
type Repository interface {
	// CreateMovement grava um lançamento no livro caixa
	CreateMovement(ctx context.Context, m *Movement) error

	// ListMovements lista os lançamentos, mais recentes primeiro
	ListMovements(ctx context.Context, limit, offset int) ([]*Movement, error)

	// SummaryByPeriod agrega entradas, saídas e saldo de um período
	SummaryByPeriod(ctx context.Context, from, to time.Time) (*Summary, error)

	// CreateReceivable grava uma conta a receber
	CreateReceivable(ctx context.Context, r *Receivable) error

	// FindReceivableByID busca uma conta a receber pelo ID
	FindReceivableByID(ctx context.Context, id string) (*Receivable, error)

	// ListReceivables lista contas a receber, opcionalmente só as abertas
	ListReceivables(ctx context.Context, onlyOpen bool, limit, offset int) ([]*Receivable, error)

	// SettleReceivable quita a conta e grava o lançamento de entrada na
	// mesma transação
	SettleReceivable(ctx context.Context, r *Receivable, m *Movement) error

	// CountOpenReceivables conta as contas a receber em aberto
	CountOpenReceivables(ctx context.Context) (int, error)
}
