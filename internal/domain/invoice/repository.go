package invoice

import "context"

// Repository define a interface para operações de repositório de documentos fiscais
type Repository interface {
	// Create grava um documento fiscal
	Create(ctx context.Context, inv *Invoice) error

	// FindByID busca um documento fiscal pelo ID
	FindByID(ctx context.Context, id string) (*Invoice, error)

	// FindBySale busca os documentos fiscais de uma venda
	FindBySale(ctx context.Context, saleID string) ([]*Invoice, error)

	// List lista os documentos fiscais em ordem decrescente de criação
	List(ctx context.Context, limit, offset int) ([]*Invoice, error)

	// Update persiste as transições de status do documento
	Update(ctx context.Context, inv *Invoice) error

	// AddCorrectionLetter grava uma carta de correção do documento
	AddCorrectionLetter(ctx context.Context, letter *CorrectionLetter) error

	// ListCorrectionLetters lista as cartas de correção de um documento
	ListCorrectionLetters(ctx context.Context, invoiceID string) ([]*CorrectionLetter, error)

	// CountCorrectionLetters conta as cartas de correção de um documento,
	// usado para atribuir o número sequencial do evento
	CountCorrectionLetters(ctx context.Context, invoiceID string) (int, error)
}
