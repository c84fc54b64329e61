package sefaz

import (
	"context"

	"github.com/viamercado/pdv-varejo/internal/domain/sale"
)

// AuthorizationResult é a resposta da SEFAZ a um pedido de autorização
type AuthorizationResult struct {
	Authorized      bool
	AccessKey       string
	Protocol        string
	XML             string
	RejectionReason string
	Message         string
}

// EventResult é a resposta da SEFAZ a um evento (cancelamento, CC-e)
type EventResult struct {
	Protocol string
	Message  string
}

// Client abstrai o webservice da SEFAZ. A implementação de homologação
// simula as respostas; uma implementação de produção submeteria o XML
// assinado ao endpoint de autorização e poderia retornar rejeição com
// motivo.
type Client interface {
	// Authorize submete o documento da venda para autorização
	Authorize(ctx context.Context, s *sale.Sale, number int64, series int) (*AuthorizationResult, error)

	// Cancel submete o evento de cancelamento de um documento autorizado
	Cancel(ctx context.Context, accessKey string) (*EventResult, error)

	// RegisterCorrection submete o evento de carta de correção
	RegisterCorrection(ctx context.Context, accessKey, text string, sequence int) (*EventResult, error)
}
