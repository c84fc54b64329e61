package invoice

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status representa o status do documento fiscal
type Status string

// Type representa o modelo do documento fiscal
type Type string

// Transições possíveis: pendente -> autorizada | rejeitada;
// autorizada -> cancelada (dentro do prazo legal). Cancelada e rejeitada
// são terminais. A carta de correção não altera o status.
const (
	StatusPendente   Status = "pendente"
	StatusAutorizada Status = "autorizada"
	StatusRejeitada  Status = "rejeitada"
	StatusCancelada  Status = "cancelada"
)

// Modelos de documento
const (
	TypeNFCe Type = "nfce"
	TypeNFe  Type = "nfe"
)

// CancelWindow é o prazo legal para cancelamento após a emissão
const CancelWindow = 24 * time.Hour

// MinCorrectionLength é o tamanho mínimo do texto da carta de correção
const MinCorrectionLength = 15

// AccessKeyLength é o tamanho da chave de acesso da NF-e
const AccessKeyLength = 44

// Erros de regra de negócio
var (
	ErrSaleRequired        = errors.New("venda é obrigatória para emitir o documento fiscal")
	ErrNotPending          = errors.New("documento fiscal não está pendente")
	ErrNotCancellable      = errors.New("documento fiscal não pode ser cancelado neste status")
	ErrCancelWindowExpired = errors.New("prazo legal para cancelamento expirado (24h)")
	ErrNotAuthorized       = errors.New("carta de correção só é permitida para documento autorizado")
	ErrCorrectionTooShort  = errors.New("texto da carta de correção deve ter no mínimo 15 caracteres")
	ErrInvalidAccessKey    = errors.New("chave de acesso deve ter 44 dígitos")
)

// Invoice representa um documento fiscal (NF-e/NFC-e) vinculado a uma venda
type Invoice struct {
	ID              string    `json:"id"`
	SaleID          string    `json:"sale_id"`
	Type            Type      `json:"type"`
	Number          int64     `json:"number,omitempty"`
	Series          int       `json:"series,omitempty"`
	Status          Status    `json:"status"`
	AccessKey       string    `json:"access_key,omitempty"`
	Protocol        string    `json:"protocol,omitempty"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	XML             string    `json:"xml,omitempty"`
	UserID          string    `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CorrectionLetter é o registro de uma carta de correção (CC-e) aceita.
// É um anexo ao documento autorizado; o status do documento não muda.
type CorrectionLetter struct {
	ID        string    `json:"id"`
	InvoiceID string    `json:"invoice_id"`
	Sequence  int       `json:"sequence"`
	Text      string    `json:"text"`
	Protocol  string    `json:"protocol"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// New cria um documento fiscal pendente para uma venda
func New(saleID string, docType Type, userID string) (*Invoice, error) {
	if saleID == "" {
		return nil, ErrSaleRequired
	}
	if docType == "" {
		docType = TypeNFCe
	}

	now := time.Now()
	return &Invoice{
		ID:        uuid.New().String(),
		SaleID:    saleID,
		Type:      docType,
		Status:    StatusPendente,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Authorize registra a autorização da SEFAZ: número, série, chave de
// acesso, protocolo e o XML autorizado
func (i *Invoice) Authorize(number int64, series int, accessKey, protocol, xml string) error {
	if i.Status != StatusPendente {
		return ErrNotPending
	}
	if len(accessKey) != AccessKeyLength {
		return ErrInvalidAccessKey
	}

	i.Number = number
	i.Series = series
	i.AccessKey = accessKey
	i.Protocol = protocol
	i.XML = xml
	i.Status = StatusAutorizada
	i.UpdatedAt = time.Now()
	return nil
}

// Reject registra a rejeição do documento com o motivo informado pela SEFAZ
func (i *Invoice) Reject(reason string) error {
	if i.Status != StatusPendente {
		return ErrNotPending
	}
	i.RejectionReason = reason
	i.Status = StatusRejeitada
	i.UpdatedAt = time.Now()
	return nil
}

// Cancel cancela um documento autorizado. O cancelamento só é permitido
// dentro do prazo legal contado da emissão; fora do prazo e em qualquer
// outro status a transição é recusada com erros distintos.
func (i *Invoice) Cancel(now time.Time) error {
	if i.Status != StatusAutorizada {
		return ErrNotCancellable
	}
	if now.Sub(i.CreatedAt) > CancelWindow {
		return ErrCancelWindowExpired
	}
	i.Status = StatusCancelada
	i.UpdatedAt = now
	return nil
}

// NewCorrectionLetter valida e cria uma carta de correção para o documento.
// Só é permitida em documento autorizado e não altera o status.
func (i *Invoice) NewCorrectionLetter(text, protocol, userID string, sequence int) (*CorrectionLetter, error) {
	if i.Status != StatusAutorizada {
		return nil, ErrNotAuthorized
	}
	text = strings.TrimSpace(text)
	if len([]rune(text)) < MinCorrectionLength {
		return nil, ErrCorrectionTooShort
	}

	return &CorrectionLetter{
		ID:        uuid.New().String(),
		InvoiceID: i.ID,
		Sequence:  sequence,
		Text:      text,
		Protocol:  protocol,
		UserID:    userID,
		CreatedAt: time.Now(),
	}, nil
}
