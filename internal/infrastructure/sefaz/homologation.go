package sefaz

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/viamercado/pdv-varejo/internal/domain/invoice"
	"github.com/viamercado/pdv-varejo/internal/domain/sale"
)

// HomologationClient simula o ambiente de homologação da SEFAZ: a
// autorização sempre é concedida e os documentos emitidos não possuem
// valor fiscal.
type HomologationClient struct {
	now  func() time.Time
	rand *rand.Rand
}

// NewHomologationClient cria o cliente de homologação
func NewHomologationClient() *HomologationClient {
	return &HomologationClient{
		now:  time.Now,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Authorize simula a autorização da SEFAZ: gera chave de acesso de 44
// dígitos, protocolo e um XML mínimo com cStat 100
func (c *HomologationClient) Authorize(ctx context.Context, s *sale.Sale, number int64, series int) (*AuthorizationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	accessKey := c.accessKey()
	protocol := strconv.FormatInt(c.now().UnixMilli(), 10)
	xml := fmt.Sprintf(
		`<nfeProc><NFe><infNFe Id="NFe%s"><ide><nNF>%d</nNF><serie>%d</serie></ide></infNFe></NFe><protNFe><infProt><nProt>%s</nProt><cStat>100</cStat></infProt></protNFe></nfeProc>`,
		accessKey, number, series, protocol,
	)

	return &AuthorizationResult{
		Authorized: true,
		AccessKey:  accessKey,
		Protocol:   protocol,
		XML:        xml,
		Message:    "NF-e emitida em ambiente de HOMOLOGAÇÃO (sem valor fiscal)",
	}, nil
}

// Cancel simula o evento de cancelamento
func (c *HomologationClient) Cancel(ctx context.Context, accessKey string) (*EventResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &EventResult{
		Protocol: strconv.FormatInt(c.now().UnixMilli(), 10),
		Message:  "NF-e cancelada (Homologação)",
	}, nil
}

// RegisterCorrection simula o registro da carta de correção
func (c *HomologationClient) RegisterCorrection(ctx context.Context, accessKey, text string, sequence int) (*EventResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &EventResult{
		Protocol: strconv.FormatInt(c.now().UnixMilli(), 10),
		Message:  "CC-e registrada (Homologação)",
	}, nil
}

// accessKey gera uma chave de acesso simulada de 44 dígitos
func (c *HomologationClient) accessKey() string {
	var b strings.Builder
	b.Grow(invoice.AccessKeyLength)
	for i := 0; i < invoice.AccessKeyLength; i++ {
		b.WriteByte(byte('0' + c.rand.Intn(10)))
	}
	return b.String()
}
