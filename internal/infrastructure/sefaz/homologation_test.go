package sefaz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viamercado/pdv-varejo/internal/domain/invoice"
	"github.com/viamercado/pdv-varejo/internal/domain/sale"
)

func TestHomologationAuthorize(t *testing.T) {
	client := NewHomologationClient()

	result, err := client.Authorize(context.Background(), &sale.Sale{ID: "sale-1"}, 123, 1)
	require.NoError(t, err)

	assert.True(t, result.Authorized)
	assert.Len(t, result.AccessKey, invoice.AccessKeyLength)
	for _, r := range result.AccessKey {
		assert.True(t, r >= '0' && r <= '9')
	}
	assert.NotEmpty(t, result.Protocol)
	assert.Contains(t, result.XML, "<nNF>123</nNF>")
	assert.Contains(t, result.XML, "<serie>1</serie>")
	assert.Contains(t, result.XML, "<cStat>100</cStat>")
	assert.Contains(t, result.Message, "HOMOLOGAÇÃO")
}

func TestHomologationAuthorizeDistinctKeys(t *testing.T) {
	client := NewHomologationClient()

	first, err := client.Authorize(context.Background(), &sale.Sale{}, 1, 1)
	require.NoError(t, err)
	second, err := client.Authorize(context.Background(), &sale.Sale{}, 2, 1)
	require.NoError(t, err)

	assert.NotEqual(t, first.AccessKey, second.AccessKey)
}

func TestHomologationCancel(t *testing.T) {
	client := NewHomologationClient()

	result, err := client.Cancel(context.Background(), "chave")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Protocol)
}

func TestHomologationRegisterCorrection(t *testing.T) {
	client := NewHomologationClient()

	result, err := client.RegisterCorrection(context.Background(), "chave", "texto da correção", 1)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Protocol)
}

func TestHomologationCancelledContext(t *testing.T) {
	client := NewHomologationClient()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Authorize(ctx, &sale.Sale{}, 1, 1)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = client.Cancel(ctx, "chave")
	assert.ErrorIs(t, err, context.Canceled)
}
