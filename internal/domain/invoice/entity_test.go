package invoice

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessKey = "35260912345678000190650010000001231000001239"

func authorizedInvoice(t *testing.T) *Invoice {
	t.Helper()
	inv, err := New("sale-1", TypeNFCe, "user-1")
	require.NoError(t, err)
	require.NoError(t, inv.Authorize(123, 1, testAccessKey, "prot-1", "<nfce/>"))
	return inv
}

func TestNew(t *testing.T) {
	inv, err := New("sale-1", TypeNFe, "user-1")
	require.NoError(t, err)

	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, "sale-1", inv.SaleID)
	assert.Equal(t, TypeNFe, inv.Type)
	assert.Equal(t, StatusPendente, inv.Status)
	assert.Equal(t, "user-1", inv.UserID)
}

func TestNewDefaultsToNFCe(t *testing.T) {
	inv, err := New("sale-1", "", "user-1")
	require.NoError(t, err)
	assert.Equal(t, TypeNFCe, inv.Type)
}

func TestNewWithoutSale(t *testing.T) {
	_, err := New("", TypeNFCe, "user-1")
	assert.ErrorIs(t, err, ErrSaleRequired)
}

func TestAuthorize(t *testing.T) {
	inv, err := New("sale-1", TypeNFCe, "user-1")
	require.NoError(t, err)

	require.NoError(t, inv.Authorize(123, 1, testAccessKey, "prot-1", "<nfce/>"))

	assert.Equal(t, StatusAutorizada, inv.Status)
	assert.Equal(t, int64(123), inv.Number)
	assert.Equal(t, 1, inv.Series)
	assert.Equal(t, testAccessKey, inv.AccessKey)
	assert.Equal(t, "prot-1", inv.Protocol)
	assert.Equal(t, "<nfce/>", inv.XML)
}

func TestAuthorizeInvalidAccessKey(t *testing.T) {
	inv, err := New("sale-1", TypeNFCe, "user-1")
	require.NoError(t, err)

	err = inv.Authorize(123, 1, "1234", "prot-1", "<nfce/>")
	assert.ErrorIs(t, err, ErrInvalidAccessKey)
	assert.Equal(t, StatusPendente, inv.Status)
}

func TestAuthorizeOnlyFromPending(t *testing.T) {
	inv := authorizedInvoice(t)
	err := inv.Authorize(124, 1, testAccessKey, "prot-2", "<nfce/>")
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestReject(t *testing.T) {
	inv, err := New("sale-1", TypeNFCe, "user-1")
	require.NoError(t, err)

	require.NoError(t, inv.Reject("rejeição 999: erro de schema"))
	assert.Equal(t, StatusRejeitada, inv.Status)
	assert.Equal(t, "rejeição 999: erro de schema", inv.RejectionReason)

	// Rejeitada é terminal
	assert.ErrorIs(t, inv.Reject("outro motivo"), ErrNotPending)
	assert.ErrorIs(t, inv.Cancel(time.Now()), ErrNotCancellable)
}

func TestCancelWithinWindow(t *testing.T) {
	inv := authorizedInvoice(t)

	require.NoError(t, inv.Cancel(inv.CreatedAt.Add(23*time.Hour)))
	assert.Equal(t, StatusCancelada, inv.Status)
}

func TestCancelWindowExpired(t *testing.T) {
	inv := authorizedInvoice(t)

	err := inv.Cancel(inv.CreatedAt.Add(CancelWindow + time.Minute))
	assert.ErrorIs(t, err, ErrCancelWindowExpired)
	assert.Equal(t, StatusAutorizada, inv.Status)
}

func TestCancelWrongStatus(t *testing.T) {
	pendente, err := New("sale-1", TypeNFCe, "user-1")
	require.NoError(t, err)
	assert.ErrorIs(t, pendente.Cancel(time.Now()), ErrNotCancellable)

	cancelada := authorizedInvoice(t)
	require.NoError(t, cancelada.Cancel(cancelada.CreatedAt.Add(time.Hour)))
	// Cancelada é terminal
	assert.ErrorIs(t, cancelada.Cancel(cancelada.CreatedAt.Add(2*time.Hour)), ErrNotCancellable)
}

func TestNewCorrectionLetter(t *testing.T) {
	inv := authorizedInvoice(t)

	letter, err := inv.NewCorrectionLetter("Endereço do destinatário corrigido", "prot-cce-1", "user-2", 1)
	require.NoError(t, err)

	assert.NotEmpty(t, letter.ID)
	assert.Equal(t, inv.ID, letter.InvoiceID)
	assert.Equal(t, 1, letter.Sequence)
	assert.Equal(t, "Endereço do destinatário corrigido", letter.Text)
	assert.Equal(t, "prot-cce-1", letter.Protocol)
	assert.Equal(t, "user-2", letter.UserID)

	// A carta não altera o status do documento
	assert.Equal(t, StatusAutorizada, inv.Status)
}

func TestNewCorrectionLetterTooShort(t *testing.T) {
	inv := authorizedInvoice(t)

	// 14 caracteres não basta; 15 passa. O limite conta runas, não bytes.
	_, err := inv.NewCorrectionLetter(strings.Repeat("a", 14), "", "user-1", 1)
	assert.ErrorIs(t, err, ErrCorrectionTooShort)

	_, err = inv.NewCorrectionLetter(strings.Repeat("a", 15), "", "user-1", 1)
	assert.NoError(t, err)

	_, err = inv.NewCorrectionLetter(strings.Repeat("ã", 15), "", "user-1", 1)
	assert.NoError(t, err)
}

func TestNewCorrectionLetterTrimsBeforeValidating(t *testing.T) {
	inv := authorizedInvoice(t)

	_, err := inv.NewCorrectionLetter("   curta    demais   ", "", "user-1", 1)
	assert.ErrorIs(t, err, ErrCorrectionTooShort)
}

func TestNewCorrectionLetterRequiresAuthorized(t *testing.T) {
	pendente, err := New("sale-1", TypeNFCe, "user-1")
	require.NoError(t, err)

	_, err = pendente.NewCorrectionLetter("Correção de endereço do destinatário", "", "user-1", 1)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	cancelada := authorizedInvoice(t)
	require.NoError(t, cancelada.Cancel(cancelada.CreatedAt.Add(time.Hour)))
	_, err = cancelada.NewCorrectionLetter("Correção de endereço do destinatário", "", "user-1", 1)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}
