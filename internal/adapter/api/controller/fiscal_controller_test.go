package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viamercado/pdv-varejo/internal/adapter/api/dto"
	"github.com/viamercado/pdv-varejo/internal/adapter/repository"
	cartdomain "github.com/viamercado/pdv-varejo/internal/domain/cart"
	invoicedomain "github.com/viamercado/pdv-varejo/internal/domain/invoice"
	productdomain "github.com/viamercado/pdv-varejo/internal/domain/product"
	saledomain "github.com/viamercado/pdv-varejo/internal/domain/sale"
	settingsdomain "github.com/viamercado/pdv-varejo/internal/domain/settings"
	userdomain "github.com/viamercado/pdv-varejo/internal/domain/user"
	"github.com/viamercado/pdv-varejo/internal/infrastructure/sefaz"
)

// fakeInvoiceRepo guarda os documentos fiscais em memória
type fakeInvoiceRepo struct {
	invoices []*invoicedomain.Invoice
	letters  []*invoicedomain.CorrectionLetter
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, inv *invoicedomain.Invoice) error {
	r.invoices = append(r.invoices, inv)
	return nil
}

func (r *fakeInvoiceRepo) FindByID(ctx context.Context, id string) (*invoicedomain.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, repository.ErrInvoiceNotFound
}

func (r *fakeInvoiceRepo) FindBySale(ctx context.Context, saleID string) ([]*invoicedomain.Invoice, error) {
	var out []*invoicedomain.Invoice
	for _, inv := range r.invoices {
		if inv.SaleID == saleID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) List(ctx context.Context, limit, offset int) ([]*invoicedomain.Invoice, error) {
	return r.invoices, nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, inv *invoicedomain.Invoice) error {
	for i, existing := range r.invoices {
		if existing.ID == inv.ID {
			r.invoices[i] = inv
			return nil
		}
	}
	return repository.ErrInvoiceNotFound
}

func (r *fakeInvoiceRepo) AddCorrectionLetter(ctx context.Context, letter *invoicedomain.CorrectionLetter) error {
	r.letters = append(r.letters, letter)
	return nil
}

func (r *fakeInvoiceRepo) ListCorrectionLetters(ctx context.Context, invoiceID string) ([]*invoicedomain.CorrectionLetter, error) {
	var out []*invoicedomain.CorrectionLetter
	for _, l := range r.letters {
		if l.InvoiceID == invoiceID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) CountCorrectionLetters(ctx context.Context, invoiceID string) (int, error) {
	letters, _ := r.ListCorrectionLetters(ctx, invoiceID)
	return len(letters), nil
}

// fakeSettingsRepo devolve configurações de homologação e aloca números
// sequenciais em memória
type fakeSettingsRepo struct {
	settings *settingsdomain.CompanySettings
	next     int64
	series   int
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*settingsdomain.CompanySettings, error) {
	return r.settings, nil
}

func (r *fakeSettingsRepo) Save(ctx context.Context, s *settingsdomain.CompanySettings) error {
	r.settings = s
	return nil
}

func (r *fakeSettingsRepo) NextNFCeNumber(ctx context.Context) (int64, int, error) {
	n := r.next
	r.next++
	return n, r.series, nil
}

// fakeUserRepo só responde à checagem de papel; o restante não é usado
// pelo controller fiscal
type fakeUserRepo struct {
	hasRole bool
}

func (r *fakeUserRepo) Create(ctx context.Context, u *userdomain.User) error { return nil }
func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*userdomain.User, error) {
	return nil, repository.ErrUserNotFound
}
func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	return nil, repository.ErrUserNotFound
}
func (r *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*userdomain.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(ctx context.Context, u *userdomain.User) error { return nil }
func (r *fakeUserRepo) UpdateStatus(ctx context.Context, id string, status userdomain.Status) error {
	return nil
}
func (r *fakeUserRepo) RegisterLogin(ctx context.Context, id string) error { return nil }
func (r *fakeUserRepo) HasRole(ctx context.Context, id string, roles ...userdomain.Role) (bool, error) {
	return r.hasRole, nil
}

// flakySefazClient delega ao cliente de homologação, mas pode simular
// indisponibilidade do webservice
type flakySefazClient struct {
	inner *sefaz.HomologationClient
	down  bool
}

func (c *flakySefazClient) Authorize(ctx context.Context, s *saledomain.Sale, number int64, series int) (*sefaz.AuthorizationResult, error) {
	if c.down {
		return nil, errors.New("timeout no webservice de autorização")
	}
	return c.inner.Authorize(ctx, s, number, series)
}

func (c *flakySefazClient) Cancel(ctx context.Context, accessKey string) (*sefaz.EventResult, error) {
	if c.down {
		return nil, errors.New("timeout no webservice de eventos")
	}
	return c.inner.Cancel(ctx, accessKey)
}

func (c *flakySefazClient) RegisterCorrection(ctx context.Context, accessKey, text string, sequence int) (*sefaz.EventResult, error) {
	if c.down {
		return nil, errors.New("timeout no webservice de eventos")
	}
	return c.inner.RegisterCorrection(ctx, accessKey, text, sequence)
}

// doJSON envia uma requisição JSON ao router e retorna a resposta
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type fiscalFixture struct {
	router   *gin.Engine
	invoices *fakeInvoiceRepo
	sales    *fakeSaleRepo
	sefaz    *flakySefazClient
	users    *fakeUserRepo
}

func newFiscalFixture(t *testing.T) *fiscalFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := &fakeProductRepo{products: make(map[string]*productdomain.Product)}
	sales := &fakeSaleRepo{stock: products, byKey: make(map[string]*saledomain.Sale)}
	invoices := &fakeInvoiceRepo{}
	settings := &fakeSettingsRepo{
		settings: &settingsdomain.CompanySettings{Environment: settingsdomain.Homologation},
		next:     1,
		series:   1,
	}
	users := &fakeUserRepo{hasRole: true}
	client := &flakySefazClient{inner: sefaz.NewHomologationClient()}

	controller := NewFiscalController(invoices, sales, settings, users, client, nopLogger{})

	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set("user_id", "op-1")
	})
	fiscal := router.Group("/fiscal")
	{
		fiscal.POST("/invoices", controller.Emit)
		fiscal.GET("/invoices/:id", controller.GetByID)
		fiscal.POST("/invoices/:id/cancel", controller.Cancel)
		fiscal.POST("/invoices/:id/corrections", controller.RegisterCorrection)
	}

	return &fiscalFixture{router: router, invoices: invoices, sales: sales, sefaz: client, users: users}
}

// finalizedSale grava uma venda finalizada para servir de base à emissão
func (f *fiscalFixture) finalizedSale(t *testing.T) *saledomain.Sale {
	t.Helper()
	p, err := productdomain.NewProduct("Arroz 5kg", decimal.RequireFromString("20.00"), decimal.Zero)
	require.NoError(t, err)
	p.StockQty = decimal.NewFromInt(10)
	f.sales.stock.products[p.ID] = p

	c := cartdomain.New("op-1")
	require.NoError(t, c.Add(p))
	s, err := saledomain.NewFromCart(c, "", "", saledomain.PaymentDinheiro, "chave-fiscal", "op-1")
	require.NoError(t, err)

	saved, err := f.sales.Finalize(context.Background(), s)
	require.NoError(t, err)
	return saved
}

func TestFiscalEmitAuthorizes(t *testing.T) {
	f := newFiscalFixture(t)
	s := f.finalizedSale(t)

	rec := doJSON(t, f.router, http.MethodPost, "/fiscal/invoices", dto.EmitInvoiceRequest{SaleID: s.ID})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.InvoiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, invoicedomain.StatusAutorizada, resp.Status)
	assert.Len(t, resp.AccessKey, invoicedomain.AccessKeyLength)
	assert.Equal(t, int64(1), resp.Number)
}

func TestFiscalEmitRetryAfterSEFAZFailure(t *testing.T) {
	f := newFiscalFixture(t)
	s := f.finalizedSale(t)

	// SEFAZ fora do ar: a emissão falha e o documento fica pendente
	f.sefaz.down = true
	rec := doJSON(t, f.router, http.MethodPost, "/fiscal/invoices", dto.EmitInvoiceRequest{SaleID: s.ID})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	pending, err := f.invoices.FindBySale(context.Background(), s.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, invoicedomain.StatusPendente, pending[0].Status)

	// SEFAZ volta: a reemissão retoma o documento pendente em vez de
	// recusar a venda como já emitida
	f.sefaz.down = false
	rec = doJSON(t, f.router, http.MethodPost, "/fiscal/invoices", dto.EmitInvoiceRequest{SaleID: s.ID})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.InvoiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, pending[0].ID, resp.ID)
	assert.Equal(t, invoicedomain.StatusAutorizada, resp.Status)

	// Nenhum documento duplicado foi criado
	all, err := f.invoices.FindBySale(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFiscalEmitSaleAlreadyAuthorized(t *testing.T) {
	f := newFiscalFixture(t)
	s := f.finalizedSale(t)

	first := doJSON(t, f.router, http.MethodPost, "/fiscal/invoices", dto.EmitInvoiceRequest{SaleID: s.ID})
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, f.router, http.MethodPost, "/fiscal/invoices", dto.EmitInvoiceRequest{SaleID: s.ID})
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestFiscalEmitRequiresElevatedRole(t *testing.T) {
	f := newFiscalFixture(t)
	s := f.finalizedSale(t)
	f.users.hasRole = false

	rec := doJSON(t, f.router, http.MethodPost, "/fiscal/invoices", dto.EmitInvoiceRequest{SaleID: s.ID})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, f.invoices.invoices)
}
