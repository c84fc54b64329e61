package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viamercado/pdv-varejo/internal/adapter/api/dto"
	"github.com/viamercado/pdv-varejo/internal/adapter/repository"
	cartdomain "github.com/viamercado/pdv-varejo/internal/domain/cart"
	productdomain "github.com/viamercado/pdv-varejo/internal/domain/product"
	saledomain "github.com/viamercado/pdv-varejo/internal/domain/sale"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

// fakeProductRepo guarda os produtos em memória
type fakeProductRepo struct {
	products map[string]*productdomain.Product
}

func (r *fakeProductRepo) Create(ctx context.Context, p *productdomain.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id string) (*productdomain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) FindByBarcode(ctx context.Context, barcode string) (*productdomain.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode && p.Active {
			return p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) Search(ctx context.Context, query string) ([]*productdomain.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*productdomain.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) ListBelowMinStock(ctx context.Context) ([]*productdomain.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *productdomain.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateActive(ctx context.Context, id string, active bool) error {
	return nil
}

func (r *fakeProductRepo) AdjustStock(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	p, ok := r.products[id]
	if !ok {
		return decimal.Zero, repository.ErrProductNotFound
	}
	next := p.StockQty.Add(delta)
	if next.IsNegative() {
		return decimal.Zero, repository.ErrStockWouldGoNegative
	}
	p.StockQty = next
	return next, nil
}

func (r *fakeProductRepo) Count(ctx context.Context, onlyActive bool) (int, error) {
	return len(r.products), nil
}

// fakeSaleRepo reproduz em memória a semântica da finalização: decremento
// condicional de estoque com tudo-ou-nada e idempotência por chave
type fakeSaleRepo struct {
	mu      sync.Mutex
	stock   *fakeProductRepo
	byKey   map[string]*saledomain.Sale
	sales   []*saledomain.Sale
	nextSeq int64
}

func (r *fakeSaleRepo) Finalize(ctx context.Context, s *saledomain.Sale) (*saledomain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byKey[s.IdempotencyKey]; ok {
		return existing, nil
	}

	// Valida todos os decrementos antes de aplicar qualquer um
	next := make(map[string]decimal.Decimal)
	for _, item := range s.Items {
		cur, ok := next[item.ProductID]
		if !ok {
			p, err := r.stock.FindByID(ctx, item.ProductID)
			if err != nil {
				return nil, err
			}
			cur = p.StockQty
		}
		cur = cur.Sub(decimal.NewFromInt(int64(item.Quantity)))
		if cur.IsNegative() {
			return nil, &saledomain.StockConflictError{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
			}
		}
		next[item.ProductID] = cur
	}
	for id, qty := range next {
		r.stock.products[id].StockQty = qty
	}

	r.nextSeq++
	s.Number = r.nextSeq
	r.byKey[s.IdempotencyKey] = s
	r.sales = append(r.sales, s)
	return s, nil
}

func (r *fakeSaleRepo) FindByID(ctx context.Context, id string) (*saledomain.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, repository.ErrSaleNotFound
}

func (r *fakeSaleRepo) FindByIdempotencyKey(ctx context.Context, key string) (*saledomain.Sale, error) {
	s, ok := r.byKey[key]
	if !ok {
		return nil, repository.ErrSaleNotFound
	}
	return s, nil
}

func (r *fakeSaleRepo) List(ctx context.Context, limit, offset int) ([]*saledomain.Sale, error) {
	return r.sales, nil
}

func (r *fakeSaleRepo) ListByPeriod(ctx context.Context, from, to time.Time) ([]*saledomain.Sale, error) {
	return r.sales, nil
}

func (r *fakeSaleRepo) SummaryByDay(ctx context.Context, day time.Time) (*saledomain.DailySummary, error) {
	return &saledomain.DailySummary{Date: day}, nil
}

func (r *fakeSaleRepo) Count(ctx context.Context) (int, error) {
	return len(r.sales), nil
}

type pdvFixture struct {
	router   *gin.Engine
	products *fakeProductRepo
	sales    *fakeSaleRepo
	carts    *cartdomain.Store
}

func newPDVFixture(t *testing.T) *pdvFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := &fakeProductRepo{products: make(map[string]*productdomain.Product)}
	sales := &fakeSaleRepo{stock: products, byKey: make(map[string]*saledomain.Sale)}
	carts := cartdomain.NewStore()

	controller := NewPDVController(carts, products, sales, nopLogger{})

	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set("user_id", "op-1")
	})
	pdv := router.Group("/pdv")
	{
		pdv.GET("/cart", controller.GetCart)
		pdv.DELETE("/cart", controller.ClearCart)
		pdv.POST("/cart/items", controller.AddItem)
		pdv.PUT("/cart/items", controller.SetQuantity)
		pdv.DELETE("/cart/items/:productId", controller.RemoveItem)
		pdv.PUT("/cart/discount", controller.SetDiscount)
		pdv.POST("/finalize", controller.Finalize)
	}

	return &pdvFixture{router: router, products: products, sales: sales, carts: carts}
}

func (f *pdvFixture) addProduct(t *testing.T, name, price string, stock int64) *productdomain.Product {
	t.Helper()
	p, err := productdomain.NewProduct(name, decimal.RequireFromString(price), decimal.Zero)
	require.NoError(t, err)
	p.StockQty = decimal.NewFromInt(stock)
	f.products.products[p.ID] = p
	return p
}

func (f *pdvFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
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
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestPDVAddItemAndGetCart(t *testing.T) {
	f := newPDVFixture(t)
	p := f.addProduct(t, "Arroz 5kg", "20.00", 10)

	rec := f.do(t, http.MethodPost, "/pdv/cart/items", dto.AddItemRequest{ProductID: p.ID})
	require.Equal(t, http.StatusOK, rec.Code)

	var cart dto.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.True(t, cart.Subtotal.Equal(decimal.RequireFromString("20.00")))
}

func TestPDVAddItemUnknownProduct(t *testing.T) {
	f := newPDVFixture(t)

	rec := f.do(t, http.MethodPost, "/pdv/cart/items", dto.AddItemRequest{ProductID: "inexistente"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPDVAddItemInactiveProduct(t *testing.T) {
	f := newPDVFixture(t)
	p := f.addProduct(t, "Fora de linha", "10.00", 5)
	p.Deactivate()

	rec := f.do(t, http.MethodPost, "/pdv/cart/items", dto.AddItemRequest{ProductID: p.ID})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPDVSetQuantityLineNotFound(t *testing.T) {
	f := newPDVFixture(t)

	rec := f.do(t, http.MethodPut, "/pdv/cart/items", dto.SetQuantityRequest{ProductID: "inexistente", Quantity: 2})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPDVSetDiscountAboveSubtotal(t *testing.T) {
	f := newPDVFixture(t)
	p := f.addProduct(t, "Leite 1L", "5.00", 10)
	f.do(t, http.MethodPost, "/pdv/cart/items", dto.AddItemRequest{ProductID: p.ID})

	rec := f.do(t, http.MethodPut, "/pdv/cart/discount", dto.DiscountRequest{Discount: 10.00})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPDVFinalize(t *testing.T) {
	f := newPDVFixture(t)
	arroz := f.addProduct(t, "Arroz 5kg", "20.00", 10)
	feijao := f.addProduct(t, "Feijão 1kg", "5.00", 10)

	f.do(t, http.MethodPost, "/pdv/cart/items", dto.AddItemRequest{ProductID: arroz.ID})
	f.do(t, http.MethodPost, "/pdv/cart/items", dto.AddItemRequest{ProductID: feijao.ID})

	rec := f.do(t, http.MethodPost, "/pdv/finalize", dto.FinalizeRequest{
		CustomerName:   "Maria Silva",
		PaymentMethod:  saledomain.PaymentPix,
		IdempotencyKey: "chave-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.SaleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Number)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("25.00")))
	require.Len(t, resp.Items, 2)

	// Estoque decrementado e carrinho descartado
	assert.True(t, arroz.StockQty.Equal(decimal.NewFromInt(9)))
	assert.True(t, feijao.StockQty.Equal(decimal.NewFromInt(9)))
	assert.True(t, f.carts.Get("op-1").IsEmpty())
}

func TestPDVFinalizeEmptyCart(t *testing.T) {
	f := newPDVFixture(t)

	rec := f.do(t, http.MethodPost, "/pdv/finalize", dto.FinalizeRequest{
		PaymentMethod:  saledomain.PaymentDinheiro,
		IdempotencyKey: "chave-1",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPDVFinalizeMissingIdempotencyKey(t *testing.T) {
	f := newPDVFixture(t)
	p := f.addProduct(t, "Arroz 5kg", "20.00", 10)
	f.do(t, http.MethodPost, "/pdv/cart/items", dto.AddItemRequest{ProductID: p.ID})

	rec := f.do(t, http.MethodPost, "/pdv/finalize", dto.FinalizeRequest{
		PaymentMethod: saledomain.PaymentDinheiro,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPDVFinalizeStockConflict(t *testing.T) {
	f := newPDVFixture(t)
	p := f.addProduct(t, "Última unidade", "9.90", 1)

	f.do(t, http.MethodPost, "/pdv/cart/items", dto.AddItemRequest{ProductID: p.ID})
	f.do(t, http.MethodPut, "/pdv/cart/items", dto.SetQuantityRequest{ProductID: p.ID, Quantity: 3})

	rec := f.do(t, http.MethodPost, "/pdv/finalize", dto.FinalizeRequest{
		PaymentMethod:  saledomain.PaymentCartao,
		IdempotencyKey: "chave-1",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Message, "Última unidade")

	// Nada foi gravado: estoque intacto, venda inexistente e carrinho
	// preservado para correção
	assert.True(t, p.StockQty.Equal(decimal.NewFromInt(1)))
	assert.Empty(t, f.sales.sales)
	assert.False(t, f.carts.Get("op-1").IsEmpty())
}

func TestPDVFinalizeIdempotentResend(t *testing.T) {
	f := newPDVFixture(t)
	p := f.addProduct(t, "Arroz 5kg", "20.00", 10)

	f.do(t, http.MethodPost, "/pdv/cart/items", dto.AddItemRequest{ProductID: p.ID})
	first := f.do(t, http.MethodPost, "/pdv/finalize", dto.FinalizeRequest{
		PaymentMethod:  saledomain.PaymentPix,
		IdempotencyKey: "chave-repetida",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	// Reenvio da mesma tentativa (por exemplo após timeout do cliente)
	f.do(t, http.MethodPost, "/pdv/cart/items", dto.AddItemRequest{ProductID: p.ID})
	second := f.do(t, http.MethodPost, "/pdv/finalize", dto.FinalizeRequest{
		PaymentMethod:  saledomain.PaymentPix,
		IdempotencyKey: "chave-repetida",
	})
	require.Equal(t, http.StatusCreated, second.Code)

	var a, b dto.SaleResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, a.Number, b.Number)
	assert.Len(t, f.sales.sales, 1)
	// O estoque só foi decrementado uma vez
	assert.True(t, p.StockQty.Equal(decimal.NewFromInt(9)))
}

func TestPDVFinalizeConcurrentLastUnit(t *testing.T) {
	f := newPDVFixture(t)
	p := f.addProduct(t, "Última unidade", "9.90", 1)

	newSale := func(key string) *saledomain.Sale {
		c := cartdomain.New("op")
		require.NoError(t, c.Add(p))
		s, err := saledomain.NewFromCart(c, "", "", saledomain.PaymentDinheiro, key, "op")
		require.NoError(t, err)
		return s
	}

	attempts := []*saledomain.Sale{newSale("chave-a"), newSale("chave-b")}

	results := make(chan error, len(attempts))
	var wg sync.WaitGroup
	for _, s := range attempts {
		wg.Add(1)
		go func(s *saledomain.Sale) {
			defer wg.Done()
			_, err := f.sales.Finalize(context.Background(), s)
			results <- err
		}(s)
	}
	wg.Wait()
	close(results)

	// Exatamente uma venda vence; a outra recebe o conflito de estoque
	var successes, conflicts int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		var conflict *saledomain.StockConflictError
		require.ErrorAs(t, err, &conflict)
		conflicts++
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
	assert.True(t, p.StockQty.IsZero())
}

func TestPDVConcurrentAddAndGetCart(t *testing.T) {
	f := newPDVFixture(t)
	p := f.addProduct(t, "Água 500ml", "2.00", 100)

	body, err := json.Marshal(dto.AddItemRequest{ProductID: p.ID})
	require.NoError(t, err)

	// Inclusões e leituras simultâneas do mesmo operador; o detector de
	// corrida acusa qualquer leitura do carrinho fora do lock do Store
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/pdv/cart/items", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			f.router.ServeHTTP(httptest.NewRecorder(), req)
		}()
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/pdv/cart", nil)
			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()

	c := f.carts.Get("op-1")
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 20, c.Lines[0].Quantity)
}

func TestPDVClearCart(t *testing.T) {
	f := newPDVFixture(t)
	p := f.addProduct(t, "Arroz 5kg", "20.00", 10)
	f.do(t, http.MethodPost, "/pdv/cart/items", dto.AddItemRequest{ProductID: p.ID})

	rec := f.do(t, http.MethodDelete, "/pdv/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, f.carts.Get("op-1").IsEmpty())
}
