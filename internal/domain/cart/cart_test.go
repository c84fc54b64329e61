package cart

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viamercado/pdv-varejo/internal/domain/product"
)

func newTestProduct(t *testing.T, name string, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(name, decimal.RequireFromString(price), decimal.Zero)
	require.NoError(t, err)
	return p
}

func TestCartAdd(t *testing.T) {
	c := New("op-1")
	p := newTestProduct(t, "Arroz 5kg", "25.90")

	require.NoError(t, c.Add(p))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, p.ID, c.Lines[0].ProductID)
	assert.Equal(t, "Arroz 5kg", c.Lines[0].ProductName)
	assert.Equal(t, 1, c.Lines[0].Quantity)
	assert.True(t, c.Lines[0].UnitPrice.Equal(decimal.RequireFromString("25.90")))
}

func TestCartAddMergesExistingLine(t *testing.T) {
	c := New("op-1")
	p := newTestProduct(t, "Feijão 1kg", "8.50")

	require.NoError(t, c.Add(p))
	require.NoError(t, c.Add(p))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)

	// Incluir duas vezes equivale a definir a quantidade como 2
	other := New("op-2")
	require.NoError(t, other.Add(p))
	require.NoError(t, other.SetQuantity(p.ID, 2))
	assert.True(t, c.Subtotal().Equal(other.Subtotal()))
}

func TestCartAddInactiveProduct(t *testing.T) {
	c := New("op-1")
	p := newTestProduct(t, "Produto fora de linha", "10.00")
	p.Deactivate()

	err := c.Add(p)
	assert.ErrorIs(t, err, ErrInactiveProduct)
	assert.True(t, c.IsEmpty())
}

func TestCartPriceSnapshotAtAddTime(t *testing.T) {
	c := New("op-1")
	p := newTestProduct(t, "Leite 1L", "5.00")

	require.NoError(t, c.Add(p))
	p.Price = decimal.RequireFromString("7.00")

	assert.True(t, c.Lines[0].UnitPrice.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("5.00")))
}

func TestCartSetQuantity(t *testing.T) {
	c := New("op-1")
	p := newTestProduct(t, "Café 500g", "18.00")
	require.NoError(t, c.Add(p))

	require.NoError(t, c.SetQuantity(p.ID, 3))
	assert.Equal(t, 3, c.Lines[0].Quantity)
	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("54.00")))
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	c := New("op-1")
	p := newTestProduct(t, "Açúcar 1kg", "4.20")
	require.NoError(t, c.Add(p))

	require.NoError(t, c.SetQuantity(p.ID, 0))
	assert.True(t, c.IsEmpty())
}

func TestCartSetQuantityNegativeTreatedAsZero(t *testing.T) {
	c := New("op-1")
	p := newTestProduct(t, "Sal 1kg", "3.00")
	require.NoError(t, c.Add(p))

	require.NoError(t, c.SetQuantity(p.ID, -5))
	assert.True(t, c.IsEmpty())
}

func TestCartSetQuantityUnknownProduct(t *testing.T) {
	c := New("op-1")
	err := c.SetQuantity("inexistente", 2)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestCartRemove(t *testing.T) {
	c := New("op-1")
	a := newTestProduct(t, "Produto A", "1.00")
	b := newTestProduct(t, "Produto B", "2.00")
	require.NoError(t, c.Add(a))
	require.NoError(t, c.Add(b))

	require.NoError(t, c.Remove(a.ID))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, b.ID, c.Lines[0].ProductID)

	assert.ErrorIs(t, c.Remove(a.ID), ErrLineNotFound)
}

func TestCartDiscount(t *testing.T) {
	c := New("op-1")
	p := newTestProduct(t, "Queijo 500g", "20.00")
	require.NoError(t, c.Add(p))
	require.NoError(t, c.SetQuantity(p.ID, 2))

	require.NoError(t, c.SetDiscount(decimal.RequireFromString("5.00")))
	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("40.00")))
	assert.True(t, c.Total().Equal(decimal.RequireFromString("35.00")))
}

func TestCartDiscountNegative(t *testing.T) {
	c := New("op-1")
	p := newTestProduct(t, "Manteiga", "12.00")
	require.NoError(t, c.Add(p))

	err := c.SetDiscount(decimal.RequireFromString("-1.00"))
	assert.ErrorIs(t, err, ErrInvalidDiscount)
}

func TestCartDiscountGreaterThanSubtotal(t *testing.T) {
	c := New("op-1")
	p := newTestProduct(t, "Iogurte", "6.00")
	require.NoError(t, c.Add(p))

	err := c.SetDiscount(decimal.RequireFromString("6.01"))
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	// Desconto igual ao subtotal é permitido e zera o total
	require.NoError(t, c.SetDiscount(decimal.RequireFromString("6.00")))
	assert.True(t, c.Total().IsZero())
}

func TestCartSnapshotIsolation(t *testing.T) {
	c := New("op-1")
	p := newTestProduct(t, "Biscoito", "3.50")
	require.NoError(t, c.Add(p))

	snap := c.Snapshot()
	snap[0].Quantity = 99

	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestStoreGetCreatesEmptyCart(t *testing.T) {
	s := NewStore()

	c := s.Get("op-1")
	require.NotNil(t, c)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, "op-1", c.OperatorID)
}

func TestStoreGetReturnsCopy(t *testing.T) {
	s := NewStore()
	p := newTestProduct(t, "Refrigerante 2L", "9.00")

	_, err := s.Mutate("op-1", func(c *Cart) error {
		return c.Add(p)
	})
	require.NoError(t, err)

	// Alterar a cópia devolvida não afeta o carrinho guardado
	c := s.Get("op-1")
	c.Lines[0].Quantity = 99
	c.Discount = decimal.RequireFromString("5.00")

	assert.Equal(t, 1, s.Get("op-1").Lines[0].Quantity)
	assert.True(t, s.Get("op-1").Discount.IsZero())
}

func TestStoreMutateReturnsUpdatedCopy(t *testing.T) {
	s := NewStore()
	p := newTestProduct(t, "Refrigerante 2L", "9.00")

	updated, err := s.Mutate("op-1", func(c *Cart) error {
		return c.Add(p)
	})
	require.NoError(t, err)
	require.Len(t, updated.Lines, 1)

	updated.Lines[0].Quantity = 99
	assert.Equal(t, 1, s.Get("op-1").Lines[0].Quantity)
}

func TestStoreCartsArePerOperator(t *testing.T) {
	s := NewStore()
	p := newTestProduct(t, "Refrigerante 2L", "9.00")

	_, err := s.Mutate("op-1", func(c *Cart) error {
		return c.Add(p)
	})
	require.NoError(t, err)

	assert.False(t, s.Get("op-1").IsEmpty())
	assert.True(t, s.Get("op-2").IsEmpty())
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	p := newTestProduct(t, "Suco 1L", "7.50")

	_, err := s.Mutate("op-1", func(c *Cart) error {
		return c.Add(p)
	})
	require.NoError(t, err)
	s.Clear("op-1")

	assert.True(t, s.Get("op-1").IsEmpty())
}

func TestStoreConcurrentMutations(t *testing.T) {
	s := NewStore()
	p := newTestProduct(t, "Água 500ml", "2.00")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Mutate("op-1", func(c *Cart) error {
				return c.Add(p)
			})
		}()
	}
	wg.Wait()

	c := s.Get("op-1")
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 50, c.Lines[0].Quantity)
}

func TestStoreConcurrentReadsAndWrites(t *testing.T) {
	s := NewStore()
	p := newTestProduct(t, "Água 500ml", "2.00")

	// Leituras e escritas simultâneas sobre o mesmo operador; o detector
	// de corrida acusa qualquer acesso ao carrinho fora do lock
	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.Mutate("op-1", func(c *Cart) error {
				return c.Add(p)
			})
		}()
		go func() {
			defer wg.Done()
			c := s.Get("op-1")
			_ = c.Total()
			_ = c.Snapshot()
		}()
	}
	wg.Wait()

	c := s.Get("op-1")
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 25, c.Lines[0].Quantity)
}
