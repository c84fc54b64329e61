package cart

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/domain/product"
)

// Erros de operação do carrinho
var (
	ErrEmptyCart       = errors.New("carrinho vazio")
	ErrLineNotFound    = errors.New("produto não está no carrinho")
	ErrInactiveProduct = errors.New("produto inativo não pode ser vendido")
	ErrInvalidQuantity = errors.New("quantidade deve ser maior que zero")
	ErrInvalidDiscount = errors.New("desconto não pode ser negativo nem maior que o subtotal")
)

// Line é uma linha do carrinho. O preço unitário é capturado no momento da
// inclusão e não acompanha alterações posteriores do cadastro do produto.
type Line struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Total retorna o total da linha (quantidade × preço unitário)
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart é a área de preparação de uma venda, mantida apenas em memória.
// Perder o carrinho antes da finalização não é defeito: a venda só existe
// depois da transação de finalização.
type Cart struct {
	OperatorID string          `json:"operator_id"`
	Lines      []Line          `json:"lines"`
	Discount   decimal.Decimal `json:"discount"`
}

// New cria um carrinho vazio para o operador
func New(operatorID string) *Cart {
	return &Cart{
		OperatorID: operatorID,
		Discount:   decimal.Zero,
	}
}

// Add inclui um produto no carrinho. Se já existe uma linha para o produto,
// incrementa a quantidade em 1; senão cria a linha com quantidade 1 ao
// preço atual do produto.
func (c *Cart) Add(p *product.Product) error {
	if !p.Active {
		return ErrInactiveProduct
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity++
			return nil
		}
	}
	c.Lines = append(c.Lines, Line{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    1,
		UnitPrice:   p.Price,
	})
	return nil
}

// SetQuantity define a quantidade de uma linha. Valores negativos são
// tratados como zero, e quantidade zero remove a linha.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if quantity < 0 {
		quantity = 0
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			if quantity == 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			} else {
				c.Lines[i].Quantity = quantity
			}
			return nil
		}
	}
	return ErrLineNotFound
}

// Remove retira a linha do produto incondicionalmente
func (c *Cart) Remove(productID string) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// SetDiscount define o desconto aplicado sobre o subtotal
func (c *Cart) SetDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() || discount.GreaterThan(c.Subtotal()) {
		return ErrInvalidDiscount
	}
	c.Discount = discount
	return nil
}

// Subtotal retorna a soma dos totais das linhas
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range c.Lines {
		subtotal = subtotal.Add(l.Total())
	}
	return subtotal
}

// Total retorna o subtotal menos o desconto
func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Sub(c.Discount)
}

// IsEmpty indica se o carrinho não possui linhas
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Snapshot retorna uma cópia das linhas, na ordem de inclusão, para ser
// consumida pela finalização sem compartilhar o slice interno.
func (c *Cart) Snapshot() []Line {
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)
	return lines
}

// Clone retorna uma cópia independente do carrinho. O Store só entrega
// cópias para fora do seu lock; o carrinho vivo nunca escapa.
func (c *Cart) Clone() *Cart {
	return &Cart{
		OperatorID: c.OperatorID,
		Lines:      c.Snapshot(),
		Discount:   c.Discount,
	}
}
