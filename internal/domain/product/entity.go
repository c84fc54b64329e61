package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Erros de validação
var (
	ErrNameRequired  = errors.New("nome do produto é obrigatório")
	ErrInvalidPrice  = errors.New("preço de venda deve ser maior que zero")
	ErrInvalidCost   = errors.New("preço de custo não pode ser negativo")
	ErrNegativeStock = errors.New("quantidade em estoque não pode ser negativa")
)

// Product representa um produto comercializável
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Barcode     string          `json:"barcode,omitempty"`
	SKU         string          `json:"sku,omitempty"`
	Category    string          `json:"category,omitempty"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	StockQty    decimal.Decimal `json:"stock_qty"`
	MinStock    decimal.Decimal `json:"min_stock"`

	// Campos fiscais (NCM/CFOP/CST) usados na emissão de NFC-e
	NCM  string `json:"ncm,omitempty"`
	CFOP string `json:"cfop,omitempty"`
	CST  string `json:"cst,omitempty"`

	Active    bool      `json:"active"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProduct cria um novo produto ativo com estoque zerado
func NewProduct(name string, price, costPrice decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if costPrice.IsNegative() {
		return nil, ErrInvalidCost
	}

	now := time.Now()
	return &Product{
		ID:        uuid.New().String(),
		Name:      name,
		Unit:      "un",
		Price:     price,
		CostPrice: costPrice,
		StockQty:  decimal.Zero,
		MinStock:  decimal.Zero,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados cadastrais do produto
func (p *Product) Update(name, description, barcode, sku, category, unit string, price, costPrice, minStock decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPrice
	}
	if costPrice.IsNegative() {
		return ErrInvalidCost
	}
	if minStock.IsNegative() {
		return ErrNegativeStock
	}

	p.Name = name
	p.Description = description
	p.Barcode = barcode
	p.SKU = sku
	p.Category = category
	if unit != "" {
		p.Unit = unit
	}
	p.Price = price
	p.CostPrice = costPrice
	p.MinStock = minStock
	p.UpdatedAt = time.Now()
	return nil
}

// SetFiscalData atualiza os campos fiscais do produto
func (p *Product) SetFiscalData(ncm, cfop, cst string) {
	p.NCM = ncm
	p.CFOP = cfop
	p.CST = cst
	p.UpdatedAt = time.Now()
}

// Activate reativa o produto para venda
func (p *Product) Activate() {
	p.Active = true
	p.UpdatedAt = time.Now()
}

// Deactivate retira o produto de venda sem apagar o histórico
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}

// BelowMinStock indica se o estoque atual está abaixo do mínimo configurado
func (p *Product) BelowMinStock() bool {
	return p.MinStock.IsPositive() && p.StockQty.LessThan(p.MinStock)
}
