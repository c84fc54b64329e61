package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/dto"
	"github.com/viamercado/pdv-varejo/internal/adapter/repository"
	cartdomain "github.com/viamercado/pdv-varejo/internal/domain/cart"
	productdomain "github.com/viamercado/pdv-varejo/internal/domain/product"
	saledomain "github.com/viamercado/pdv-varejo/internal/domain/sale"
	"github.com/viamercado/pdv-varejo/pkg/logger"
)

// PDVController gerencia o carrinho do ponto de venda e a finalização da
// venda. Cada operador autenticado tem um carrinho próprio, mantido em
// memória; a venda só passa a existir com a transação de finalização.
type PDVController struct {
	carts       *cartdomain.Store
	productRepo productdomain.Repository
	saleRepo    saledomain.Repository
	logger      logger.Logger
}

// NewPDVController cria uma nova instância de PDVController
func NewPDVController(carts *cartdomain.Store, productRepo productdomain.Repository, saleRepo saledomain.Repository, logger logger.Logger) *PDVController {
	return &PDVController{
		carts:       carts,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		logger:      logger,
	}
}

// GetCart retorna o carrinho do operador
// @Summary Carrinho atual
// @Description Retorna o carrinho do operador autenticado
// @Tags pdv
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.CartResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /pdv/cart [get]
func (c *PDVController) GetCart(ctx *gin.Context) {
	operatorID := ctx.GetString("user_id")
	ctx.JSON(http.StatusOK, dto.ToCartResponse(c.carts.Get(operatorID)))
}

// AddItem inclui um produto no carrinho
// @Summary Incluir produto no carrinho
// @Description Inclui um produto no carrinho; se já presente, incrementa a quantidade em 1
// @Tags pdv
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param item body dto.AddItemRequest true "Produto a incluir"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /pdv/cart/items [post]
func (c *PDVController) AddItem(ctx *gin.Context) {
	var req dto.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if err == repository.ErrProductNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar produto para o carrinho", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", ""))
		return
	}

	operatorID := ctx.GetString("user_id")
	updated, err := c.carts.Mutate(operatorID, func(cart *cartdomain.Cart) error {
		return cart.Add(p)
	})
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error(), ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(updated))
}

// SetQuantity altera a quantidade de uma linha do carrinho
// @Summary Alterar quantidade
// @Description Define a quantidade de uma linha; zero remove a linha
// @Tags pdv
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param item body dto.SetQuantityRequest true "Produto e nova quantidade"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pdv/cart/items [put]
func (c *PDVController) SetQuantity(ctx *gin.Context) {
	var req dto.SetQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	operatorID := ctx.GetString("user_id")
	updated, err := c.carts.Mutate(operatorID, func(cart *cartdomain.Cart) error {
		return cart.SetQuantity(req.ProductID, req.Quantity)
	})
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(updated))
}

// RemoveItem remove uma linha do carrinho
// @Summary Remover produto do carrinho
// @Description Remove a linha do produto incondicionalmente
// @Tags pdv
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param productId path string true "ID do produto"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pdv/cart/items/{productId} [delete]
func (c *PDVController) RemoveItem(ctx *gin.Context) {
	operatorID := ctx.GetString("user_id")
	updated, err := c.carts.Mutate(operatorID, func(cart *cartdomain.Cart) error {
		return cart.Remove(ctx.Param("productId"))
	})
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(updated))
}

// SetDiscount define o desconto do carrinho
// @Summary Aplicar desconto
// @Description Define o desconto em valor sobre o subtotal do carrinho
// @Tags pdv
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param discount body dto.DiscountRequest true "Valor do desconto"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /pdv/cart/discount [put]
func (c *PDVController) SetDiscount(ctx *gin.Context) {
	var req dto.DiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	operatorID := ctx.GetString("user_id")
	updated, err := c.carts.Mutate(operatorID, func(cart *cartdomain.Cart) error {
		return cart.SetDiscount(decimal.NewFromFloat(req.Discount))
	})
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error(), ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(updated))
}

// ClearCart descarta o carrinho do operador
// @Summary Cancelar carrinho
// @Description Descarta o carrinho sem registrar venda
// @Tags pdv
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Router /pdv/cart [delete]
func (c *PDVController) ClearCart(ctx *gin.Context) {
	c.carts.Clear(ctx.GetString("user_id"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("carrinho descartado", nil))
}

// Finalize finaliza a venda do carrinho do operador
// @Summary Finalizar venda
// @Description Grava a venda, decrementa o estoque e lança a entrada no caixa em uma única transação. Reenvios com a mesma chave de idempotência devolvem a venda já gravada.
// @Tags pdv
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.FinalizeRequest true "Dados da finalização"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pdv/finalize [post]
func (c *PDVController) Finalize(ctx *gin.Context) {
	var req dto.FinalizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	operatorID := ctx.GetString("user_id")
	cart := c.carts.Get(operatorID)

	s, err := saledomain.NewFromCart(cart, req.CustomerName, req.CustomerCPF, req.PaymentMethod, req.IdempotencyKey, operatorID)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error(), ""))
		return
	}

	saved, err := c.saleRepo.Finalize(ctx, s)
	if err != nil {
		var conflict *saledomain.StockConflictError
		if errors.As(err, &conflict) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, conflict.Error(), ""))
			return
		}
		c.logger.Error("erro ao finalizar venda", "operator_id", operatorID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao finalizar venda", ""))
		return
	}

	c.carts.Clear(operatorID)
	c.logger.Info("venda finalizada", "sale_id", saved.ID, "sale_number", saved.Number, "total", saved.Total.String())

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(saved))
}
