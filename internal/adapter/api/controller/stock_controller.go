package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/dto"
	"github.com/viamercado/pdv-varejo/internal/adapter/repository"
	productdomain "github.com/viamercado/pdv-varejo/internal/domain/product"
	stockdomain "github.com/viamercado/pdv-varejo/internal/domain/stock"
	"github.com/viamercado/pdv-varejo/pkg/logger"
)

// StockController gerencia o livro de movimentos de estoque e os ajustes
// manuais. A finalização de venda e o registro de compra movimentam o
// estoque por conta própria, dentro das respectivas transações.
type StockController struct {
	stockRepo   stockdomain.Repository
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewStockController cria uma nova instância de StockController
func NewStockController(stockRepo stockdomain.Repository, productRepo productdomain.Repository, logger logger.Logger) *StockController {
	return &StockController{
		stockRepo:   stockRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Adjust aplica um ajuste manual de estoque a um produto
// @Summary Ajustar estoque
// @Description Aplica um delta ao estoque do produto e registra o movimento de ajuste
// @Tags stock
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param adjust body dto.StockAdjustRequest true "Delta e motivo"
// @Success 200 {object} dto.StockAdjustResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock/products/{id}/adjust [post]
func (c *StockController) Adjust(ctx *gin.Context) {
	var req dto.StockAdjustRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	productID := ctx.Param("id")
	delta := decimal.NewFromFloat(req.Quantity)

	movement, err := stockdomain.NewMovement(productID, stockdomain.MovementAjuste, delta, req.Reason, "", ctx.GetString("user_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "movimento inválido", err.Error()))
		return
	}

	newQty, err := c.productRepo.AdjustStock(ctx, productID, delta)
	if err != nil {
		switch err {
		case repository.ErrProductNotFound:
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
		case repository.ErrStockWouldGoNegative:
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, err.Error(), ""))
		default:
			c.logger.Error("erro ao ajustar estoque", "product_id", productID, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao ajustar estoque", ""))
		}
		return
	}

	if err := c.stockRepo.Create(ctx, movement); err != nil {
		c.logger.Error("erro ao gravar movimento de ajuste", "product_id", productID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar movimento", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.StockAdjustResponse{
		Movement: dto.ToStockMovementResponse(movement),
		StockQty: newQty,
	})
}

// ListByProduct lista os movimentos de estoque de um produto
// @Summary Movimentos do produto
// @Description Lista os movimentos de estoque de um produto, mais recentes primeiro
// @Tags stock
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {array} dto.StockMovementResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock/products/{id}/movements [get]
func (c *StockController) ListByProduct(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	movements, err := c.stockRepo.FindByProduct(ctx, ctx.Param("id"), pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar movimentos do produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar movimentos", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockMovementResponses(movements))
}

// List lista os movimentos de estoque
// @Summary Listar movimentos
// @Description Lista os movimentos de estoque, mais recentes primeiro
// @Tags stock
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {array} dto.StockMovementResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock/movements [get]
func (c *StockController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	movements, err := c.stockRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar movimentos de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar movimentos", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockMovementResponses(movements))
}
