package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/dto"
	"github.com/viamercado/pdv-varejo/internal/adapter/repository"
	saledomain "github.com/viamercado/pdv-varejo/internal/domain/sale"
	"github.com/viamercado/pdv-varejo/pkg/logger"
)

// SaleController gerencia as consultas ao histórico de vendas
type SaleController struct {
	saleRepo saledomain.Repository
	logger   logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

// List lista as vendas
// @Summary Listar vendas
// @Description Lista as vendas em ordem decrescente de número, com paginação
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.SaleListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	sales, err := c.saleRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", ""))
		return
	}

	total, err := c.saleRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar vendas", "error", err)
		total = len(sales)
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, total, pagination.Page, pagination.PageSize))
}

// GetByID busca uma venda pelo ID
// @Summary Buscar venda
// @Description Busca uma venda, com itens, pelo ID
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) GetByID(ctx *gin.Context) {
	s, err := c.saleRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if err == repository.ErrSaleNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// ListByPeriod lista as vendas de um período
// @Summary Vendas por período
// @Description Lista as vendas entre duas datas (formato 2006-01-02)
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string true "Data inicial"
// @Param to query string true "Data final"
// @Success 200 {object} dto.SaleListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/period [get]
func (c *SaleController) ListByPeriod(ctx *gin.Context) {
	from, err := time.Parse("2006-01-02", ctx.Query("from"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inicial inválida", err.Error()))
		return
	}
	to, err := time.Parse("2006-01-02", ctx.Query("to"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data final inválida", err.Error()))
		return
	}

	sales, err := c.saleRepo.ListByPeriod(ctx, from, to.Add(24*time.Hour))
	if err != nil {
		c.logger.Error("erro ao listar vendas por período", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, len(sales), 1, len(sales)))
}

// DailySummary retorna o resumo de vendas de um dia
// @Summary Resumo diário
// @Description Agrega contagem e total de vendas do dia (padrão: hoje)
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param date query string false "Dia (formato 2006-01-02)"
// @Success 200 {object} dto.DailySummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/summary [get]
func (c *SaleController) DailySummary(ctx *gin.Context) {
	day := time.Now()
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inválida", err.Error()))
			return
		}
		day = parsed
	}

	summary, err := c.saleRepo.SummaryByDay(ctx, day)
	if err != nil {
		c.logger.Error("erro ao agregar resumo diário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao agregar vendas", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailySummaryResponse(summary))
}
