package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/dto"
	financedomain "github.com/viamercado/pdv-varejo/internal/domain/finance"
	productdomain "github.com/viamercado/pdv-varejo/internal/domain/product"
	saledomain "github.com/viamercado/pdv-varejo/internal/domain/sale"
	"github.com/viamercado/pdv-varejo/pkg/logger"
)

// DashboardController agrega os indicadores do painel
type DashboardController struct {
	saleRepo    saledomain.Repository
	financeRepo financedomain.Repository
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(saleRepo saledomain.Repository, financeRepo financedomain.Repository, productRepo productdomain.Repository, logger logger.Logger) *DashboardController {
	return &DashboardController{
		saleRepo:    saleRepo,
		financeRepo: financeRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Get retorna os indicadores do dia
// @Summary Painel do dia
// @Description Agrega vendas do dia, caixa do dia, produtos com estoque baixo e contas a receber em aberto
// @Tags dashboard
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (c *DashboardController) Get(ctx *gin.Context) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	salesSummary, err := c.saleRepo.SummaryByDay(ctx, now)
	if err != nil {
		c.logger.Error("erro ao agregar vendas do dia", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao agregar vendas", ""))
		return
	}

	financeSummary, err := c.financeRepo.SummaryByPeriod(ctx, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		c.logger.Error("erro ao agregar caixa do dia", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao agregar caixa", ""))
		return
	}

	lowStock, err := c.productRepo.ListBelowMinStock(ctx)
	if err != nil {
		c.logger.Error("erro ao listar produtos com estoque baixo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", ""))
		return
	}

	openReceivables, err := c.financeRepo.CountOpenReceivables(ctx)
	if err != nil {
		c.logger.Error("erro ao contar contas a receber", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar contas", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.DashboardResponse{
		Date:             now.Format("2006-01-02"),
		SalesCount:       salesSummary.SalesCount,
		SalesTotal:       salesSummary.Total,
		Inflows:          financeSummary.Inflows,
		Outflows:         financeSummary.Outflows,
		Balance:          financeSummary.Balance,
		LowStockCount:    len(lowStock),
		OpenReceivables:  openReceivables,
		LowStockProducts: dto.ToProductResponses(lowStock),
	})
}
