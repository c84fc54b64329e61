package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/dto"
	"github.com/viamercado/pdv-varejo/internal/adapter/repository"
	financedomain "github.com/viamercado/pdv-varejo/internal/domain/finance"
	"github.com/viamercado/pdv-varejo/pkg/logger"
)

// FinanceController gerencia o livro caixa e as contas a receber
type FinanceController struct {
	financeRepo financedomain.Repository
	logger      logger.Logger
}

// NewFinanceController cria uma nova instância de FinanceController
func NewFinanceController(financeRepo financedomain.Repository, logger logger.Logger) *FinanceController {
	return &FinanceController{
		financeRepo: financeRepo,
		logger:      logger,
	}
}

// CreateMovement grava um lançamento manual no livro caixa
// @Summary Lançamento manual
// @Description Grava um lançamento manual de entrada ou saída no livro caixa
// @Tags finance
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param movement body dto.FinancialMovementRequest true "Dados do lançamento"
// @Success 201 {object} dto.FinancialMovementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /finance/movements [post]
func (c *FinanceController) CreateMovement(ctx *gin.Context) {
	var req dto.FinancialMovementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	m, err := financedomain.NewMovement(req.Type, decimal.NewFromFloat(req.Amount), req.Description, req.PaymentMethod, "", ctx.GetString("user_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "lançamento inválido", err.Error()))
		return
	}

	if err := c.financeRepo.CreateMovement(ctx, m); err != nil {
		c.logger.Error("erro ao gravar lançamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar lançamento", ""))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFinancialMovementResponse(m))
}

// ListMovements lista os lançamentos do livro caixa
// @Summary Listar lançamentos
// @Description Lista os lançamentos do livro caixa, mais recentes primeiro
// @Tags finance
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {array} dto.FinancialMovementResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /finance/movements [get]
func (c *FinanceController) ListMovements(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	movements, err := c.financeRepo.ListMovements(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar lançamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lançamentos", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialMovementResponses(movements))
}

// Summary retorna o resumo financeiro de um período
// @Summary Resumo financeiro
// @Description Agrega entradas, saídas e saldo entre duas datas (formato 2006-01-02)
// @Tags finance
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string true "Data inicial"
// @Param to query string true "Data final"
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /finance/summary [get]
func (c *FinanceController) Summary(ctx *gin.Context) {
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

	summary, err := c.financeRepo.SummaryByPeriod(ctx, from, to.Add(24*time.Hour))
	if err != nil {
		c.logger.Error("erro ao agregar resumo financeiro", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao agregar lançamentos", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(summary, from, to))
}

// CreateReceivable cria uma conta a receber
// @Summary Criar conta a receber
// @Description Cria uma conta a receber (crediário) para um cliente
// @Tags finance
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param receivable body dto.ReceivableRequest true "Dados da conta"
// @Success 201 {object} dto.ReceivableResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /finance/receivables [post]
func (c *FinanceController) CreateReceivable(ctx *gin.Context) {
	var req dto.ReceivableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	r, err := financedomain.NewReceivable(req.CustomerID, req.Description, decimal.NewFromFloat(req.Amount), req.DueDate, ctx.GetString("user_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "conta a receber inválida", err.Error()))
		return
	}

	if err := c.financeRepo.CreateReceivable(ctx, r); err != nil {
		c.logger.Error("erro ao gravar conta a receber", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar conta", ""))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReceivableResponse(r))
}

// ListReceivables lista as contas a receber
// @Summary Listar contas a receber
// @Description Lista as contas a receber, opcionalmente só as abertas
// @Tags finance
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param open query bool false "Somente abertas"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {array} dto.ReceivableResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /finance/receivables [get]
func (c *FinanceController) ListReceivables(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)
	onlyOpen := ctx.Query("open") == "true"

	receivables, err := c.financeRepo.ListReceivables(ctx, onlyOpen, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar contas a receber", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar contas", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReceivableResponses(receivables))
}

// SettleReceivable quita uma conta a receber
// @Summary Quitar conta a receber
// @Description Quita a conta e lança a entrada no caixa na mesma transação
// @Tags finance
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da conta"
// @Success 200 {object} dto.ReceivableResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /finance/receivables/{id}/settle [post]
func (c *FinanceController) SettleReceivable(ctx *gin.Context) {
	r, err := c.financeRepo.FindReceivableByID(ctx, ctx.Param("id"))
	if err != nil {
		if err == repository.ErrReceivableNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar conta a receber", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar conta", ""))
		return
	}

	m, err := r.Settle(time.Now())
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error(), ""))
		return
	}

	if err := c.financeRepo.SettleReceivable(ctx, r, m); err != nil {
		if err == financedomain.ErrAlreadySettled {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao quitar conta a receber", "receivable_id", r.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao quitar conta", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReceivableResponse(r))
}
