package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/dto"
	"github.com/viamercado/pdv-varejo/internal/adapter/repository"
	productdomain "github.com/viamercado/pdv-varejo/internal/domain/product"
	purchasedomain "github.com/viamercado/pdv-varejo/internal/domain/purchase"
	supplierdomain "github.com/viamercado/pdv-varejo/internal/domain/supplier"
	"github.com/viamercado/pdv-varejo/pkg/logger"
)

// PurchaseController gerencia o registro de entradas de mercadoria
type PurchaseController struct {
	purchaseRepo purchasedomain.Repository
	supplierRepo supplierdomain.Repository
	productRepo  productdomain.Repository
	logger       logger.Logger
}

// NewPurchaseController cria uma nova instância de PurchaseController
func NewPurchaseController(purchaseRepo purchasedomain.Repository, supplierRepo supplierdomain.Repository, productRepo productdomain.Repository, logger logger.Logger) *PurchaseController {
	return &PurchaseController{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// Register registra uma compra
// @Summary Registrar compra
// @Description Grava a compra, incrementa o estoque e lança a saída no caixa em uma única transação
// @Tags purchases
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param purchase body dto.PurchaseRequest true "Dados da compra"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases [post]
func (c *PurchaseController) Register(ctx *gin.Context) {
	var req dto.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if _, err := c.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		if err == repository.ErrSupplierNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar fornecedor da compra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", ""))
		return
	}

	items := make([]purchasedomain.ItemInput, 0, len(req.Items))
	for _, in := range req.Items {
		p, err := c.productRepo.FindByID(ctx, in.ProductID)
		if err != nil {
			if err == repository.ErrProductNotFound {
				ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), in.ProductID))
				return
			}
			c.logger.Error("erro ao buscar produto da compra", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", ""))
			return
		}
		items = append(items, purchasedomain.ItemInput{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    decimal.NewFromFloat(in.Quantity),
			UnitCost:    decimal.NewFromFloat(in.UnitCost),
		})
	}

	purchase, err := purchasedomain.New(req.SupplierID, req.InvoiceRef, req.Notes, ctx.GetString("user_id"), items)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error(), ""))
		return
	}

	if err := c.purchaseRepo.Register(ctx, purchase); err != nil {
		c.logger.Error("erro ao registrar compra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar compra", ""))
		return
	}

	c.logger.Info("compra registrada", "purchase_id", purchase.ID, "total", purchase.Total.String())
	ctx.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// List lista as compras
// @Summary Listar compras
// @Description Lista as compras, mais recentes primeiro
// @Tags purchases
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.PurchaseListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases [get]
func (c *PurchaseController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	purchases, err := c.purchaseRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar compras", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar compras", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(purchases, len(purchases), pagination.Page, pagination.PageSize))
}

// GetByID busca uma compra pelo ID
// @Summary Buscar compra
// @Description Busca uma compra, com itens, pelo ID
// @Tags purchases
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da compra"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases/{id} [get]
func (c *PurchaseController) GetByID(ctx *gin.Context) {
	purchase, err := c.purchaseRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if err == repository.ErrPurchaseNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar compra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar compra", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}
