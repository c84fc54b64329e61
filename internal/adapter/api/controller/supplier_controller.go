package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/dto"
	"github.com/viamercado/pdv-varejo/internal/adapter/repository"
	supplierdomain "github.com/viamercado/pdv-varejo/internal/domain/supplier"
	"github.com/viamercado/pdv-varejo/pkg/logger"
)

// SupplierController gerencia as requisições relacionadas a fornecedores
type SupplierController struct {
	supplierRepo supplierdomain.Repository
	logger       logger.Logger
}

// NewSupplierController cria uma nova instância de SupplierController
func NewSupplierController(supplierRepo supplierdomain.Repository, logger logger.Logger) *SupplierController {
	return &SupplierController{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Create cria um novo fornecedor
// @Summary Criar fornecedor
// @Description Cria um novo fornecedor no sistema
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers [post]
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	supplier, err := supplierdomain.NewSupplier(req.Name, req.CNPJ)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar fornecedor", err.Error()))
		return
	}

	if err := supplier.Update(req.Name, req.TradeName, req.Email, req.Phone, req.Address, req.Notes); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar fornecedor", err.Error()))
		return
	}

	if err := c.supplierRepo.Create(ctx, supplier); err != nil {
		if err == repository.ErrSupplierDuplicateKey {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao criar fornecedor no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar fornecedor", ""))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// List lista os fornecedores
// @Summary Listar fornecedores
// @Description Lista os fornecedores com paginação
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.SupplierListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers [get]
func (c *SupplierController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	suppliers, err := c.supplierRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar fornecedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar fornecedores", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierListResponse(suppliers, len(suppliers), pagination.Page, pagination.PageSize))
}

// GetByID busca um fornecedor pelo ID
// @Summary Buscar fornecedor
// @Description Busca um fornecedor pelo ID
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [get]
func (c *SupplierController) GetByID(ctx *gin.Context) {
	supplier, err := c.supplierRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if err == repository.ErrSupplierNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// Update atualiza os dados de um fornecedor
// @Summary Atualizar fornecedor
// @Description Atualiza os dados cadastrais de um fornecedor
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [put]
func (c *SupplierController) Update(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	supplier, err := c.supplierRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if err == repository.ErrSupplierNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", ""))
		return
	}

	if err := supplier.Update(req.Name, req.TradeName, req.Email, req.Phone, req.Address, req.Notes); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar fornecedor", err.Error()))
		return
	}

	if err := c.supplierRepo.Update(ctx, supplier); err != nil {
		c.logger.Error("erro ao atualizar fornecedor no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar fornecedor", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// Delete remove um fornecedor
// @Summary Remover fornecedor
// @Description Remove um fornecedor do sistema
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [delete]
func (c *SupplierController) Delete(ctx *gin.Context) {
	if err := c.supplierRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if err == repository.ErrSupplierNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao remover fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover fornecedor", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("fornecedor removido", nil))
}
