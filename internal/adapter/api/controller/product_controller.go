package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/dto"
	"github.com/viamercado/pdv-varejo/internal/adapter/repository"
	productdomain "github.com/viamercado/pdv-varejo/internal/domain/product"
	"github.com/viamercado/pdv-varejo/pkg/logger"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto no catálogo
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := productdomain.NewProduct(req.Name, decimal.NewFromFloat(req.Price), decimal.NewFromFloat(req.CostPrice))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}

	if err := p.Update(req.Name, req.Description, req.Barcode, req.SKU, req.Category, req.Unit,
		decimal.NewFromFloat(req.Price), decimal.NewFromFloat(req.CostPrice), decimal.NewFromFloat(req.MinStock)); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}
	p.SetFiscalData(req.NCM, req.CFOP, req.CST)
	p.CreatedBy = ctx.GetString("user_id")

	if err := c.productRepo.Create(ctx, p); err != nil {
		if err == repository.ErrProductDuplicateKey {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao criar produto no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", ""))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// List lista os produtos
// @Summary Listar produtos
// @Description Lista os produtos com paginação
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Param active query bool false "Somente ativos"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)
	onlyActive := ctx.Query("active") == "true"

	products, err := c.productRepo.List(ctx, onlyActive, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", ""))
		return
	}

	total, err := c.productRepo.Count(ctx, onlyActive)
	if err != nil {
		c.logger.Error("erro ao contar produtos", "error", err)
		total = len(products)
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, pagination.Page, pagination.PageSize))
}

// Search busca produtos por nome parcial ou código de barras/SKU exato
// @Summary Buscar produtos
// @Description Busca produtos ativos por nome parcial ou código exato, para o PDV
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param q query string true "Termo de busca"
// @Success 200 {array} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/search [get]
func (c *ProductController) Search(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "termo de busca é obrigatório", ""))
		return
	}

	products, err := c.productRepo.Search(ctx, query)
	if err != nil {
		c.logger.Error("erro na busca de produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro na busca de produtos", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// GetByBarcode busca um produto ativo pelo código de barras exato
// @Summary Buscar produto por código de barras
// @Description Busca um produto ativo pelo código de barras lido no PDV
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param code path string true "Código de barras"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/barcode/{code} [get]
func (c *ProductController) GetByBarcode(ctx *gin.Context) {
	p, err := c.productRepo.FindByBarcode(ctx, ctx.Param("code"))
	if err != nil {
		if err == repository.ErrProductNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar produto por código de barras", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// GetByID busca um produto pelo ID
// @Summary Buscar produto
// @Description Busca um produto pelo ID
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) GetByID(ctx *gin.Context) {
	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if err == repository.ErrProductNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Update atualiza os dados de um produto
// @Summary Atualizar produto
// @Description Atualiza os dados cadastrais e fiscais de um produto
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if err == repository.ErrProductNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", ""))
		return
	}

	if err := p.Update(req.Name, req.Description, req.Barcode, req.SKU, req.Category, req.Unit,
		decimal.NewFromFloat(req.Price), decimal.NewFromFloat(req.CostPrice), decimal.NewFromFloat(req.MinStock)); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar produto", err.Error()))
		return
	}
	p.SetFiscalData(req.NCM, req.CFOP, req.CST)

	if err := c.productRepo.Update(ctx, p); err != nil {
		if err == repository.ErrProductDuplicateKey {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao atualizar produto no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// UpdateActive ativa ou desativa um produto
// @Summary Ativar/desativar produto
// @Description Ativa ou desativa um produto para venda, preservando o histórico
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param active query bool true "Novo estado"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/active [put]
func (c *ProductController) UpdateActive(ctx *gin.Context) {
	active := ctx.Query("active") == "true"

	if err := c.productRepo.UpdateActive(ctx, ctx.Param("id"), active); err != nil {
		if err == repository.ErrProductNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao atualizar status do produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar produto", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto atualizado", nil))
}

// ListLowStock lista os produtos abaixo do estoque mínimo
// @Summary Produtos com estoque baixo
// @Description Lista os produtos com estoque abaixo do mínimo configurado
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/low-stock [get]
func (c *ProductController) ListLowStock(ctx *gin.Context) {
	products, err := c.productRepo.ListBelowMinStock(ctx)
	if err != nil {
		c.logger.Error("erro ao listar produtos com estoque baixo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponses(products))
}
