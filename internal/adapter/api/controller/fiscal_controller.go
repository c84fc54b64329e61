package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/dto"
	"github.com/viamercado/pdv-varejo/internal/adapter/repository"
	invoicedomain "github.com/viamercado/pdv-varejo/internal/domain/invoice"
	saledomain "github.com/viamercado/pdv-varejo/internal/domain/sale"
	settingsdomain "github.com/viamercado/pdv-varejo/internal/domain/settings"
	userdomain "github.com/viamercado/pdv-varejo/internal/domain/user"
	"github.com/viamercado/pdv-varejo/internal/infrastructure/sefaz"
	"github.com/viamercado/pdv-varejo/pkg/logger"
)

// Erros de regra de negócio da emissão
var (
	ErrSaleAlreadyInvoiced = errors.New("venda já possui documento fiscal emitido")
	ErrCertificateRequired = errors.New("emissão em produção exige certificado A1 válido")
	ErrCertificateExpired  = errors.New("certificado A1 vencido")
)

// FiscalController gerencia a emissão, cancelamento e cartas de correção
// dos documentos fiscais. As operações sensíveis revalidam o papel do
// usuário no banco; a claim do token é só atalho de interface.
type FiscalController struct {
	invoiceRepo  invoicedomain.Repository
	saleRepo     saledomain.Repository
	settingsRepo settingsdomain.Repository
	userRepo     userdomain.Repository
	sefazClient  sefaz.Client
	logger       logger.Logger
}

// NewFiscalController cria uma nova instância de FiscalController
func NewFiscalController(invoiceRepo invoicedomain.Repository, saleRepo saledomain.Repository, settingsRepo settingsdomain.Repository, userRepo userdomain.Repository, sefazClient sefaz.Client, logger logger.Logger) *FiscalController {
	return &FiscalController{
		invoiceRepo:  invoiceRepo,
		saleRepo:     saleRepo,
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		sefazClient:  sefazClient,
		logger:       logger,
	}
}

// requireFiscalRole faz a checagem autoritativa de papel no banco
func (c *FiscalController) requireFiscalRole(ctx *gin.Context) bool {
	ok, err := c.userRepo.HasRole(ctx, ctx.GetString("user_id"), userdomain.RoleAdmin, userdomain.RoleGerente)
	if err != nil {
		c.logger.Error("erro ao verificar papel do usuário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao verificar permissão", ""))
		return false
	}
	if !ok {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "sem permissão para esta operação", ""))
		return false
	}
	return true
}

// Emit emite o documento fiscal de uma venda
// @Summary Emitir documento fiscal
// @Description Cria o documento pendente, submete à SEFAZ e registra a autorização ou rejeição
// @Tags fiscal
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param invoice body dto.EmitInvoiceRequest true "Venda e modelo do documento"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fiscal/invoices [post]
func (c *FiscalController) Emit(ctx *gin.Context) {
	var req dto.EmitInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if !c.requireFiscalRole(ctx) {
		return
	}

	s, err := c.saleRepo.FindByID(ctx, req.SaleID)
	if err != nil {
		if err == repository.ErrSaleNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar venda para emissão", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", ""))
		return
	}

	existing, err := c.invoiceRepo.FindBySale(ctx, s.ID)
	if err != nil {
		c.logger.Error("erro ao buscar documentos da venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar documentos", ""))
		return
	}
	// Documento pendente de uma tentativa anterior é retomado, não
	// bloqueia a reemissão; só autorizado conta como já emitido
	var inv *invoicedomain.Invoice
	for _, e := range existing {
		if e.Status == invoicedomain.StatusAutorizada {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, ErrSaleAlreadyInvoiced.Error(), ""))
			return
		}
		if e.Status == invoicedomain.StatusPendente {
			inv = e
		}
	}

	cfg, err := c.settingsRepo.Get(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar configurações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao carregar configurações", ""))
		return
	}
	if cfg.Environment == settingsdomain.Production {
		if cfg.CertificateSubject == "" || cfg.CertificateNotAfter == nil {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, ErrCertificateRequired.Error(), ""))
			return
		}
		if cfg.CertificateNotAfter.Before(time.Now()) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, ErrCertificateExpired.Error(), ""))
			return
		}
	}

	if inv == nil {
		inv, err = invoicedomain.New(s.ID, req.Type, ctx.GetString("user_id"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar documento fiscal", err.Error()))
			return
		}
		if err := c.invoiceRepo.Create(ctx, inv); err != nil {
			c.logger.Error("erro ao gravar documento fiscal pendente", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar documento", ""))
			return
		}
	}

	number, series, err := c.settingsRepo.NextNFCeNumber(ctx)
	if err != nil {
		c.logger.Error("erro ao alocar número do documento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao alocar número", ""))
		return
	}

	result, err := c.sefazClient.Authorize(ctx, s, number, series)
	if err != nil {
		// O documento permanece pendente; a emissão pode ser repetida
		c.logger.Error("erro na comunicação com a SEFAZ", "invoice_id", inv.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro na comunicação com a SEFAZ", ""))
		return
	}

	if result.Authorized {
		if err := inv.Authorize(number, series, result.AccessKey, result.Protocol, result.XML); err != nil {
			c.logger.Error("erro ao registrar autorização", "invoice_id", inv.ID, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar autorização", ""))
			return
		}
	} else {
		if err := inv.Reject(result.RejectionReason); err != nil {
			c.logger.Error("erro ao registrar rejeição", "invoice_id", inv.ID, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar rejeição", ""))
			return
		}
	}

	if err := c.invoiceRepo.Update(ctx, inv); err != nil {
		c.logger.Error("erro ao salvar documento fiscal", "invoice_id", inv.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar documento", ""))
		return
	}

	c.logger.Info("documento fiscal processado", "invoice_id", inv.ID, "status", string(inv.Status), "access_key", inv.AccessKey)
	ctx.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

// Cancel cancela um documento fiscal autorizado
// @Summary Cancelar documento fiscal
// @Description Cancela um documento autorizado dentro do prazo legal de 24 horas
// @Tags fiscal
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do documento"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fiscal/invoices/{id}/cancel [post]
func (c *FiscalController) Cancel(ctx *gin.Context) {
	if !c.requireFiscalRole(ctx) {
		return
	}

	inv, err := c.invoiceRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if err == repository.ErrInvoiceNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar documento fiscal", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar documento", ""))
		return
	}

	if err := inv.Cancel(time.Now()); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error(), ""))
		return
	}

	if _, err := c.sefazClient.Cancel(ctx, inv.AccessKey); err != nil {
		c.logger.Error("erro ao cancelar documento na SEFAZ", "invoice_id", inv.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro na comunicação com a SEFAZ", ""))
		return
	}

	if err := c.invoiceRepo.Update(ctx, inv); err != nil {
		c.logger.Error("erro ao salvar cancelamento", "invoice_id", inv.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar documento", ""))
		return
	}

	c.logger.Info("documento fiscal cancelado", "invoice_id", inv.ID)
	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// RegisterCorrection registra uma carta de correção
// @Summary Carta de correção
// @Description Registra uma carta de correção (CC-e) em documento autorizado; o status não muda
// @Tags fiscal
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do documento"
// @Param correction body dto.CorrectionRequest true "Texto da correção"
// @Success 201 {object} dto.CorrectionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fiscal/invoices/{id}/corrections [post]
func (c *FiscalController) RegisterCorrection(ctx *gin.Context) {
	var req dto.CorrectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if !c.requireFiscalRole(ctx) {
		return
	}

	inv, err := c.invoiceRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if err == repository.ErrInvoiceNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar documento fiscal", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar documento", ""))
		return
	}

	count, err := c.invoiceRepo.CountCorrectionLetters(ctx, inv.ID)
	if err != nil {
		c.logger.Error("erro ao contar cartas de correção", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar cartas", ""))
		return
	}
	sequence := count + 1

	letter, err := inv.NewCorrectionLetter(req.Text, "", ctx.GetString("user_id"), sequence)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error(), ""))
		return
	}

	result, err := c.sefazClient.RegisterCorrection(ctx, inv.AccessKey, letter.Text, sequence)
	if err != nil {
		c.logger.Error("erro ao registrar CC-e na SEFAZ", "invoice_id", inv.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro na comunicação com a SEFAZ", ""))
		return
	}
	letter.Protocol = result.Protocol

	if err := c.invoiceRepo.AddCorrectionLetter(ctx, letter); err != nil {
		c.logger.Error("erro ao gravar carta de correção", "invoice_id", inv.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar carta", ""))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCorrectionResponse(letter))
}

// ListCorrections lista as cartas de correção de um documento
// @Summary Listar cartas de correção
// @Description Lista as cartas de correção registradas para o documento
// @Tags fiscal
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do documento"
// @Success 200 {array} dto.CorrectionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fiscal/invoices/{id}/corrections [get]
func (c *FiscalController) ListCorrections(ctx *gin.Context) {
	letters, err := c.invoiceRepo.ListCorrectionLetters(ctx, ctx.Param("id"))
	if err != nil {
		c.logger.Error("erro ao listar cartas de correção", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar cartas", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCorrectionResponses(letters))
}

// List lista os documentos fiscais
// @Summary Listar documentos fiscais
// @Description Lista os documentos fiscais, mais recentes primeiro
// @Tags fiscal
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.InvoiceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fiscal/invoices [get]
func (c *FiscalController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	invoices, err := c.invoiceRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar documentos fiscais", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar documentos", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(invoices, len(invoices), pagination.Page, pagination.PageSize))
}

// GetByID busca um documento fiscal pelo ID
// @Summary Buscar documento fiscal
// @Description Busca um documento fiscal pelo ID
// @Tags fiscal
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do documento"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fiscal/invoices/{id} [get]
func (c *FiscalController) GetByID(ctx *gin.Context) {
	inv, err := c.invoiceRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if err == repository.ErrInvoiceNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar documento fiscal", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar documento", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// GetXML retorna o XML autorizado do documento
// @Summary XML do documento
// @Description Retorna o XML autorizado do documento fiscal
// @Tags fiscal
// @Produce xml
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do documento"
// @Success 200 {string} string "XML do documento"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fiscal/invoices/{id}/xml [get]
func (c *FiscalController) GetXML(ctx *gin.Context) {
	inv, err := c.invoiceRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if err == repository.ErrInvoiceNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar documento fiscal", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar documento", ""))
		return
	}

	if inv.XML == "" {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "documento não possui XML autorizado", ""))
		return
	}

	ctx.Data(http.StatusOK, "application/xml", []byte(inv.XML))
}
