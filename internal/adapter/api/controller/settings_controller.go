package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/dto"
	settingsdomain "github.com/viamercado/pdv-varejo/internal/domain/settings"
	"github.com/viamercado/pdv-varejo/pkg/logger"
	"github.com/viamercado/pdv-varejo/pkg/pkcs12"
)

// SettingsController gerencia as configurações da empresa e o certificado A1
type SettingsController struct {
	settingsRepo settingsdomain.Repository
	logger       logger.Logger
}

// NewSettingsController cria uma nova instância de SettingsController
func NewSettingsController(settingsRepo settingsdomain.Repository, logger logger.Logger) *SettingsController {
	return &SettingsController{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get retorna as configurações da empresa
// @Summary Configurações
// @Description Retorna as configurações da empresa e os parâmetros de emissão fiscal
// @Tags settings
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	cfg, err := c.settingsRepo.Get(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar configurações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao carregar configurações", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(cfg))
}

// Update atualiza as configurações da empresa
// @Summary Atualizar configurações
// @Description Atualiza os dados cadastrais da empresa e os parâmetros de emissão
// @Tags settings
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param settings body dto.SettingsRequest true "Configurações"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settings [put]
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.SettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cfg, err := c.settingsRepo.Get(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar configurações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao carregar configurações", ""))
		return
	}

	if err := cfg.Update(req.CompanyName, req.TradeName, req.CNPJ, req.IE, req.Address, req.City, req.State, req.ZipCode,
		req.Environment, req.NFCeSeries, req.NFCeNextNumber); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "configurações inválidas", err.Error()))
		return
	}

	if err := c.settingsRepo.Save(ctx, cfg); err != nil {
		c.logger.Error("erro ao salvar configurações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar configurações", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(cfg))
}

// UploadCertificate importa o certificado digital A1
// @Summary Importar certificado A1
// @Description Valida o arquivo PFX com a senha informada e registra os dados do certificado
// @Tags settings
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param certificate formData file true "Arquivo PFX"
// @Param password formData string true "Senha do certificado"
// @Success 200 {object} dto.CertificateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settings/certificate [post]
func (c *SettingsController) UploadCertificate(ctx *gin.Context) {
	var req dto.CertificateUploadRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "senha do certificado é obrigatória", err.Error()))
		return
	}

	fileHeader, err := ctx.FormFile("certificate")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "arquivo do certificado é obrigatório", err.Error()))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao ler o arquivo", err.Error()))
		return
	}
	defer file.Close()

	pfxData, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao ler o arquivo", err.Error()))
		return
	}

	info, err := pkcs12.Validate(pfxData, req.Password)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error(), ""))
		return
	}

	cfg, err := c.settingsRepo.Get(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar configurações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao carregar configurações", ""))
		return
	}

	cfg.SetCertificate(info.Subject, info.NotAfter)
	if err := c.settingsRepo.Save(ctx, cfg); err != nil {
		c.logger.Error("erro ao salvar certificado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar certificado", ""))
		return
	}

	c.logger.Info("certificado A1 importado", "subject", info.Subject, "not_after", info.NotAfter)
	ctx.JSON(http.StatusOK, dto.CertificateResponse{
		Subject:   info.Subject,
		Issuer:    info.Issuer,
		NotBefore: info.NotBefore,
		NotAfter:  info.NotAfter,
	})
}
