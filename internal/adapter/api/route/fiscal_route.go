package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/controller"
	"github.com/viamercado/pdv-varejo/pkg/auth"
)

// RegisterFiscalRoutes registra as rotas dos documentos fiscais
func RegisterFiscalRoutes(r *gin.RouterGroup, fiscalController *controller.FiscalController) {
	fiscal := r.Group("/fiscal/invoices")
	{
		fiscal.POST("", auth.Require(auth.ActionEmitirNFe), fiscalController.Emit)
		fiscal.GET("", fiscalController.List)
		fiscal.GET("/:id", fiscalController.GetByID)
		fiscal.GET("/:id/xml", fiscalController.GetXML)
		fiscal.POST("/:id/cancel", auth.Require(auth.ActionCancelarNFe), fiscalController.Cancel)
		fiscal.POST("/:id/corrections", auth.Require(auth.ActionCartaCorrecao), fiscalController.RegisterCorrection)
		fiscal.GET("/:id/corrections", fiscalController.ListCorrections)
	}
}
