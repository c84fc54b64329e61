package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/controller"
	"github.com/viamercado/pdv-varejo/pkg/auth"
)

// RegisterSettingsRoutes registra as rotas de configurações da empresa
func RegisterSettingsRoutes(r *gin.RouterGroup, settingsController *controller.SettingsController) {
	settings := r.Group("/settings")
	{
		settings.GET("", settingsController.Get)
		settings.PUT("", auth.Require(auth.ActionConfigurar), settingsController.Update)
		settings.POST("/certificate", auth.Require(auth.ActionConfigurar), settingsController.UploadCertificate)
	}
}
