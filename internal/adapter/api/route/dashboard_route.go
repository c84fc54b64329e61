package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/controller"
)

// RegisterDashboardRoutes registra a rota do painel
func RegisterDashboardRoutes(r *gin.RouterGroup, dashboardController *controller.DashboardController) {
	r.GET("/dashboard", dashboardController.Get)
}
