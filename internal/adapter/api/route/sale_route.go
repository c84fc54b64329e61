package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/controller"
)

// RegisterSaleRoutes registra as rotas do histórico de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	{
		sales.GET("", saleController.List)
		sales.GET("/period", saleController.ListByPeriod)
		sales.GET("/summary", saleController.DailySummary)
		sales.GET("/:id", saleController.GetByID)
	}
}
