package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/controller"
	"github.com/viamercado/pdv-varejo/pkg/auth"
)

// RegisterStockRoutes registra as rotas do livro de estoque
func RegisterStockRoutes(r *gin.RouterGroup, stockController *controller.StockController) {
	stock := r.Group("/stock")
	{
		stock.GET("/movements", stockController.List)
		stock.GET("/products/:id/movements", stockController.ListByProduct)
		stock.POST("/products/:id/adjust", auth.Require(auth.ActionAjustarEstoque), stockController.Adjust)
	}
}
