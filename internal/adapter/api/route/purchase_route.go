package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/controller"
)

// RegisterPurchaseRoutes registra as rotas de compras
func RegisterPurchaseRoutes(r *gin.RouterGroup, purchaseController *controller.PurchaseController) {
	purchases := r.Group("/purchases")
	{
		purchases.POST("", purchaseController.Register)
		purchases.GET("", purchaseController.List)
		purchases.GET("/:id", purchaseController.GetByID)
	}
}
