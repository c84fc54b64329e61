package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/controller"
	"github.com/viamercado/pdv-varejo/pkg/auth"
)

// RegisterPDVRoutes registra as rotas do ponto de venda
func RegisterPDVRoutes(r *gin.RouterGroup, pdvController *controller.PDVController) {
	pdv := r.Group("/pdv")
	{
		pdv.GET("/cart", pdvController.GetCart)
		pdv.DELETE("/cart", pdvController.ClearCart)
		pdv.POST("/cart/items", pdvController.AddItem)
		pdv.PUT("/cart/items", pdvController.SetQuantity)
		pdv.DELETE("/cart/items/:productId", pdvController.RemoveItem)
		pdv.PUT("/cart/discount", pdvController.SetDiscount)
		pdv.POST("/finalize", auth.Require(auth.ActionFinalizarVenda), pdvController.Finalize)
	}
}
