package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/controller"
)

// RegisterProductRoutes registra as rotas do catálogo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/products")
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/search", productController.Search)
		products.GET("/low-stock", productController.ListLowStock)
		products.GET("/barcode/:code", productController.GetByBarcode)
		products.GET("/:id", productController.GetByID)
		products.PUT("/:id", productController.Update)
		products.PUT("/:id/active", productController.UpdateActive)
	}
}
