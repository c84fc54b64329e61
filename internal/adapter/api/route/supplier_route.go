package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/controller"
	"github.com/viamercado/pdv-varejo/pkg/auth"
)

// RegisterSupplierRoutes registra as rotas do módulo de fornecedores
func RegisterSupplierRoutes(r *gin.RouterGroup, supplierController *controller.SupplierController) {
	suppliers := r.Group("/suppliers")
	{
		suppliers.POST("", supplierController.Create)
		suppliers.GET("", supplierController.List)
		suppliers.GET("/:id", supplierController.GetByID)
		suppliers.PUT("/:id", supplierController.Update)
		suppliers.DELETE("/:id", auth.Require(auth.ActionExcluir), supplierController.Delete)
	}
}
