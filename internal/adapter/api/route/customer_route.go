package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/controller"
	"github.com/viamercado/pdv-varejo/pkg/auth"
)

// RegisterCustomerRoutes registra as rotas do módulo de clientes
func RegisterCustomerRoutes(r *gin.RouterGroup, customerController *controller.CustomerController) {
	customers := r.Group("/customers")
	{
		customers.POST("", customerController.Create)
		customers.GET("", customerController.List)
		customers.GET("/document/:document", customerController.GetByDocument)
		customers.GET("/:id", customerController.GetByID)
		customers.PUT("/:id", customerController.Update)
		customers.DELETE("/:id", auth.Require(auth.ActionExcluir), customerController.Delete)
	}
}
