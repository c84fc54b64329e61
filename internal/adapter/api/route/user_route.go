package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/controller"
	"github.com/viamercado/pdv-varejo/pkg/auth"
)

// RegisterUserRoutes registra as rotas de gerenciamento de usuários
func RegisterUserRoutes(r *gin.RouterGroup, userController *controller.UserController) {
	users := r.Group("/users")
	users.Use(auth.Require(auth.ActionGerenciarUser))
	{
		users.POST("", userController.Create)
		users.GET("", userController.List)
		users.GET("/:id", userController.GetByID)
		users.PUT("/:id", userController.Update)
		users.PUT("/:id/password", userController.ChangePassword)
		users.PUT("/:id/status", userController.UpdateStatus)
	}
}
