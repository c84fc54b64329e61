package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/controller"
)

// RegisterAuthRoutes registra as rotas de autenticação. O login é a única
// rota pública da API; as demais exigem o token.
func RegisterAuthRoutes(public, protected *gin.RouterGroup, authController *controller.AuthController) {
	public.POST("/auth/login", authController.Login)
	protected.GET("/auth/me", authController.Me)
}
