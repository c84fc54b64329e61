package route

import (
	"github.com/gin-gonic/gin"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/controller"
)

// RegisterFinanceRoutes registra as rotas do livro caixa e contas a receber
func RegisterFinanceRoutes(r *gin.RouterGroup, financeController *controller.FinanceController) {
	finance := r.Group("/finance")
	{
		finance.POST("/movements", financeController.CreateMovement)
		finance.GET("/movements", financeController.ListMovements)
		finance.GET("/summary", financeController.Summary)
		finance.POST("/receivables", financeController.CreateReceivable)
		finance.GET("/receivables", financeController.ListReceivables)
		finance.POST("/receivables/:id/settle", financeController.SettleReceivable)
	}
}
