package route

import (
	"github.com/brunovales/erp-assistencia/internal/adapter/api/controller"
	"github.com/brunovales/erp-assistencia/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterCashFlowRoutes registra as rotas do caixa
func RegisterCashFlowRoutes(r *gin.RouterGroup, cashController *controller.CashFlowController) {
	cashFlow := r.Group("/cash-flow")
	cashFlow.Use(auth.JWTAuthMiddleware())
	{
		cashFlow.GET("/today", cashController.Today)
	}

	cashRegister := r.Group("/cash-register")
	cashRegister.Use(auth.JWTAuthMiddleware())
	{
		cashRegister.POST("/close", cashController.Close)
		cashRegister.GET("/history", cashController.History)
	}
}
