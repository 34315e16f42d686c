package route

import (
	"github.com/brunovales/erp-assistencia/internal/adapter/api/controller"
	"github.com/brunovales/erp-assistencia/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterConfigRoutes registra as rotas de configuração da empresa
func RegisterConfigRoutes(r *gin.RouterGroup, configController *controller.ConfigController) {
	config := r.Group("/config")
	config.Use(auth.JWTAuthMiddleware())
	{
		config.GET("", configController.Get)
		config.PUT("", configController.Update)

		// Apenas o dono altera as taxas
		config.PUT("/rates", auth.RoleAuthMiddleware("admin"), configController.UpdateRates)
	}
}
