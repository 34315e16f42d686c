package route

import (
	"github.com/brunovales/erp-assistencia/internal/adapter/api/controller"
	"github.com/brunovales/erp-assistencia/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterServiceOrderRoutes registra as rotas do módulo de ordens de serviço
func RegisterServiceOrderRoutes(r *gin.RouterGroup, orderController *controller.ServiceOrderController, companyID string) {
	orders := r.Group("/service-orders")
	orders.Use(auth.JWTAuthMiddleware())
	{
		orders.POST("", orderController.Create)
		orders.GET("", orderController.List)
		orders.GET("/:id", orderController.Get)
		orders.PATCH("/:id", orderController.Update)
		orders.POST("/:id/finalize", orderController.Finalize)
	}

	// Consulta pública de status pelo número da O.S., sem autenticação.
	// A empresa é fixada pela configuração do servidor.
	public := r.Group("/public")
	public.Use(func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Next()
	})
	{
		public.GET("/service-orders/:osNumber", orderController.PublicStatus)
	}
}
