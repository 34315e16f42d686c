package route

import (
	"github.com/brunovales/erp-assistencia/internal/adapter/api/controller"
	"github.com/brunovales/erp-assistencia/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterProductRoutes registra as rotas do módulo de produtos e estoque
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/products")
	products.Use(auth.JWTAuthMiddleware())
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", productController.Update)
		products.DELETE("/:id", productController.Delete)
		products.POST("/:id/batch", productController.AddBatch)
		products.GET("/:id/batches", productController.ListBatches)
	}

	stock := r.Group("/stock")
	stock.Use(auth.JWTAuthMiddleware())
	{
		stock.GET("/alerts", productController.StockAlerts)
	}
}
