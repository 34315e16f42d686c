package route

import (
	"github.com/brunovales/erp-assistencia/internal/adapter/api/controller"
	"github.com/brunovales/erp-assistencia/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registra as rotas de relatórios e do painel
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController) {
	reports := r.Group("/reports")
	reports.Use(auth.JWTAuthMiddleware())
	{
		reports.GET("", reportController.Range)
		reports.GET("/stats", reportController.Stats)
		reports.GET("/full", reportController.Full)
		reports.GET("/performance", reportController.Performance)
		reports.GET("/card-sales", reportController.CardSales)
	}

	r.GET("/dashboard", auth.JWTAuthMiddleware(), reportController.Dashboard)
}
