package route

import (
	"github.com/brunovales/erp-assistencia/internal/adapter/api/controller"
	"github.com/brunovales/erp-assistencia/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registra as rotas de autenticação
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := r.Group("/auth")
	{
		// Login e logout não exigem sessão
		authRouter.POST("/login", authController.Login)
		authRouter.POST("/logout", authController.Logout)

		authRouter.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
	}
}
