package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/brunovales/erp-assistencia/docs"
	"github.com/brunovales/erp-assistencia/internal/adapter/api/controller"
	"github.com/brunovales/erp-assistencia/internal/adapter/api/route"
	"github.com/brunovales/erp-assistencia/internal/adapter/repository"
	"github.com/brunovales/erp-assistencia/internal/domain/user"
	"github.com/brunovales/erp-assistencia/internal/infrastructure/database"
	"github.com/brunovales/erp-assistencia/pkg/auth"
	"github.com/brunovales/erp-assistencia/pkg/logger"
)

// ID fixo da empresa quando COMPANY_ID não é informado. Instalações de
// loja única usam sempre o mesmo registro.
const defaultCompanyID = "00000000-0000-0000-0000-000000000001"

// App representa a aplicação e suas dependências
type App struct {
	router    *gin.Engine
	db        *pgxpool.Pool
	logger    logger.Logger
	companyID string
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	appLogger := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewServiceOrderRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	closingRepo := repository.NewClosingRepository(db)

	// Garantir a empresa padrão e o usuário administrador inicial
	companyID := getEnvOrDefault("COMPANY_ID", defaultCompanyID)
	companyName := getEnvOrDefault("COMPANY_NAME", "Assistência Técnica")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := companyRepo.GetOrCreateDefault(ctx, companyID, companyName); err != nil {
		db.Close()
		return nil, err
	}

	if err := bootstrapAdmin(ctx, userRepo, companyID, appLogger); err != nil {
		db.Close()
		return nil, err
	}

	// Serviço de tokens de sessão
	jwtService, err := auth.NewJWTService()
	if err != nil {
		db.Close()
		return nil, err
	}

	// Criar controllers
	authController := controller.NewAuthController(userRepo, jwtService, companyID, appLogger)
	customerController := controller.NewCustomerController(customerRepo, appLogger)
	supplierController := controller.NewSupplierController(supplierRepo, appLogger)
	productController := controller.NewProductController(productRepo, appLogger)
	orderController := controller.NewServiceOrderController(orderRepo, customerRepo, companyRepo, appLogger)
	saleController := controller.NewSaleController(saleRepo, companyRepo, appLogger)
	cashController := controller.NewCashFlowController(saleRepo, closingRepo, companyRepo, appLogger)
	reportController := controller.NewReportController(saleRepo, productRepo, customerRepo, orderRepo, appLogger)
	configController := controller.NewConfigController(companyRepo, appLogger)

	// Configurar router
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS com credenciais liberadas para o cookie de sessão
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{getEnvOrDefault("FRONTEND_ORIGIN", "http://localhost:5173")}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas da API
	api := router.Group("/api/v1")
	route.RegisterAuthRoutes(api, authController)
	route.RegisterCustomerRoutes(api, customerController)
	route.RegisterSupplierRoutes(api, supplierController)
	route.RegisterProductRoutes(api, productController)
	route.RegisterServiceOrderRoutes(api, orderController, companyID)
	route.RegisterSaleRoutes(api, saleController)
	route.RegisterCashFlowRoutes(api, cashController)
	route.RegisterReportRoutes(api, reportController)
	route.RegisterConfigRoutes(api, configController)

	return &App{
		router:    router,
		db:        db,
		logger:    appLogger,
		companyID: companyID,
	}, nil
}

// bootstrapAdmin cria o usuário administrador inicial a partir das
// variáveis ADMIN_EMAIL e ADMIN_PASSWORD, quando ainda não existe
func bootstrapAdmin(ctx context.Context, userRepo user.Repository, companyID string, appLogger logger.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	_, err := userRepo.FindByEmail(ctx, companyID, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	name := getEnvOrDefault("ADMIN_NAME", "Administrador")
	admin, err := user.NewUser(companyID, name, email, password, user.RoleAdmin)
	if err != nil {
		return err
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	appLogger.Info("usuário administrador criado", "email", email)
	return nil
}

// Start inicia o servidor HTTP
func (a *App) Start() {
	port := getEnvOrDefault("PORT", "8080")
	a.logger.Info("servidor iniciado", "port", port)
	if err := a.router.Run(":" + port); err != nil {
		log.Fatalf("Erro ao iniciar o servidor: %v", err)
	}
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// getEnvOrDefault retorna o valor de uma variável de ambiente ou um valor padrão
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
