package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/controller"
	"github.com/viamercado/pdv-varejo/internal/adapter/api/route"
	"github.com/viamercado/pdv-varejo/internal/adapter/repository"
	"github.com/viamercado/pdv-varejo/internal/domain/cart"
	"github.com/viamercado/pdv-varejo/internal/infrastructure/database"
	"github.com/viamercado/pdv-varejo/internal/infrastructure/sefaz"
	"github.com/viamercado/pdv-varejo/pkg/auth"
	"github.com/viamercado/pdv-varejo/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router     *gin.Engine
	db         *database.PostgresDB
	logger     logger.Logger
	jwtService *auth.JWTService

	authController      *controller.AuthController
	userController      *controller.UserController
	productController   *controller.ProductController
	pdvController       *controller.PDVController
	saleController      *controller.SaleController
	fiscalController    *controller.FiscalController
	stockController     *controller.StockController
	financeController   *controller.FinanceController
	customerController  *controller.CustomerController
	supplierController  *controller.SupplierController
	purchaseController  *controller.PurchaseController
	settingsController  *controller.SettingsController
	dashboardController *controller.DashboardController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	config := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(config)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	userRepo := repository.NewUserRepository(db.Pool())
	productRepo := repository.NewProductRepository(db.Pool())
	saleRepo := repository.NewSaleRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db.Pool())
	stockRepo := repository.NewStockRepository(db.Pool())
	financeRepo := repository.NewFinanceRepository(db)
	customerRepo := repository.NewCustomerRepository(db.Pool())
	supplierRepo := repository.NewSupplierRepository(db.Pool())
	purchaseRepo := repository.NewPurchaseRepository(db)
	settingsRepo := repository.NewSettingsRepository(db.Pool())

	// Carrinhos em memória, um por operador
	carts := cart.NewStore()

	// Cliente SEFAZ simulado; uma implementação de produção entraria aqui
	sefazClient := sefaz.NewHomologationClient()

	// Criar controllers
	authController := controller.NewAuthController(userRepo, jwtService, log)
	userController := controller.NewUserController(userRepo, log)
	productController := controller.NewProductController(productRepo, log)
	pdvController := controller.NewPDVController(carts, productRepo, saleRepo, log)
	saleController := controller.NewSaleController(saleRepo, log)
	fiscalController := controller.NewFiscalController(invoiceRepo, saleRepo, settingsRepo, userRepo, sefazClient, log)
	stockController := controller.NewStockController(stockRepo, productRepo, log)
	financeController := controller.NewFinanceController(financeRepo, log)
	customerController := controller.NewCustomerController(customerRepo, log)
	supplierController := controller.NewSupplierController(supplierRepo, log)
	purchaseController := controller.NewPurchaseController(purchaseRepo, supplierRepo, productRepo, log)
	settingsController := controller.NewSettingsController(settingsRepo, log)
	dashboardController := controller.NewDashboardController(saleRepo, financeRepo, productRepo, log)

	// gin.Default já instala Logger e Recovery
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	return &App{
		router:              router,
		db:                  db,
		logger:              log,
		jwtService:          jwtService,
		authController:      authController,
		userController:      userController,
		productController:   productController,
		pdvController:       pdvController,
		saleController:      saleController,
		fiscalController:    fiscalController,
		stockController:     stockController,
		financeController:   financeController,
		customerController:  customerController,
		supplierController:  supplierController,
		purchaseController:  purchaseController,
		settingsController:  settingsController,
		dashboardController: dashboardController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas protegidas por token JWT
	protected := api.Group("")
	protected.Use(auth.Middleware(a.jwtService))

	route.RegisterAuthRoutes(api, protected, a.authController)
	route.RegisterUserRoutes(protected, a.userController)
	route.RegisterProductRoutes(protected, a.productController)
	route.RegisterPDVRoutes(protected, a.pdvController)
	route.RegisterSaleRoutes(protected, a.saleController)
	route.RegisterFiscalRoutes(protected, a.fiscalController)
	route.RegisterStockRoutes(protected, a.stockController)
	route.RegisterFinanceRoutes(protected, a.financeController)
	route.RegisterCustomerRoutes(protected, a.customerController)
	route.RegisterSupplierRoutes(protected, a.supplierController)
	route.RegisterPurchaseRoutes(protected, a.purchaseController)
	route.RegisterSettingsRoutes(protected, a.settingsController)
	route.RegisterDashboardRoutes(protected, a.dashboardController)
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
