package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/njorogedev/leathercraft-api/internal/application/service"
	"github.com/njorogedev/leathercraft-api/internal/config"
	"github.com/njorogedev/leathercraft-api/internal/infrastructure/database"
	"github.com/njorogedev/leathercraft-api/internal/infrastructure/repository"
	"github.com/njorogedev/leathercraft-api/internal/presentation/http/handler"
	"github.com/njorogedev/leathercraft-api/internal/presentation/http/routes"
	"github.com/njorogedev/leathercraft-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	supplierRepo := repository.NewLeatherSupplierRepository(db)
	leatherTypeRepo := repository.NewLeatherTypeRepository(db)
	salesOrderRepo := repository.NewSalesOrderRepository(db)
	purchaseOrderRepo := repository.NewPurchaseOrderRepository(db)
	leatherOrderRepo := repository.NewLeatherPurchaseOrderRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	uow := repository.NewUnitOfWork(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, tenantRepo, jwtManager)
	tenantService := service.NewTenantService(tenantRepo, userRepo)
	productService := service.NewProductService(productRepo)
	customerService := service.NewCustomerService(customerRepo)
	vendorService := service.NewVendorService(vendorRepo)
	leatherService := service.NewLeatherService(supplierRepo, leatherTypeRepo)
	salesOrderService := service.NewSalesOrderService(salesOrderRepo, customerRepo, productRepo, uow)
	purchaseOrderService := service.NewPurchaseOrderService(purchaseOrderRepo, leatherOrderRepo, vendorRepo, supplierRepo, productRepo, leatherTypeRepo, uow)
	invoiceService := service.NewInvoiceService(invoiceRepo, paymentRepo, customerRepo, uow)
	dashboardService := service.NewDashboardService(analyticsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Tenant:        handler.NewTenantHandler(tenantService),
		Product:       handler.NewProductHandler(productService),
		Customer:      handler.NewCustomerHandler(customerService),
		Vendor:        handler.NewVendorHandler(vendorService),
		Leather:       handler.NewLeatherHandler(leatherService),
		SalesOrder:    handler.NewSalesOrderHandler(salesOrderService),
		PurchaseOrder: handler.NewPurchaseOrderHandler(purchaseOrderService),
		Invoice:       handler.NewInvoiceHandler(invoiceService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		TenantRepo:      tenantRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logrus.WithFields(logrus.Fields{
		"service": cfg.App.Name,
		"port":    port,
		"env":     cfg.App.Env,
	}).Info("starting server")

	if err := router.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
