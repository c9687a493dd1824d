package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/njorogedev/leathercraft-api/internal/config"
	domainRepo "github.com/njorogedev/leathercraft-api/internal/domain/repository"
	"github.com/njorogedev/leathercraft-api/internal/presentation/http/handler"
	"github.com/njorogedev/leathercraft-api/internal/presentation/http/middleware"
	"github.com/njorogedev/leathercraft-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth          *handler.AuthHandler
	Tenant        *handler.TenantHandler
	Product       *handler.ProductHandler
	Customer      *handler.CustomerHandler
	Vendor        *handler.VendorHandler
	Leather       *handler.LeatherHandler
	SalesOrder    *handler.SalesOrderHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	Invoice       *handler.InvoiceHandler
	Dashboard     *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	TenantRepo      domainRepo.TenantRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication + tenant scope required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.ScopeMiddleware(deps.TenantRepo))

		// Per-tenant rate limiter
		rateLimiter := middleware.NewTenantRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotent := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Summary)

	registerTenantRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerCustomerRoutes(protected, h)
	registerVendorRoutes(protected, h)
	registerLeatherRoutes(protected, h)
	registerSalesOrderRoutes(protected, h, idempotent)
	registerPurchaseOrderRoutes(protected, h, idempotent)
	registerInvoiceRoutes(protected, h, idempotent)
}

func registerTenantRoutes(protected *gin.RouterGroup, h *Handlers) {
	tenants := protected.Group("/tenants")
	{
		tenants.GET("", h.Tenant.List)
		tenants.POST("", h.Tenant.Create)
		tenants.GET("/:id", h.Tenant.Get)
		tenants.PUT("/:id", h.Tenant.Update)
		tenants.DELETE("/:id", h.Tenant.Delete)
		tenants.POST("/:id/users", h.Tenant.AddUser)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerVendorRoutes(protected *gin.RouterGroup, h *Handlers) {
	vendors := protected.Group("/vendors")
	{
		vendors.GET("", h.Vendor.List)
		vendors.POST("", h.Vendor.Create)
		vendors.GET("/:id", h.Vendor.Get)
		vendors.PUT("/:id", h.Vendor.Update)
		vendors.DELETE("/:id", h.Vendor.Delete)
	}
}

func registerLeatherRoutes(protected *gin.RouterGroup, h *Handlers) {
	suppliers := protected.Group("/leather-suppliers")
	{
		suppliers.GET("", h.Leather.ListSuppliers)
		suppliers.POST("", h.Leather.CreateSupplier)
		suppliers.GET("/:id", h.Leather.GetSupplier)
		suppliers.PUT("/:id", h.Leather.UpdateSupplier)
		suppliers.DELETE("/:id", h.Leather.DeleteSupplier)
	}

	types := protected.Group("/leather-types")
	{
		types.GET("", h.Leather.ListTypes)
		types.POST("", h.Leather.CreateType)
		types.GET("/:id", h.Leather.GetType)
		types.PUT("/:id", h.Leather.UpdateType)
		types.DELETE("/:id", h.Leather.DeleteType)
	}
}

func registerSalesOrderRoutes(protected *gin.RouterGroup, h *Handlers, idempotent gin.HandlerFunc) {
	orders := protected.Group("/sales-orders")
	{
		orders.GET("", h.SalesOrder.List)
		orders.POST("", h.SalesOrder.Create)
		orders.GET("/:id", h.SalesOrder.Get)
		orders.PUT("/:id", h.SalesOrder.Update)
		orders.DELETE("/:id", h.SalesOrder.Delete)
		orders.POST("/:id/lines", h.SalesOrder.AddLine)
		orders.PUT("/:id/lines/:lineId", h.SalesOrder.UpdateLine)
		orders.DELETE("/:id/lines/:lineId", h.SalesOrder.RemoveLine)
		// Confirmation deducts stock and issues an invoice; replays are cached
		orders.POST("/:id/confirm", idempotent, h.SalesOrder.Confirm)
	}
}

func registerPurchaseOrderRoutes(protected *gin.RouterGroup, h *Handlers, idempotent gin.HandlerFunc) {
	purchases := protected.Group("/purchase-orders")
	{
		purchases.GET("", h.PurchaseOrder.List)
		purchases.POST("", h.PurchaseOrder.Create)
		purchases.GET("/:id", h.PurchaseOrder.Get)
		purchases.PUT("/:id", h.PurchaseOrder.Update)
		purchases.DELETE("/:id", h.PurchaseOrder.Delete)
		purchases.POST("/:id/place", h.PurchaseOrder.MarkOrdered)
		purchases.POST("/:id/receive", idempotent, h.PurchaseOrder.Receive)
	}

	leatherOrders := protected.Group("/leather-orders")
	{
		leatherOrders.GET("", h.PurchaseOrder.ListLeatherOrders)
		leatherOrders.POST("", h.PurchaseOrder.CreateLeatherOrder)
		leatherOrders.GET("/:id", h.PurchaseOrder.GetLeatherOrder)
		leatherOrders.PUT("/:id", h.PurchaseOrder.UpdateLeatherOrder)
		leatherOrders.DELETE("/:id", h.PurchaseOrder.DeleteLeatherOrder)
		leatherOrders.POST("/:id/place", h.PurchaseOrder.MarkLeatherOrdered)
		leatherOrders.POST("/:id/receive", idempotent, h.PurchaseOrder.ReceiveLeatherOrder)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers, idempotent gin.HandlerFunc) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.DELETE("/:id", h.Invoice.Delete)
		invoices.GET("/:id/payments", h.Invoice.ListPayments)
		invoices.POST("/:id/payments", idempotent, h.Invoice.RecordPayment)
	}
}
