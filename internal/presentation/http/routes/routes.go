package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexuspos/pos-api/internal/config"
	"github.com/nexuspos/pos-api/internal/presentation/http/handler"
	"github.com/nexuspos/pos-api/internal/presentation/http/middleware"
	"github.com/nexuspos/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Sale     *handler.SaleHandler
	Return   *handler.ReturnHandler
	GRN      *handler.GRNHandler
	Stock    *handler.StockHandler
	Session  *handler.SessionHandler
	Customer *handler.CustomerHandler
	Supplier *handler.SupplierHandler
	User     *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
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

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Sales and returns
	sales := protected.Group("/sales")
	{
		sales.POST("", middleware.RequirePermission("sales.create"), h.Sale.Create)
		sales.GET("", middleware.RequirePermission("sales.view"), h.Sale.List)
		sales.GET("/summary/daily", middleware.RequirePermission("reports.view"), h.Sale.DailySummary)
		sales.GET("/:id", middleware.RequirePermission("sales.view"), h.Sale.Get)
		sales.POST("/:id/returns", middleware.RequirePermission("returns.create"), h.Return.Create)
		sales.GET("/:id/returns", middleware.RequirePermission("sales.view"), h.Return.ListBySale)
	}
	protected.GET("/returns/:id", middleware.RequirePermission("sales.view"), h.Return.Get)

	// Goods receipts and purchase returns
	grns := protected.Group("/grns")
	{
		grns.POST("", middleware.RequirePermission("grn.create"), h.GRN.Create)
		grns.GET("", middleware.RequirePermission("stock.view"), h.GRN.List)
		grns.GET("/:id", middleware.RequirePermission("stock.view"), h.GRN.Get)
		grns.POST("/:id/returns", middleware.RequirePermission("grn.return"), h.GRN.CreateReturn)
	}
	protected.GET("/purchase-returns/:id", middleware.RequirePermission("stock.view"), h.GRN.GetReturn)

	// Stock adjustments
	adjustments := protected.Group("/stock-adjustments")
	{
		adjustments.POST("", middleware.RequirePermission("stock.adjust"), h.Stock.CreateAdjustment)
		adjustments.GET("", middleware.RequirePermission("stock.view"), h.Stock.ListAdjustments)
		adjustments.GET("/:id", middleware.RequirePermission("stock.view"), h.Stock.GetAdjustment)
	}

	// Drawer sessions
	sessions := protected.Group("/sessions")
	{
		sessions.POST("/open", middleware.RequirePermission("sessions.manage"), h.Session.Open)
		sessions.POST("/close", middleware.RequirePermission("sessions.manage"), h.Session.Close)
		sessions.POST("/cash-flows", middleware.RequirePermission("sessions.manage"), h.Session.RecordCashFlow)
		sessions.GET("/current", middleware.RequirePermission("sessions.manage"), h.Session.GetCurrent)
		sessions.GET("/:id", middleware.RequirePermission("reports.view"), h.Session.Get)
	}

	// Products and categories
	products := protected.Group("/products")
	{
		products.POST("", middleware.RequirePermission("products.manage"), h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/low-stock", middleware.RequirePermission("stock.view"), h.Product.LowStock)
		products.GET("/barcode/:code", h.Product.GetByBarcode)
		products.GET("/:id", h.Product.Get)
		products.PATCH("/:id", middleware.RequirePermission("products.manage"), h.Product.Update)
		products.DELETE("/:id", middleware.RequirePermission("products.manage"), h.Product.Deactivate)
	}

	categories := protected.Group("/categories")
	{
		categories.POST("", middleware.RequirePermission("products.manage"), h.Product.CreateCategory)
		categories.GET("", h.Product.ListCategories)
	}

	// Customers
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission("customers.manage"))
	{
		customers.POST("", h.Customer.Create)
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	// Suppliers
	suppliers := protected.Group("/suppliers")
	suppliers.Use(middleware.RequirePermission("suppliers.manage"))
	{
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("", h.Supplier.List)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
	}

	// Users and permissions (admin surface)
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("users.manage"))
	{
		users.POST("", h.User.Create)
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PATCH("/:id/active", h.User.SetActive)
		users.POST("/:id/permissions", h.User.GrantPermission)
		users.DELETE("/:id/permissions", h.User.RevokePermission)
	}
	protected.GET("/permissions", middleware.RequirePermission("users.manage"), h.User.ListPermissions)

	// Activity log
	protected.GET("/activity", middleware.RequirePermission("activity.view"), h.User.RecentActivity)
}
