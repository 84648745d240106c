package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dguedes/marmitaria-api/internal/config"
	domainRepo "github.com/dguedes/marmitaria-api/internal/domain/repository"
	"github.com/dguedes/marmitaria-api/internal/presentation/http/handler"
	"github.com/dguedes/marmitaria-api/internal/presentation/http/middleware"
	"github.com/dguedes/marmitaria-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Customer *handler.CustomerHandler
	Order    *handler.OrderHandler
	User     *handler.UserHandler
	Settings *handler.SettingsHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
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

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/me", h.Auth.GetProfile)

	// Settings (admin only for writes)
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", middleware.RequireAdmin(), h.Settings.UpdateSettings)

	registerProductRoutes(protected, h)
	registerCustomerRoutes(protected, h)
	registerOrderRoutes(protected, h, deps)
	registerUserRoutes(protected, h)
	registerPrinterRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.ListProducts)
		products.GET("/:id", h.Product.GetProduct)
		products.POST("", middleware.RequireAdmin(), h.Product.CreateProduct)
		products.PUT("/:id", middleware.RequireAdmin(), h.Product.UpdateProduct)
		products.PATCH("/:id/toggle", middleware.RequireAdmin(), h.Product.ToggleProduct)
		products.DELETE("/:id", middleware.RequireAdmin(), h.Product.DeleteProduct)
		products.DELETE("/:id/permanent", middleware.RequireAdmin(), h.Product.DeleteProductPermanent)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.ListCustomers)
		customers.POST("", h.Customer.CreateCustomer)
		customers.GET("/:id", h.Customer.GetCustomer)
		customers.PUT("/:id", h.Customer.UpdateCustomer)
		customers.DELETE("/:id", h.Customer.DeleteCustomer)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.ListOrders)
		// Order creation replays on retried Idempotency-Key headers
		orders.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.CreateOrder)
		orders.GET("/:id", h.Order.GetOrder)
		orders.PATCH("/:id/status", h.Order.UpdateOrderStatus)
		orders.GET("/:id/receipt", h.Order.GetReceipts)
		orders.POST("/:id/print", h.Order.PrintOrder)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	{
		users.GET("", h.User.ListUsers)
		users.GET("/:id", h.User.GetUser)
		users.POST("", middleware.RequireAdmin(), h.User.CreateUser)
		users.PUT("/:id", middleware.RequireAdmin(), h.User.UpdateUser)
		users.DELETE("/:id", middleware.RequireAdmin(), h.User.DeactivateUser)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
