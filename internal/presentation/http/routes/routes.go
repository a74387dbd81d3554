package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vendify/salesflow-web/internal/config"
	"github.com/vendify/salesflow-web/internal/infrastructure/logger"
	"github.com/vendify/salesflow-web/internal/presentation/http/handler"
	"github.com/vendify/salesflow-web/internal/presentation/http/middleware"
	"github.com/vendify/salesflow-web/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Customer  *handler.CustomerHandler
	Supplier  *handler.SupplierHandler
	Product   *handler.ProductHandler
	Staff     *handler.StaffHandler
	POS       *handler.POSHandler
	Report    *handler.ReportHandler
	Postal    *handler.PostalHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Sessions *utils.SessionManager
	Cfg      *config.Config
	Logger   *zap.Logger
	Metrics  *middleware.Metrics
}

// Setup registers all routes on the given Gin engine. The engine comes
// pre-built from main so template and static wiring stays there.
func Setup(router *gin.Engine, h *Handlers, deps *Deps) {
	// Global middleware
	router.Use(logger.Recovery(deps.Logger))
	router.Use(logger.GinMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))
	router.Use(deps.Metrics.Middleware())

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	router.GET("/metrics", deps.Metrics.Handler())

	// Public screens
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})
	router.GET("/login", h.Auth.ShowLogin)
	router.POST("/login", h.Auth.Login)
	router.POST("/logout", h.Auth.Logout)

	// Everything below requires a valid session cookie
	protected := router.Group("")
	protected.Use(middleware.SessionMiddleware(deps.Sessions, deps.Cfg.Session.CookieName))

	protected.GET("/dashboard", h.Dashboard.Show)
	protected.GET("/postal/:code", h.Postal.Lookup)

	registerCustomerRoutes(protected, h)
	registerSupplierRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerPOSRoutes(protected, h)

	// Admin-only screens
	admin := protected.Group("")
	admin.Use(middleware.RequireAdmin())

	registerStaffRoutes(admin, h)
	admin.GET("/reports", h.Report.General)
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/new", h.Customer.New)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id/edit", h.Customer.Edit)
		customers.POST("/:id", h.Customer.Update)
		customers.POST("/:id/delete", h.Customer.Delete)
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.GET("/new", h.Supplier.New)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id/edit", h.Supplier.Edit)
		suppliers.POST("/:id", h.Supplier.Update)
		suppliers.POST("/:id/delete", h.Supplier.Delete)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/new", h.Product.New)
		products.POST("", h.Product.Create)
		products.GET("/:id/edit", h.Product.Edit)
		products.POST("/:id", h.Product.Update)
		products.POST("/:id/delete", h.Product.Delete)
	}
}

func registerPOSRoutes(protected *gin.RouterGroup, h *Handlers) {
	posGroup := protected.Group("/pos")
	{
		posGroup.GET("", h.POS.Show)
		posGroup.POST("/items", h.POS.AddItem)
		posGroup.POST("/items/:index/delete", h.POS.RemoveItem)
		posGroup.POST("/checkout", h.POS.Checkout)
		posGroup.POST("/tender", h.POS.Tender)
		posGroup.POST("/finalize", h.POS.Finalize)
		posGroup.POST("/back", h.POS.Back)
		posGroup.POST("/cancel", h.POS.Cancel)
	}
}

func registerStaffRoutes(admin *gin.RouterGroup, h *Handlers) {
	staff := admin.Group("/staff")
	{
		staff.GET("", h.Staff.List)
		staff.GET("/new", h.Staff.New)
		staff.POST("", h.Staff.Create)
		staff.GET("/:id/edit", h.Staff.Edit)
		staff.POST("/:id", h.Staff.Update)
		staff.POST("/:id/delete", h.Staff.Delete)
	}
}
