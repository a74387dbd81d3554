package main

import (
	"html/template"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/vendify/salesflow-web/internal/application/pos"
	"github.com/vendify/salesflow-web/internal/application/service"
	"github.com/vendify/salesflow-web/internal/config"
	"github.com/vendify/salesflow-web/internal/infrastructure/gateway"
	"github.com/vendify/salesflow-web/internal/infrastructure/logger"
	"github.com/vendify/salesflow-web/internal/infrastructure/postal"
	"github.com/vendify/salesflow-web/internal/presentation/http/handler"
	"github.com/vendify/salesflow-web/internal/presentation/http/middleware"
	"github.com/vendify/salesflow-web/internal/presentation/http/routes"
	"github.com/vendify/salesflow-web/pkg/numfmt"
	"github.com/vendify/salesflow-web/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize logger
	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize session manager
	sessions := utils.NewSessionManager(cfg.Session.Secret, cfg.Session.ExpiryHours)

	// Initialize the sales API client and gateways
	apiClient, err := gateway.NewClient(cfg.API)
	if err != nil {
		log.Fatalf("Failed to initialize API client: %v", err)
	}
	authGateway := gateway.NewAuthGateway(apiClient)
	customerGateway := gateway.NewCustomerGateway(apiClient)
	supplierGateway := gateway.NewSupplierGateway(apiClient)
	productGateway := gateway.NewProductGateway(apiClient)
	staffGateway := gateway.NewStaffGateway(apiClient)
	saleGateway := gateway.NewSaleGateway(apiClient)
	reportGateway := gateway.NewReportGateway(apiClient)
	postalClient := postal.NewClient(cfg.Postal)

	// Initialize services and the session cart store
	authService := service.NewAuthService(authGateway, sessions)
	checkoutService := service.NewCheckoutService(saleGateway)
	cartStore := pos.NewStore()

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, cartStore, cfg.Session),
		Dashboard: handler.NewDashboardHandler(),
		Customer:  handler.NewCustomerHandler(customerGateway),
		Supplier:  handler.NewSupplierHandler(supplierGateway),
		Product:   handler.NewProductHandler(productGateway),
		Staff:     handler.NewStaffHandler(staffGateway),
		POS:       handler.NewPOSHandler(cartStore, checkoutService, cfg.Session.CookieName),
		Report:    handler.NewReportHandler(reportGateway),
		Postal:    handler.NewPostalHandler(postalClient),
	}

	// Build the engine: templates and static assets live here, routes
	// and middleware in routes.Setup.
	router := gin.New()
	router.SetFuncMap(template.FuncMap{
		"money": numfmt.FormatMoney,
		"add": func(a, b int) int {
			return a + b
		},
	})
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "./web/static")

	routes.Setup(router, handlers, &routes.Deps{
		Sessions: sessions,
		Cfg:      cfg,
		Logger:   zapLogger,
		Metrics:  middleware.NewMetrics(),
	})

	port := cfg.App.Port
	if port == "" {
		port = "3000"
	}

	log.Printf("Starting %s on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
