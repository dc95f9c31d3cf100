package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"shopmetrics/internal/analytics"
	"shopmetrics/internal/caching"
	"shopmetrics/internal/config"
	"shopmetrics/internal/handlers"
	"shopmetrics/internal/jobs"
	"shopmetrics/internal/jobs/background"
	"shopmetrics/internal/repositories"
	"shopmetrics/internal/services"
	"shopmetrics/pkg/database"
)

const version = "1.0.0"

func main() {
	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Behavior config (optional TOML file)
	cfg := config.Default()
	if configFile := os.Getenv("CONFIG_FILE"); configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = random.String(32) // Generate random secret for development
		log.Printf("WARNING: Using generated JWT secret: %s", jwtSecret)
	}

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}

	// MinIO configuration
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000"
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = "minioadmin" // Default for development
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = "minioadmin" // Default for development
	}
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	minioSvc, err := services.NewMinioService(minioEndpoint, minioAccessKey, minioSecretKey, useSSL)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}

	// Create repositories
	customerRepo := repositories.NewCustomerRepo(pool)
	productRepo := repositories.NewProductRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)
	orderItemRepo := repositories.NewOrderItemRepo(pool)
	employeeRepo := repositories.NewEmployeeRepo(pool)

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Create analytics service
	analyticsSvc := analytics.NewAnalyticsService(customerRepo, productRepo, orderRepo, orderItemRepo, employeeRepo, cacheSvc)
	analyticsSvc.SetSummaryTTL(cfg.SummaryTTL())

	// Create services
	customerSvc := services.NewCustomerService(customerRepo)
	productSvc := services.NewProductService(productRepo, cacheSvc)
	orderSvc := services.NewOrderService(orderRepo, orderItemRepo, customerRepo, productRepo, analyticsSvc)
	employeeSvc := services.NewEmployeeService(employeeRepo)
	reportSvc := services.NewReportService(analyticsSvc, minioSvc, cfg.Reports.Bucket, cfg.Analytics.TopProducts)

	// Create handlers
	customerHandlers := handlers.NewCustomerHandlers(customerSvc)
	productHandlers := handlers.NewProductHandlers(productSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	employeeHandlers := handlers.NewEmployeeHandlers(employeeSvc)
	analyticsHandlers := handlers.NewAnalyticsHandlers(analyticsSvc)
	reportHandlers := handlers.NewReportHandlers(reportSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	// Background summary refresh
	refreshSvc := jobs.NewSummaryRefreshService(analyticsSvc)
	scheduler, err := background.NewJobScheduler(refreshSvc, cfg.RefreshInterval())
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// JWT middleware configuration
	jwtConfig := echojwt.Config{
		SigningKey: []byte(jwtSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return jwt.MapClaims{}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(401, "Invalid token")
		},
	}

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/health/live", healthHandlers.LivenessCheck)

	// API routes
	v1 := e.Group("/v1")

	// Read-only analytics routes
	v1.GET("/analytics/customers/by-join-year", analyticsHandlers.CustomersByJoinYear)
	v1.GET("/analytics/customers/without-orders", analyticsHandlers.CustomersWithoutOrders)
	v1.GET("/analytics/products/by-category", analyticsHandlers.ProductsByCategory)
	v1.GET("/analytics/products/max-price", analyticsHandlers.MaxPriceProducts)
	v1.GET("/analytics/orders/count", analyticsHandlers.OrderCount)
	v1.GET("/analytics/revenue/total", analyticsHandlers.TotalRevenue)
	v1.GET("/analytics/revenue/top-products", analyticsHandlers.TopProductsByRevenue)
	v1.GET("/analytics/employees/average-salary", analyticsHandlers.AverageSalaryByDepartment)
	v1.GET("/analytics/summary", analyticsHandlers.SalesSummary)

	// Protected routes (require JWT)
	protected := v1.Group("")
	protected.Use(echojwt.WithConfig(jwtConfig))

	// Customer routes
	protected.GET("/customers", customerHandlers.ListCustomers)
	protected.POST("/customers", customerHandlers.CreateCustomer)
	protected.GET("/customers/:id", customerHandlers.GetCustomer)

	// Product routes
	protected.GET("/products", productHandlers.ListProducts)
	protected.POST("/products", productHandlers.CreateProduct)
	protected.GET("/products/:id", productHandlers.GetProduct)
	protected.POST("/products/:id/restock", productHandlers.RestockProduct)

	// Order routes
	protected.GET("/orders", orderHandlers.GetOrders)
	protected.POST("/orders", orderHandlers.CreateOrder)
	protected.GET("/orders/:id", orderHandlers.GetOrder)

	// Employee routes
	protected.GET("/employees", employeeHandlers.ListEmployees)
	protected.POST("/employees", employeeHandlers.CreateEmployee)
	protected.GET("/employees/:id", employeeHandlers.GetEmployee)
	protected.PUT("/employees/:id/salary", employeeHandlers.UpdateEmployeeSalary)
	protected.PUT("/employees/:id/department", employeeHandlers.UpdateEmployeeDepartment)

	// Report routes
	protected.POST("/reports/revenue", reportHandlers.GenerateRevenueReport)

	// Start server
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Fatalf("Invalid port %s: %v", portStr, err)
	}

	log.Printf("Shopmetrics server v%s starting on port %d", version, port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", port)))
}
