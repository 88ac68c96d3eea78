package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restrodesk/restrodesk-api/internal/application/service"
	"github.com/restrodesk/restrodesk-api/internal/config"
	"github.com/restrodesk/restrodesk-api/internal/infrastructure/cache"
	"github.com/restrodesk/restrodesk-api/internal/infrastructure/database"
	"github.com/restrodesk/restrodesk-api/internal/infrastructure/repository"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/handler"
	"github.com/restrodesk/restrodesk-api/internal/presentation/http/routes"
	"github.com/restrodesk/restrodesk-api/pkg/printer"
	"github.com/restrodesk/restrodesk-api/pkg/storage"
	"github.com/restrodesk/restrodesk-api/pkg/utils"
)

// restockInterval is how often the sweeper flips products back in stock
// once their out-of-stock window has lapsed.
const restockInterval = time.Minute

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	productRepo := repository.NewProductRepository(db)
	tableRepo := repository.NewTableRepository(db)
	holdBillRepo := repository.NewHoldBillRepository(db)
	billRepo := repository.NewBillRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	reportRepo := repository.NewReportRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Product reads go through redis when it is reachable; otherwise the
	// catalog is served straight from the database.
	if redisClient, err := cache.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Printf("Warning: Redis unavailable, product cache disabled: %v", err)
	} else {
		productRepo = repository.NewCachedProductRepository(productRepo, cache.NewProductCache(redisClient))
	}

	// Initialize image storage
	imageStore, err := storage.NewMinioImageStore(
		cfg.Minio.Endpoint,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.Bucket,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		log.Printf("Warning: MinIO unavailable, product images disabled: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, restaurantRepo, jwtManager)
	productService := service.NewProductService(productRepo, imageStore)
	tableService := service.NewTableService(tableRepo, holdBillRepo)
	holdBillService := service.NewHoldBillService(holdBillRepo, productRepo, tableRepo)
	billService := service.NewBillService(billRepo, holdBillRepo, tableRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	reportService := service.NewReportService(reportRepo, billRepo, holdBillRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(
		thermalPrinter,
		billRepo,
		holdBillRepo,
		restaurantRepo,
		sequenceRepo,
		cfg.Printer.Type,
		cfg.Printer.Width,
	)

	// Restock sweeper: products marked out of stock for a fixed window
	// come back automatically.
	go runRestockSweeper(productService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService),
		Table:    handler.NewTableHandler(tableService),
		HoldBill: handler.NewHoldBillHandler(holdBillService),
		Bill:     handler.NewBillHandler(billService),
		Report:   handler.NewReportHandler(reportService),
		Expense:  handler.NewExpenseHandler(expenseService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

func runRestockSweeper(productService *service.ProductService) {
	ticker := time.NewTicker(restockInterval)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		restocked, err := productService.RestockDue(ctx)
		cancel()
		if err != nil {
			log.Printf("Restock sweep failed: %v", err)
			continue
		}
		if restocked > 0 {
			log.Printf("Restocked %d products", restocked)
		}
	}
}
