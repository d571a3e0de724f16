package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/nexuspos/pos-api/internal/application/service"
	"github.com/nexuspos/pos-api/internal/config"
	"github.com/nexuspos/pos-api/internal/infrastructure/database"
	"github.com/nexuspos/pos-api/internal/infrastructure/repository"
	"github.com/nexuspos/pos-api/internal/presentation/http/handler"
	"github.com/nexuspos/pos-api/internal/presentation/http/routes"
	"github.com/nexuspos/pos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

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

	// Seed capability slugs and the initial admin user
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Repositories
	txManager := repository.NewTxManager(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	userRepo := repository.NewUserRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	// Services
	stockService := service.NewStockService(txManager, cfg.Stock)
	salesService := service.NewSalesService(txManager, stockService, customerRepo)
	returnService := service.NewReturnService(txManager, stockService)
	grnService := service.NewGRNService(txManager, stockService, supplierRepo)
	sessionService := service.NewSessionService(txManager)
	productService := service.NewProductService(txManager, productRepo, categoryRepo)
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo, permissionRepo)
	customerService := service.NewCustomerService(customerRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	activityService := service.NewActivityService(activityRepo)

	// Handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService, userService, activityService),
		Product:  handler.NewProductHandler(productService),
		Sale:     handler.NewSaleHandler(salesService, activityService),
		Return:   handler.NewReturnHandler(returnService, activityService),
		GRN:      handler.NewGRNHandler(grnService, activityService),
		Stock:    handler.NewStockHandler(stockService, activityService),
		Session:  handler.NewSessionHandler(sessionService, activityService),
		Customer: handler.NewCustomerHandler(customerService),
		Supplier: handler.NewSupplierHandler(supplierService),
		User:     handler.NewUserHandler(userService, activityService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	addr := ":" + cfg.App.Port
	log.Printf("%s listening on %s", cfg.App.Name, addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
