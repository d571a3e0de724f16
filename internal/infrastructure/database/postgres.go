package database

import (
	"fmt"
	"log"

	"github.com/nexuspos/pos-api/internal/config"
	"github.com/nexuspos/pos-api/internal/domain/entity"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User-related entities
		&entity.User{},
		&entity.Permission{},
		&entity.ActivityLog{},

		// Catalog entities
		&entity.Category{},
		&entity.Product{},
		&entity.Inventory{},

		// Parties
		&entity.Customer{},
		&entity.Supplier{},

		// Drawer sessions
		&entity.DrawerSession{},
		&entity.DrawerCashFlow{},

		// Sales
		&entity.Sale{},
		&entity.SalesItem{},
		&entity.Payment{},
		&entity.SalesReturn{},
		&entity.SalesReturnItem{},

		// Purchasing
		&entity.GRN{},
		&entity.GRNItem{},
		&entity.PurchaseReturn{},
		&entity.PurchaseReturnItem{},

		// Stock corrections
		&entity.StockAdjustment{},
		&entity.AdjustmentItem{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// DefaultPermissions is the full capability catalogue, grouped by module.
func DefaultPermissions() []entity.Permission {
	return []entity.Permission{
		{Slug: "sales.create", Name: "Create sales", ModuleGroup: "sales"},
		{Slug: "sales.view", Name: "View sales", ModuleGroup: "sales"},
		{Slug: "returns.create", Name: "Process sales returns", ModuleGroup: "sales"},
		{Slug: "grn.create", Name: "Receive goods", ModuleGroup: "purchasing"},
		{Slug: "grn.return", Name: "Return goods to supplier", ModuleGroup: "purchasing"},
		{Slug: "stock.adjust", Name: "Adjust stock", ModuleGroup: "inventory"},
		{Slug: "stock.view", Name: "View stock levels", ModuleGroup: "inventory"},
		{Slug: "products.manage", Name: "Manage products", ModuleGroup: "catalog"},
		{Slug: "sessions.manage", Name: "Open and close drawer sessions", ModuleGroup: "sessions"},
		{Slug: "customers.manage", Name: "Manage customers", ModuleGroup: "parties"},
		{Slug: "suppliers.manage", Name: "Manage suppliers", ModuleGroup: "parties"},
		{Slug: "users.manage", Name: "Manage users and permissions", ModuleGroup: "admin"},
		{Slug: "reports.view", Name: "View reports", ModuleGroup: "reports"},
		{Slug: "activity.view", Name: "View activity log", ModuleGroup: "admin"},
	}
}

// CashierPermissionSlugs is the capability set granted to newly created
// cashier users.
var CashierPermissionSlugs = []string{
	"sales.create",
	"sales.view",
	"returns.create",
	"stock.view",
	"sessions.manage",
	"customers.manage",
}

// SeedDefaultData seeds the database with default data (permissions, admin user)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Create default permissions
	permissions := DefaultPermissions()
	for i := range permissions {
		var existing entity.Permission
		if err := db.Where("slug = ?", permissions[i].Slug).First(&existing).Error; err != nil {
			if err := db.Create(&permissions[i]).Error; err != nil {
				log.Printf("Warning: failed to create permission %s: %v", permissions[i].Slug, err)
			}
		}
	}

	// Reload permissions with IDs
	var allPermissions []entity.Permission
	db.Find(&allPermissions)

	// Create admin user if configured via environment variables
	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")

	if adminUsername != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("username = ?", adminUsername).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				fullName := viper.GetString("ADMIN_NAME")
				if fullName == "" {
					fullName = "Administrator"
				}
				adminUser := entity.User{
					Username:     adminUsername,
					PasswordHash: string(hashedPassword),
					FullName:     &fullName,
					Role:         enum.UserRoleAdmin,
					IsActive:     true,
					Permissions:  allPermissions,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminUsername)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminUsername)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
