package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dguedes/marmitaria-api/internal/config"
	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	"github.com/dguedes/marmitaria-api/internal/domain/enum"
	"github.com/dguedes/marmitaria-api/internal/infrastructure/repository"
)

// Open connects to the configured database. The same schema and repository
// layer run against postgres (server deployments) and embedded sqlite
// (offline desktop installs).
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var db *gorm.DB
	var err error

	switch cfg.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}), gormCfg)
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Driver == "postgres" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	} else {
		// sqlite serializes writes; a single connection avoids SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	}

	log.Printf("Connected to %s database", cfg.Driver)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Customer{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Settings{},
		&entity.IdempotencyKey{},
		&repository.OrderCounter{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// Seed creates the default admin user, the settings singleton, and the
// order number counter if they do not exist yet.
func Seed(db *gorm.DB) error {
	var admin entity.User
	if err := db.Where("role = ?", enum.RoleAdmin).First(&admin).Error; err != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash default admin password: %w", err)
		}
		password := string(hashed)
		admin = entity.User{
			Code:     "admin",
			Name:     "Administrador",
			Role:     enum.RoleAdmin,
			Password: &password,
			Active:   true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create default admin: %w", err)
		}
		log.Println("Default admin created: admin / admin123")
	}

	var settings entity.Settings
	if err := db.First(&settings, "id = ?", entity.SettingsID).Error; err != nil {
		if err := db.Create(entity.DefaultSettings()).Error; err != nil {
			return fmt.Errorf("failed to create default settings: %w", err)
		}
	}

	if err := repository.SeedOrderCounter(db); err != nil {
		return fmt.Errorf("failed to seed order counter: %w", err)
	}

	return nil
}
