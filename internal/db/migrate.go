package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/electronics-store/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Models lists every table the application owns, in dependency order.
func Models() []any {
	return []any{
		&models.Manufacturer{},
		&models.Brand{},
		&models.Category{},
		&models.Model{},
		&models.Feature{},
		&models.Supplier{},
		&models.Equipment{},
		&models.Accessory{},
		&models.Inventory{},
		&models.Order{},
		&models.Customer{},
		&models.Branch{},
		&models.Employee{},
		&models.Sale{},
		&models.User{},
	}
}

// Migrate creates or updates the schema over an existing connection pool.
func Migrate(sqlDB *sql.DB, log *zap.Logger) error {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open gorm session: %w", err)
	}

	start := time.Now()
	log.Info("Starting database migration")
	if err := gdb.AutoMigrate(Models()...); err != nil {
		log.Error("Database migration failed", zap.Error(err))
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	log.Info("Database migration completed", zap.Duration("duration", time.Since(start)))
	return nil
}
