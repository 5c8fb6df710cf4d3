package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/parvezislam45/inventory/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies idempotent SQL patches that GORM
// cannot express.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Surfaces unique violations as gorm.ErrDuplicatedKey so services can
		// map them to conflicts without parsing pg error codes.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	// gen_random_uuid() needs pgcrypto on PostgreSQL < 13
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return nil, fmt.Errorf("pgcrypto: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies AutoMigrate plus schema patches. Also used by
// integration tests against a throwaway database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Brand{},
		&model.Category{},
		&model.Product{},
		&model.Shop{},
		&model.Invoice{},
		&model.OrderItem{},
		&model.StockEvent{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot fully handle.
// Each statement uses IF NOT EXISTS semantics so re-running is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// partial index for the delivered-invoice listing
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_invoices_delivered') THEN
		    CREATE INDEX idx_invoices_delivered
		        ON invoices (created_at DESC)
		        WHERE is_delivered;
		  END IF;
		END $$`,
		// the daily summary scans the ledger by day
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_stock_events_day') THEN
		    CREATE INDEX idx_stock_events_day
		        ON stock_events (created_at, product_id);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
