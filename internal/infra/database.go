package infra

import (
	"fmt"

	"github.com/AndreHordd/Zlagoda/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create or update all tables. TranslateError is on so that repository code
// can match gorm.ErrForeignKeyViolated and friends instead of pgx error codes.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
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

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// RunMigrations applies the schema. Shared with the integration tests so they
// migrate exactly what production migrates.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Employee{},
		&model.Account{},
		&model.Category{},
		&model.Product{},
		&model.StoreProduct{},
		&model.CustomerCard{},
		&model.Receipt{},
		&model.Sale{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Dropping a card keeps its receipts; AutoMigrate defaults the FK to
		// NO ACTION, which would block the delete.
		`DO $$ BEGIN
		  IF EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_receipt_card') THEN
		    ALTER TABLE receipt DROP CONSTRAINT fk_receipt_card;
		  END IF;
		  ALTER TABLE receipt
		    ADD CONSTRAINT fk_receipt_card
		    FOREIGN KEY (card_number) REFERENCES customer_card(card_number)
		    ON DELETE SET NULL;
		END $$`,
		// Receipt list and period totals filter on DATE(print_date).
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_receipt_print_date_day') THEN
		    CREATE INDEX idx_receipt_print_date_day ON receipt ((DATE(print_date)));
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
