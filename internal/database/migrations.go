package database

import (
	"wisma/internal/logger"
	"wisma/internal/models"
)

// MigrateModels runs GORM AutoMigrate for all models.
func (db *DB) MigrateModels() error {
	log := logger.New("database").Function("MigrateModels")
	log.Info("Starting database migration")

	modelsToMigrate := []interface{}{
		&models.User{},
		&models.House{},
		&models.Resident{},
		&models.OccupantHistory{},
		&models.HousePayment{},
		&models.DueType{},
		&models.DuePayment{},
		&models.SpendingType{},
		&models.Spending{},
		&models.AuditLog{},
	}

	for _, model := range modelsToMigrate {
		if err := db.SQL.AutoMigrate(model); err != nil {
			return log.Err("failed to migrate model", err, "model", model)
		}
	}

	log.Info("Database migration completed successfully")
	return nil
}

// CreateIndexes creates indexes GORM does not create automatically. The
// partial unique index backstops the one-open-occupancy-per-house invariant
// against concurrent writers.
func (db *DB) CreateIndexes() error {
	log := logger.New("database").Function("CreateIndexes")
	log.Info("Creating additional database indexes")

	indexes := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_occupant_histories_open_house ON occupant_histories(house_id) WHERE end_date IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_house_payments_payment_date ON house_payments(payment_date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_due_payments_date ON due_payments(date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_spendings_date ON spendings(date DESC)",
	}

	for _, indexSQL := range indexes {
		if err := db.SQL.Exec(indexSQL).Error; err != nil {
			log.Warn("Failed to create index", "sql", indexSQL, "error", err)
		}
	}

	log.Info("Additional database indexes created")
	return nil
}
