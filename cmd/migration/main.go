package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"wisma/cmd/migration/seed"
	"wisma/config"
	"wisma/internal/database"
	"wisma/internal/logger"
	. "wisma/internal/models"

	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const (
	MIGRATION_PATH = "cmd/migration/migrations"
	MIGRATION_DB   = "postgres"
)

var MODELS_TO_MIGRATE = []any{
	&User{},
	&House{},
	&Resident{},
	&OccupantHistory{},
	&HousePayment{},
	&DueType{},
	&DuePayment{},
	&SpendingType{},
	&Spending{},
	&AuditLog{},
}

func main() {
	log := logger.New("migrations").Function("main")

	config, err := config.New()
	if err != nil {
		log.Er("failed to initialize config", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "migration",
		Short: "Database migration tool",
	}

	rootCmd.AddCommand(
		upCmd(config, log),
		downCmd(config, log),
		seedCmd(config, log),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Er("failed to run migrations", err)
		os.Exit(1)
	}
}

func upCmd(config config.Config, log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply SQL migrations and GORM auto-migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.New(config)
			if err != nil {
				return log.Err("failed to create database", err)
			}
			defer func() { _ = db.Close() }()

			return migrateUp(&db, config, log)
		},
	}
}

func downCmd(config config.Config, log logger.Logger) *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back SQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrateDown(steps, config, log)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	return cmd
}

func seedCmd(config config.Config, log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Rebuild the schema and load development data",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.New(config)
			if err != nil {
				return log.Err("failed to create database", err)
			}
			defer func() { _ = db.Close() }()

			return migrateSeed(&db, config, log)
		},
	}
}

func migrateUp(db *database.DB, config config.Config, log logger.Logger) error {
	log = log.Function("migrateUp")
	log.Info("Running migrations up")

	if err := runMigrations(config, log, migrate.Up); err != nil {
		return log.Err("failed to run migrations", err)
	}

	if err := db.MigrateModels(); err != nil {
		return log.Err("failed to auto migrate", err)
	}

	if err := db.CreateIndexes(); err != nil {
		return log.Err("failed to create indexes", err)
	}

	return nil
}

func migrateDown(steps int, config config.Config, log logger.Logger) error {
	log = log.Function("migrateDown")
	log.Info("Running migrations down")

	for range steps {
		if err := runMigrations(config, log, migrate.Down); err != nil {
			return log.Err("failed to run migrations", err)
		}
	}

	return nil
}

func migrateSeed(db *database.DB, config config.Config, log logger.Logger) error {
	log = log.Function("migrateSeed")
	log.Info("Running seed")

	if err := cleanDatabase(db.SQL, log); err != nil {
		return log.Err("failed to clean database", err)
	}

	if err := migrateUp(db, config, log); err != nil {
		return log.Err("failed to migrate", err)
	}

	log.Info("Seeding database")
	if err := seed.Seed(db.SQL, config, log); err != nil {
		return log.Err("failed to seed database", err)
	}

	return nil
}

func runMigrations(
	config config.Config,
	log logger.Logger,
	direction migrate.MigrationDirection,
) error {
	log = log.Function("runMigrations")

	if _, err := os.Stat(MIGRATION_PATH); os.IsNotExist(err) {
		log.Info("Migrations directory does not exist, skipping file-based migrations")
		return nil
	}

	files, err := filepath.Glob(filepath.Join(MIGRATION_PATH, "*.sql"))
	if err != nil {
		return log.Err("failed to check for migration files", err)
	}
	if len(files) == 0 {
		log.Info("No migration files found, skipping file-based migrations")
		return nil
	}

	migrations := &migrate.FileMigrationSource{
		Dir: MIGRATION_PATH,
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseName,
	)

	db, err := sql.Open(MIGRATION_DB, dsn)
	if err != nil {
		return log.Err("failed to open database for migrations", err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			log.Er("failed to close database", err)
		}
	}()

	n, err := migrate.Exec(db, MIGRATION_DB, migrations, direction)
	if err != nil {
		return log.Err("failed to run migrations", err)
	}

	if n == 0 {
		log.Info("No migrations to apply")
	} else {
		log.Info("Applied migrations", "migrationCount", n)
	}

	return nil
}

func cleanDatabase(db *gorm.DB, log logger.Logger) error {
	log = log.Function("cleanDatabase")
	log.Info("Cleaning database before seeding")

	if err := db.Migrator().DropTable(MODELS_TO_MIGRATE...); err != nil {
		return log.Err("failed to drop tables", err)
	}

	log.Info("Database cleaned successfully")
	return nil
}
