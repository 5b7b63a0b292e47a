package database

import (
	"embed"
	"errors"
	"fmt"
	"log"

	"taskboard/internal/config"
	"taskboard/internal/model"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrations embed.FS

func newMigrator(cfg *config.Config) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("database: load migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, MigrationURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("database: init migrator: %w", err)
	}
	return m, nil
}

// MigrateUp brings the schema to the latest version. Postgres runs the
// embedded SQL migrations; sqlite is built from the models.
func MigrateUp(cfg *config.Config, db *gorm.DB) error {
	if cfg.DBDriver == "sqlite" {
		return AutoMigrate(db)
	}

	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer closeMigrator(m)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("✅ Schema already up to date")
			return nil
		}
		return fmt.Errorf("database: migrate up: %w", err)
	}
	version, _, _ := m.Version()
	log.Printf("✅ Schema migrated to version %d\n", version)
	return nil
}

// MigrateDown drops the whole schema.
func MigrateDown(cfg *config.Config, db *gorm.DB) error {
	if cfg.DBDriver == "sqlite" {
		tables := []interface{}{"task_labels"}
		all := model.All()
		for i := len(all) - 1; i >= 0; i-- {
			tables = append(tables, all[i])
		}
		if err := db.Migrator().DropTable(tables...); err != nil {
			return fmt.Errorf("database: drop tables: %w", err)
		}
		return nil
	}

	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer closeMigrator(m)

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("database: migrate down: %w", err)
	}
	log.Println("✅ Schema dropped")
	return nil
}

// AutoMigrate creates or updates every table from the models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("database: auto-migrate: %w", err)
	}
	return nil
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Printf("⚠️  closing migration source: %v", srcErr)
	}
	if dbErr != nil {
		log.Printf("⚠️  closing migration connection: %v", dbErr)
	}
}
