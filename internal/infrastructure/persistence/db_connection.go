package persistence

import (
	"fmt"
	"log"
	"strings"

	"github.com/hillcrest-schools/school-portal/internal/infrastructure/persistence/models"
	"github.com/hillcrest-schools/school-portal/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDBConnection opens the configured database and applies the pool limits
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch settings.Type {
	case config.PostgresDbType:
		db, err = openPostgres(settings)
	case config.SqliteDbType:
		db, err = openSQLite(settings)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
	if err != nil {
		return nil, err
	}

	if err := configurePool(db, settings); err != nil {
		_ = CloseDB(db)
		return nil, err
	}
	return db, nil
}

func open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

// openPostgres connects with the base DSN and, when Name is set, creates that
// database if needed and reconnects to it.
func openPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	db, err := open(postgres.Open(settings.DSN))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if settings.Name == "" {
		return db, nil
	}

	var exists bool
	if err := db.Raw("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = ?)", settings.Name).Scan(&exists).Error; err != nil {
		_ = CloseDB(db)
		return nil, fmt.Errorf("failed to look up database '%s': %w", settings.Name, err)
	}
	if !exists {
		if err := db.Exec(fmt.Sprintf("CREATE DATABASE %s", settings.Name)).Error; err != nil {
			_ = CloseDB(db)
			return nil, fmt.Errorf("failed to create database '%s': %w", settings.Name, err)
		}
	}
	if err := CloseDB(db); err != nil {
		return nil, err
	}

	db, err = open(postgres.Open(fmt.Sprintf("%s dbname=%s", settings.DSN, settings.Name)))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.Name, err)
	}
	return db, nil
}

func openSQLite(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := open(sqlite.Open(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}
	return db, nil
}

func configurePool(db *gorm.DB, settings config.DatabaseSettings) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// every pooled connection to :memory: would otherwise see its own empty database
	if settings.Type == config.SqliteDbType && (settings.DSN == "" || strings.Contains(settings.DSN, ":memory:")) {
		sqlDB.SetMaxOpenConns(1)
		return nil
	}

	if settings.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(settings.MaxOpenConns)
	}
	if settings.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(settings.MaxIdleConns)
	}
	if settings.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(settings.ConnMaxLifetime)
	}
	return nil
}

// Migrate creates or updates every portal table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CloseDB closes the underlying connection pool
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase removes a PostgreSQL database created for a test run
func DropDatabase(adminDSN, dbName string) error {
	db, err := open(postgres.Open(adminDSN))
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		if err := CloseDB(db); err != nil {
			log.Printf("failed to close admin connection: %v", err)
		}
	}()

	if err := db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)).Error; err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}
	return nil
}
