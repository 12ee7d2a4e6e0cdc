package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"blog-api/app/config"
	"blog-api/app/domain"
	"blog-api/app/utils/logger"
)

// Connection pool configuration constants
const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = time.Hour
	connMaxIdleTime = 30 * time.Minute
)

// DB represents a database connection managed through GORM
type DB struct {
	gorm   *gorm.DB
	logger *slog.Logger
}

// NewConnection opens a database connection based on the configured
// DATABASE_URL. SQLite is the default; PostgreSQL is selected by a
// postgres:// URL.
func NewConnection(cfg *config.Config, log *slog.Logger) (*DB, error) {
	dbLogger := logger.DatabaseLogger(log)

	var dialector gorm.Dialector
	if cfg.IsPostgres() {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(sqliteDSN(cfg.SQLitePath()))
	}

	gormLogLevel := gormlogger.Silent
	if cfg.LogLevel == "debug" {
		gormLogLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// Map driver errors (duplicate key, FK violation) to GORM sentinels
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	// Configure connection pool settings. SQLite gets a single writer
	// connection to avoid "database is locked" errors under load.
	if cfg.IsPostgres() {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxIdleConns)
		sqlDB.SetConnMaxLifetime(connMaxLifetime)
		sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
	} else {
		sqlDB.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Test connection
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	dbLogger.Info("database connection established",
		"dialect", dialector.Name(),
		"database", databaseLabel(cfg))

	return &DB{
		gorm:   db,
		logger: dbLogger,
	}, nil
}

// AutoMigrate creates or updates the schema for all domain models
func (db *DB) AutoMigrate() error {
	db.logger.Info("running auto migration")

	if err := db.gorm.AutoMigrate(&domain.Author{}, &domain.Post{}); err != nil {
		return fmt.Errorf("failed to run auto migration: %w", err)
	}

	db.logger.Info("auto migration completed")
	return nil
}

// Close closes the database connection
func (db *DB) Close() {
	sqlDB, err := db.gorm.DB()
	if err != nil {
		db.logger.Error("failed to get database handle on close", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		db.logger.Error("failed to close database", "error", err)
		return
	}

	db.logger.Info("database connection closed")
}

// GORM returns the underlying GORM handle
func (db *DB) GORM() *gorm.DB {
	return db.gorm
}

// HealthCheck checks if the database is healthy
func (db *DB) HealthCheck(ctx context.Context) error {
	if db.gorm == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	sqlDB, err := db.gorm.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

// sqliteDSN builds the SQLite connection string. Foreign key
// enforcement is off by default in SQLite and must be enabled per
// connection, so it goes into the DSN rather than a one-shot PRAGMA.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// databaseLabel returns a loggable database identifier without credentials
func databaseLabel(cfg *config.Config) string {
	if cfg.IsPostgres() {
		if idx := strings.LastIndex(cfg.DatabaseURL, "/"); idx >= 0 {
			return cfg.DatabaseURL[idx+1:]
		}
		return "postgres"
	}
	return cfg.SQLitePath()
}
