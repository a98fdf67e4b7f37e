// Package database opens the relational store and migrates the portal schema.
package database

import (
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"nouasseur-portal/config"
	"nouasseur-portal/database/model"
	"nouasseur-portal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	// Connection establishment at boot retries a fixed number of times
	// before the process aborts. No other store call is retried.
	maxConnectRetries = 5
	connectRetryDelay = 2 * time.Second
)

// Open connects to the configured store and runs schema migration.
func Open(dbConfig *config.DatabaseConfig) (*gorm.DB, error) {
	if err := dbConfig.ValidateConfig(); err != nil {
		return nil, err
	}

	var gormLogger gormlogger.Interface
	if config.IsDebug() {
		gormLogger = gormlogger.Default
	} else {
		gormLogger = gormlogger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	var db *gorm.DB
	var err error
	if dbConfig.IsPostgreSQL() {
		db, err = gorm.Open(postgres.Open(dbConfig.GetDSN()), c)
	} else {
		dbPath := dbConfig.GetDSN()
		if mkErr := os.MkdirAll(path.Dir(dbPath), 0o755); mkErr != nil {
			return nil, mkErr
		}
		dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
		db, err = gorm.Open(sqlite.Open(dsn), c)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenWithRetry calls Open until it succeeds or the retry budget runs out.
func OpenWithRetry(dbConfig *config.DatabaseConfig) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= maxConnectRetries; attempt++ {
		logger.Infof("connecting to database (attempt %d/%d)", attempt, maxConnectRetries)
		db, err := Open(dbConfig)
		if err == nil {
			logger.Info("database connection established")
			return db, nil
		}
		lastErr = err
		logger.Warningf("database connection failed (attempt %d/%d): %v", attempt, maxConnectRetries, err)
		if attempt < maxConnectRetries {
			time.Sleep(connectRetryDelay)
		}
	}
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", maxConnectRetries, lastErr)
}

// Migrate creates or updates the portal tables.
func Migrate(db *gorm.DB) error {
	models := []any{
		&model.User{},
		&model.Member{},
		&model.Event{},
		&model.DirectoryEntry{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying sql.DB of a gorm handle.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IsNotFound reports whether err is gorm's record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
