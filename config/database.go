package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DatabaseType represents the type of database
type DatabaseType string

const (
	DatabaseTypeSQLite     DatabaseType = "sqlite"
	DatabaseTypePostgreSQL DatabaseType = "postgres"
)

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Type     DatabaseType
	SQLite   SQLiteConfig
	Postgres PostgresConfig
}

// SQLiteConfig holds SQLite specific configuration
type SQLiteConfig struct {
	Path string
}

// PostgresConfig holds PostgreSQL specific configuration
type PostgresConfig struct {
	URL string
}

// GetDSN returns the data source name for the database
func (c *DatabaseConfig) GetDSN() string {
	switch c.Type {
	case DatabaseTypePostgreSQL:
		return c.Postgres.URL
	default:
		return c.SQLite.Path
	}
}

// IsPostgreSQL returns true if the database type is PostgreSQL
func (c *DatabaseConfig) IsPostgreSQL() bool {
	return c.Type == DatabaseTypePostgreSQL
}

// ValidateConfig validates the database configuration
func (c *DatabaseConfig) ValidateConfig() error {
	switch c.Type {
	case DatabaseTypeSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("SQLite path cannot be empty")
		}
	case DatabaseTypePostgreSQL:
		if c.Postgres.URL == "" {
			return fmt.Errorf("PostgreSQL connection URL cannot be empty")
		}
	default:
		return fmt.Errorf("unsupported database type: %s", c.Type)
	}
	return nil
}

// GetDatabaseConfig builds the database configuration from the environment.
// DATABASE_URL selects PostgreSQL, otherwise a local SQLite file is used.
func GetDatabaseConfig() *DatabaseConfig {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return &DatabaseConfig{
			Type:     DatabaseTypePostgreSQL,
			Postgres: PostgresConfig{URL: url},
		}
	}
	return &DatabaseConfig{
		Type:   DatabaseTypeSQLite,
		SQLite: SQLiteConfig{Path: getDefaultSQLitePath()},
	}
}

// getDefaultSQLitePath returns the default SQLite database path
func getDefaultSQLitePath() string {
	if dbPath := os.Getenv("PORTAL_DB_PATH"); dbPath != "" {
		return dbPath
	}
	return filepath.Join("db", GetName()+".db")
}
