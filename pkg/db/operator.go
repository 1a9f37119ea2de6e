package db

import (
	"context"

	"github.com/gnames/datablock/pkg/config"
	"gorm.io/gorm"
)

// Driver names accepted in the database configuration.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Operator defines the interface for basic database management operations.
// It provides connection lifecycle management and exposes a GORM session
// for high-level components (SchemaManager, Loader, Query) to run their
// own operations.
//
// Implementations exist for PostgreSQL (pgxpool) and SQLite.
type Operator interface {
	// Connect opens a connection to the database described by cfg.
	Connect(context.Context, *config.Config) error

	// Close closes the database connection.
	Close() error

	// Driver returns the name of the database engine.
	Driver() string

	// GORM returns the session used by the components. It is nil
	// before Connect.
	GORM() *gorm.DB

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables.
	// Used during schema initialization when overwriting existing data.
	DropAllTables(ctx context.Context) error
}
