// Package lifecycle defines the stages of a datablock database life:
// schema creation and migration, loading documents and querying them.
// Implementations live in internal io packages.
package lifecycle

import (
	"context"

	"github.com/gnames/datablock/pkg/config"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and migrations.
// Schema management is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates the database schema. Existing tables are dropped
	// first when force is true, otherwise their presence is an error.
	Create(ctx context.Context, cfg *config.Config, force bool) error

	// Migrate updates the database schema to the latest version using GORM AutoMigrate.
	// Data in existing tables is kept.
	Migrate(ctx context.Context, cfg *config.Config) error
}
