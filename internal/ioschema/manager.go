// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/datablock/pkg/config"
	"github.com/gnames/datablock/pkg/db"
	"github.com/gnames/datablock/pkg/lifecycle"
	"github.com/gnames/datablock/pkg/schema"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates the database schema and lookup indexes. With force
// it drops all existing tables first.
func (m *manager) Create(
	ctx context.Context,
	_ *config.Config,
	force bool,
) error {
	gormDB := m.operator.GORM()
	if gormDB == nil {
		return NotConnectedError()
	}

	hasTables, err := m.operator.HasTables(ctx)
	if err != nil {
		return err
	}
	if hasTables {
		if !force {
			return TablesExistError()
		}
		slog.Info("Dropping existing tables", "driver", m.operator.Driver())
		if err = m.operator.DropAllTables(ctx); err != nil {
			return err
		}
	}

	if err = schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	return m.createIndexes(ctx)
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(
	ctx context.Context,
	_ *config.Config,
) error {
	gormDB := m.operator.GORM()
	if gormDB == nil {
		return NotConnectedError()
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(err)
	}

	return m.createIndexes(ctx)
}

// createIndexes adds expression indexes GORM tags cannot describe.
// Both PostgreSQL and SQLite support them with the same syntax.
func (m *manager) createIndexes(ctx context.Context) error {
	gormDB := m.operator.GORM().WithContext(ctx)

	for _, idx := range lookupIndexes {
		q := formatIndexSQL(idx)
		if err := gormDB.Exec(q).Error; err != nil {
			return IndexError(idx.name, err)
		}
	}
	return nil
}
