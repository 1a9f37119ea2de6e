package ioschema

import (
	"fmt"

	"github.com/gnames/datablock/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TablesExistError creates an error for an attempt to create the
// schema over existing tables.
func TablesExistError() error {
	msg := `Database already contains tables

<em>How to fix:</em>
  1. Run <em>datablock migrate</em> to update the schema and keep data
  2. Run <em>datablock create --force</em> to drop ALL tables and data`

	return &gn.Error{
		Code: errcode.SchemaTablesExistError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("database has tables"),
	}
}

// CreateSchemaError creates an error for schema
// creation failures.
func CreateSchemaError(err error) error {
	msg := `Cannot create database schema

<em>Possible causes:</em>
  - Insufficient database permissions
  - Invalid schema definitions
  - Database constraint violations

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Review schema model definitions
  3. Check database logs for details`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}

// MigrateSchemaError creates an error for schema
// migration failures.
func MigrateSchemaError(err error) error {
	msg := `Cannot migrate database schema

<em>Possible causes:</em>
  - Incompatible schema changes
  - Insufficient database permissions
  - Data integrity issues

<em>How to fix:</em>
  1. Review migration compatibility
  2. Check database user permissions
  3. Backup data before migration`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}

// IndexError creates an error for a failed lookup index.
func IndexError(name string, err error) error {
	msg := `Cannot create index <em>%s</em>

<em>Possible causes:</em>
  - Table does not exist
  - Insufficient database permissions

<em>How to fix:</em>
  1. Ensure schema was created successfully
  2. Check database user has CREATE permissions`

	return &gn.Error{
		Code: errcode.SchemaIndexError,
		Msg:  msg,
		Vars: []any{name},
		Err:  fmt.Errorf("failed to create index %s: %w", name, err),
	}
}
