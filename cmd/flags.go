package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/gnames/datablock/internal/iodb"
	"github.com/gnames/datablock/pkg/config"
	"github.com/gnames/datablock/pkg/db"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

// connect opens the database selected by the configuration.
func connect(ctx context.Context) (db.Operator, error) {
	op, err := iodb.New(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}
	if err = op.Connect(ctx, cfg); err != nil {
		return nil, err
	}

	switch op.Driver() {
	case db.DriverSQLite:
		gn.Info("Connected to SQLite: <em>%s</em>", config.SQLitePath(cfg))
	default:
		gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
			cfg.Database.User, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Database)
	}
	return op, nil
}

// connectWithSchema connects and makes sure the schema exists.
func connectWithSchema(ctx context.Context) (db.Operator, error) {
	op, err := connect(ctx)
	if err != nil {
		return nil, err
	}

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		op.Close()
		return nil, err
	}
	if !hasTables {
		op.Close()
		return nil, iodb.EmptyDatabaseError(databaseName())
	}
	return op, nil
}

func databaseName() string {
	if cfg.Database.Driver == db.DriverSQLite {
		return config.SQLitePath(cfg)
	}
	return cfg.Database.Database
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := gnfmt.GNjson{Pretty: true}
	res, err := enc.Encode(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(res))
	return err
}
