package iodb

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/gnames/datablock/pkg/config"
	"github.com/gnames/datablock/pkg/db"
	"gorm.io/gorm"
)

// sqlitePragmas are applied to every connection.
var sqlitePragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
}

// sqliteOperator implements db.Operator for a SQLite file.
type sqliteOperator struct {
	path  string
	sqlDB *sql.DB
	gorm  *gorm.DB
}

// NewSQLiteOperator creates a new SQLite operator (without connecting).
func NewSQLiteOperator() db.Operator {
	return &sqliteOperator{}
}

// sqliteDSN adds pragmas to the path. ":memory:" opens a private
// in-memory database.
func sqliteDSN(path string) string {
	params := make([]string, 0, len(sqlitePragmas))
	for _, p := range sqlitePragmas {
		params = append(params, "_pragma="+p)
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(params, "&")
}

// Connect opens the SQLite database file from the configuration.
func (s *sqliteOperator) Connect(
	ctx context.Context,
	c *config.Config,
) error {
	path := config.SQLitePath(c)
	gormDB, err := gorm.Open(sqlite.Open(sqliteDSN(path)), gormConfig())
	if err != nil {
		return SQLiteOpenError(path, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return SQLiteOpenError(path, err)
	}
	// SQLite has a single writer; one connection also keeps an
	// in-memory database alive and shared.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return SQLiteOpenError(path, err)
	}

	s.path = path
	s.sqlDB = sqlDB
	s.gorm = gormDB
	return nil
}

// Close closes the database file.
func (s *sqliteOperator) Close() error {
	if s.sqlDB != nil {
		return s.sqlDB.Close()
	}
	return nil
}

func (s *sqliteOperator) Driver() string {
	return db.DriverSQLite
}

// GORM returns the GORM session.
func (s *sqliteOperator) GORM() *gorm.DB {
	return s.gorm
}

// TableExists checks if a table exists in the database.
func (s *sqliteOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if s.gorm == nil {
		return false, NotConnectedError()
	}

	var count int64
	err := s.gorm.WithContext(ctx).
		Raw("SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
			tableName).
		Scan(&count).Error
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}
	return count > 0, nil
}

// HasTables checks if the database has any user tables.
func (s *sqliteOperator) HasTables(ctx context.Context) (bool, error) {
	if s.gorm == nil {
		return false, NotConnectedError()
	}

	tables, err := s.tables(ctx)
	if err != nil {
		return false, TableCheckError(err)
	}
	return len(tables) > 0, nil
}

// DropAllTables drops all user tables.
func (s *sqliteOperator) DropAllTables(ctx context.Context) (err error) {
	if s.gorm == nil {
		return NotConnectedError()
	}

	tables, err := s.tables(ctx)
	if err != nil {
		return QueryTablesError(err)
	}

	tx := s.gorm.WithContext(ctx)
	if err := tx.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
		return DropTableError("", err)
	}
	// the connection is reused, so the pragma is restored even when
	// the context is done
	defer func() {
		fkErr := s.gorm.Exec("PRAGMA foreign_keys = ON").Error
		if fkErr == nil {
			return
		}
		slog.Error("Cannot enable foreign keys", "path", s.path, "error", fkErr)
		if err == nil {
			err = DropTableError("", fkErr)
		}
	}()

	for _, t := range tables {
		if err := tx.Migrator().DropTable(t); err != nil {
			return DropTableError(t, err)
		}
	}
	return nil
}

func (s *sqliteOperator) tables(ctx context.Context) ([]string, error) {
	var res []string
	err := s.gorm.WithContext(ctx).
		Raw("SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'").
		Scan(&res).Error
	return res, err
}
