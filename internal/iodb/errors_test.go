package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/datablock/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	orig := errors.New("boom")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		vars int
	}{
		{"connection", ConnectionError("localhost", 5432, "db", "user", orig),
			errcode.DBConnectionError, 8},
		{"sqlite open", SQLiteOpenError("/tmp/x.sqlite", orig), errcode.DBConnectionError, 1},
		{"table check", TableCheckError(orig), errcode.DBTableCheckError, 0},
		{"table exists", TableExistsCheckError("companies", orig),
			errcode.DBTableExistsCheckError, 1},
		{"query tables", QueryTablesError(orig), errcode.DBQueryTablesError, 0},
		{"scan table", ScanTableError(orig), errcode.DBScanTableError, 0},
		{"drop table", DropTableError("companies", orig), errcode.DBDropTableError, 1},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, tt.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
			assert.Len(t, gnErr.Vars, tt.vars)
			assert.ErrorIs(t, gnErr.Err, orig)
		})
	}
}

func TestErrorsWithoutCause(t *testing.T) {
	assert := assert.New(t)

	gnErr := NotConnectedError().(*gn.Error)
	assert.Equal(errcode.DBNotConnectedError, gnErr.Code)

	gnErr = UnknownDriverError("mysql").(*gn.Error)
	assert.Equal(errcode.DBUnknownDriverError, gnErr.Code)
	assert.Equal([]any{"mysql"}, gnErr.Vars)

	gnErr = EmptyDatabaseError("datablock").(*gn.Error)
	assert.Equal(errcode.DBEmptyDatabaseError, gnErr.Code)
}
