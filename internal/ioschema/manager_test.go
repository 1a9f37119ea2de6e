package ioschema_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/datablock/internal/iodb"
	"github.com/gnames/datablock/internal/ioschema"
	"github.com/gnames/datablock/internal/iotesting"
	"github.com/gnames/datablock/pkg/config"
	"github.com/gnames/datablock/pkg/errcode"
	"github.com/gnames/datablock/pkg/schema"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	cfg := iotesting.SetupTempHome(t)
	cfg.Update([]config.Option{
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabasePath(filepath.Join(t.TempDir(), "schema.sqlite")),
	})
	op := iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(ctx, cfg))
	defer op.Close()

	sm := ioschema.NewManager(op)
	require.NoError(t, sm.Create(ctx, cfg, false))

	for _, tbl := range schema.TableNames() {
		exists, err := op.TableExists(ctx, tbl)
		require.NoError(t, err)
		assert.True(exists, tbl)
	}

	require.NoError(t, op.GORM().Create(&schema.Company{DUNS: iotesting.AcmeDUNS}).Error)

	err := sm.Create(ctx, cfg, false)
	require.Error(t, err)
	assert.Equal(errcode.SchemaTablesExistError, err.(*gn.Error).Code)

	require.NoError(t, sm.Create(ctx, cfg, true))
	var count int64
	require.NoError(t, op.GORM().Model(&schema.Company{}).Count(&count).Error)
	assert.Zero(count)

	require.NoError(t, sm.Migrate(ctx, cfg))
	require.NoError(t, sm.Migrate(ctx, cfg))
}

func TestNotConnected(t *testing.T) {
	ctx := context.Background()
	sm := ioschema.NewManager(iodb.NewSQLiteOperator())
	cfg := config.New()

	err := sm.Create(ctx, cfg, false)
	require.Error(t, err)
	assert.Equal(t, errcode.DBNotConnectedError, err.(*gn.Error).Code)
	assert.Error(t, sm.Migrate(ctx, cfg))
}
