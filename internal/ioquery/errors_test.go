package ioquery

import (
	"errors"
	"testing"

	"github.com/gnames/datablock/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	assert := assert.New(t)

	gnErr, ok := NotFoundError("540924028").(*gn.Error)
	require.True(t, ok)
	assert.Equal(errcode.QueryNotFoundError, gnErr.Code)
	assert.Len(gnErr.Vars, 1)
	assert.ErrorIs(gnErr.Err, errNotFound)

	orig := errors.New("boom")
	gnErr, ok = QueryError("companies", orig).(*gn.Error)
	require.True(t, ok)
	assert.Equal(errcode.QueryError, gnErr.Code)
	assert.Len(gnErr.Vars, 1)
	assert.ErrorIs(gnErr.Err, orig)
	assert.False(IsNotFound(gnErr))

	_, err := ParseGroup("nope")
	gnErr, ok = err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(errcode.QueryUnknownGroupError, gnErr.Code)
	assert.Len(gnErr.Vars, 2)

	g, err := ParseGroup("financials")
	require.NoError(t, err)
	assert.Equal("financials", string(g))
}
