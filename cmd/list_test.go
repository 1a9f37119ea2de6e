package cmd

import (
	"testing"

	"github.com/gnames/datablock/pkg/errcode"
	"github.com/gnames/datablock/pkg/lifecycle"
	"github.com/gnames/datablock/pkg/schema"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetListCmd(t *testing.T) {
	cmd := getListCmd()
	assert.Equal(t, "list", cmd.Use)

	limit := cmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "50", limit.DefValue)
}

func TestGetShowCmd(t *testing.T) {
	cmd := getShowCmd()
	assert.Equal(t, "show", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("counts"))
	assert.Error(t, cmd.Args(cmd, nil))
	assert.NoError(t, cmd.Args(cmd, []string{"540924028"}))
}

func TestListFilter(t *testing.T) {
	assert := assert.New(t)

	f, err := listFilter(listFlags{
		country: "us", name: "acme", group: "financials", limit: 10, offset: 20,
	})
	require.NoError(t, err)
	assert.Equal(lifecycle.Filter{
		Country: "us",
		Name:    "acme",
		Group:   schema.GroupFinancials,
		Limit:   10,
		Offset:  20,
	}, f)

	_, err = listFilter(listFlags{group: "taxa"})
	require.Error(t, err)
	assert.Equal(errcode.QueryUnknownGroupError, err.(*gn.Error).Code)
}
