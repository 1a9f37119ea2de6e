package cmd

import (
	"path/filepath"
	"testing"

	"github.com/gnames/datablock/internal/iotesting"
	"github.com/gnames/datablock/pkg/config"
	"github.com/gnames/datablock/pkg/errcode"
	"github.com/gnames/datablock/pkg/sources"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoadCmd(t *testing.T) {
	assert := assert.New(t)
	cmd := getLoadCmd()

	assert.Equal("load", cmd.Name())
	assert.Contains(cmd.Long, "s3://")
	for _, f := range []string{
		"manifest", "category", "skip-unchanged", "metrics-file", "jobs", "quiet",
	} {
		assert.NotNil(cmd.Flags().Lookup(f), f)
	}
}

func TestLoadOptions(t *testing.T) {
	assert := assert.New(t)

	cmd := getLoadCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"--category", "Financials",
		"--skip-unchanged",
		"--metrics-file", "/tmp/load.prom",
		"-j", "3",
	}))
	f := loadFlags{
		category:      "Financials",
		skipUnchanged: true,
		metricsFile:   "/tmp/load.prom",
		jobs:          3,
	}

	c := config.New()
	c.Update(loadOptions(cmd, f))
	assert.Equal("financials", c.Load.Category)
	assert.True(c.Load.SkipUnchanged)
	assert.Equal("/tmp/load.prom", c.Load.MetricsFile)
	assert.Equal(3, c.JobsNumber)
	assert.True(c.WithProgress)

	// flags that were not set keep the configuration
	cmd = getLoadCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-q"}))
	c = config.New()
	c.Update([]config.Option{config.OptLoadCategory("companyinfo")})
	c.Update(loadOptions(cmd, loadFlags{quiet: true}))
	assert.Equal("companyinfo", c.Load.Category)
	assert.False(c.WithProgress)
}

func TestLoadInputs(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	manifest := iotesting.WriteFile(t, dir, "manifest.yaml", `documents:
  - path: events/
    category: eventsfilings
  - path: old/
    skip: true
`)

	res, err := loadInputs([]string{"a.json"}, manifest)
	require.NoError(t, err)
	assert.Equal([]sources.Input{
		{Name: "a.json"},
		{Name: "events/", Category: "eventsfilings"},
	}, res)

	_, err = loadInputs(nil, "")
	require.Error(t, err)
	assert.Equal(errcode.SourceNoInputError, err.(*gn.Error).Code)

	_, err = loadInputs(nil, filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Equal(errcode.SourceManifestError, err.(*gn.Error).Code)
}
