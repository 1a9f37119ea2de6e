package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/datablock/pkg/config"
	"github.com/gnames/datablock/pkg/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestEnsureDirs verifies all required directories are created and
// repeated calls succeed.
func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for range 2 {
		require.NoError(t, EnsureDirs(tmpDir))
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "datablock"),
		filepath.Join(tmpDir, ".cache", "datablock"),
		filepath.Join(tmpDir, ".local", "share", "datablock"),
		filepath.Join(tmpDir, ".local", "share", "datablock", "logs"),
	}
	for _, d := range dirs {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), d)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	}
}

func TestTouchDirError(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	err := touchDir(filepath.Join(file, "sub"))
	assert.Error(t, err)
}

// TestEnsureFiles verifies default files are written once and are never
// overwritten.
func TestEnsureFiles(t *testing.T) {
	tests := []struct {
		msg     string
		ensure  func(string) error
		path    func(string) string
		content string
	}{
		{"config", EnsureConfigFile, config.ConfigFilePath, ConfigYAML},
		{"manifest", EnsureManifestFile, config.ManifestFilePath, ManifestYAML},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, EnsureDirs(tmpDir))
			require.NoError(t, tt.ensure(tmpDir))

			path := tt.path(tmpDir)
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(content))

			custom := "# custom\n"
			require.NoError(t, os.WriteFile(path, []byte(custom), 0644))
			require.NoError(t, tt.ensure(tmpDir))
			content, err = os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, custom, string(content))
		})
	}
}

// TestConfigYAML verifies the embedded config decodes into Config.
func TestConfigYAML(t *testing.T) {
	assert := assert.New(t)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(ConfigYAML), &cfg))
	assert.Equal("postgres", cfg.Database.Driver)
	assert.Equal(5432, cfg.Database.Port)
	assert.Equal("us-east-1", cfg.S3.Region)
	assert.Equal("json", cfg.Log.Format)
	assert.False(cfg.Load.SkipUnchanged)
}

// TestManifestYAML verifies the example manifest is valid.
func TestManifestYAML(t *testing.T) {
	var m sources.Manifest
	require.NoError(t, yaml.Unmarshal([]byte(ManifestYAML), &m))
	require.NoError(t, m.Validate())
	assert.Len(t, m.Documents, 4)
	assert.Len(t, m.Inputs(), 3)
}
