package iologger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/datablock/pkg/config"
	"github.com/gnames/datablock/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in  string
		out slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, parseLevel(tt.in), tt.in)
	}
}

func TestHandler(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	l := slog.New(handler(&buf, config.LogConfig{Format: "json", Level: "warn"}))
	l.Info("hidden")
	l.Warn("shown", "duns", "540924028")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal("shown", rec["msg"])
	assert.Equal("540924028", rec["duns"])

	buf.Reset()
	l = slog.New(handler(&buf, config.LogConfig{Format: "text"}))
	l.Info("plain")
	assert.Contains(buf.String(), "msg=plain")
}

func TestInitFile(t *testing.T) {
	dir := t.TempDir()
	defer slog.SetDefault(slog.Default())

	path := filepath.Join(dir, LogFile)
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0644))

	err := Init(dir, config.LogConfig{Format: "json", Destination: "file"})
	require.NoError(t, err)
	slog.Info("fresh")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "old")
	assert.Contains(t, string(content), "fresh")
}

func TestInitError(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "missing"),
		config.LogConfig{Destination: "file"})
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
	assert.Len(t, gnErr.Vars, 1)
}
