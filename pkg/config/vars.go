package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "datablock"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/datablock by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/datablock by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// DataDir returns the directory for application data, such as the
// default SQLite database.
// Returns ~/.local/share/datablock by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/datablock/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/datablock/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// ManifestFilePath returns the path of the example manifest file.
// Returns ~/.config/datablock/manifest.yaml by default.
func ManifestFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "manifest.yaml")
}

// SQLitePath returns the SQLite database file for the configuration.
// An explicit Database.Path wins, otherwise the file is placed in DataDir.
func SQLitePath(cfg *Config) string {
	if cfg.Database.Path != "" {
		return cfg.Database.Path
	}
	return filepath.Join(DataDir(cfg.HomeDir), AppName+".sqlite")
}
