// Package config provides configuration management for datablock.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: driver, path, host, port, user, password, database, ssl_mode
//   - Load: category, skip_unchanged, metrics_file
//   - S3: region, endpoint, path_style
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//   - WithProgress (set by the load command)
//
// # Environment Variables
//
// Use DATABLOCK_ prefix with underscores for nesting:
//
//	DATABLOCK_DATABASE_DRIVER=sqlite
//	DATABLOCK_DATABASE_PATH=/data/datablock.sqlite
//	DATABLOCK_DATABASE_HOST=localhost
//	DATABLOCK_LOG_LEVEL=info
//	DATABLOCK_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete datablock configuration.
type Config struct {
	// Database contains connection settings for PostgreSQL or SQLite.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Load contains settings used by the load command.
	Load LoadConfig `mapstructure:"load" yaml:"load"`

	// S3 contains settings for reading documents from S3-compatible storage.
	S3 S3Config `mapstructure:"s3" yaml:"s3"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers that read and decode
	// input documents. Writes to the database are always sequential.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string

	// WithProgress shows a progress bar during loading.
	WithProgress bool
}

// DatabaseConfig contains database connection parameters.
type DatabaseConfig struct {
	// Driver selects the database engine.
	// Valid values: "postgres", "sqlite".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Path is the SQLite database file. Empty value means the default
	// location in the data directory. Ignored by PostgreSQL.
	Path string `mapstructure:"path" yaml:"path"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// LoadConfig contains settings of the load command.
type LoadConfig struct {
	// Category is a fallback document category used when neither
	// blockIDs nor the shape of a document reveal its category.
	// Valid values: "companyinfo", "eventsfilings", "financials".
	// Empty value means no fallback.
	Category string `mapstructure:"category" yaml:"category"`

	// SkipUnchanged skips documents whose content fingerprint matches
	// the last loaded document of the same company and category.
	SkipUnchanged bool `mapstructure:"skip_unchanged" yaml:"skip_unchanged"`

	// MetricsFile is a path where load counters are written in
	// Prometheus text format after each run. Empty means no file.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`
}

// S3Config describes access to S3-compatible object storage.
// Credentials come from the standard AWS chain (env vars, profiles).
type S3Config struct {
	// Region of the bucket.
	Region string `mapstructure:"region" yaml:"region"`

	// Endpoint is an optional custom endpoint (MinIO, LocalStack).
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// PathStyle forces path-style addressing, usually needed for MinIO.
	PathStyle bool `mapstructure:"path_style" yaml:"path_style"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:   "postgres",
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "datablock",
			SSLMode:  "disable",
		},
		S3: S3Config{
			Region: "us-east-1",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}
