/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/datablock/internal/iofs"
	"github.com/gnames/datablock/internal/iologger"
	datablock "github.com/gnames/datablock/pkg"
	"github.com/gnames/datablock/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfg *config.Config

// getRootCmd builds the command tree. A new tree is created on every
// call, so tests can run commands independently.
func getRootCmd() *cobra.Command {
	var (
		driver string
		dbPath string
	)

	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			datablock.Version, datablock.Build),
		Use:   "datablock",
		Short: "Loads D&B Data Blocks documents into a relational database",
		Long: `Datablock keeps a relational copy of Dun & Bradstreet Data Blocks
documents in PostgreSQL or SQLite.

Commands:
  create   create the database schema
  migrate  update the schema to the latest version
  load     load JSON documents from files, directories, globs or S3
  show     print a company with all its details
  list     list loaded companies

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (DATABLOCK_*)
  3. Config file (~/.config/datablock/config.yaml)
  4. Built-in defaults

Environment variables use underscores for nesting, for example
DATABLOCK_DATABASE_DRIVER, DATABLOCK_DATABASE_PATH, DATABLOCK_LOG_LEVEL.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			err := bootstrap(cmd, driver, dbPath)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "datablock version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for datablock")

	rootCmd.PersistentFlags().StringVarP(&driver, "driver", "D", "",
		"database driver: postgres or sqlite")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "",
		"SQLite database file")

	rootCmd.AddCommand(
		getCreateCmd(),
		getMigrateCmd(),
		getLoadCmd(),
		getShowCmd(),
		getListCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, driver, dbPath string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		return err
	}

	// Hardcoded defaults until the user's config is read.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		return err
	}
	if err = iofs.EnsureManifestFile(homeDir); err != nil {
		return err
	}

	cfgViper, err := initConfig(homeDir)
	if err != nil {
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	var flagOpts []config.Option
	if cmd.Flags().Changed("driver") {
		flagOpts = append(flagOpts, config.OptDatabaseDriver(driver))
	}
	if cmd.Flags().Changed("db-path") {
		flagOpts = append(flagOpts, config.OptDatabasePath(dbPath))
	}
	cfg.Update(flagOpts)

	if err = iologger.Init(config.LogDir(homeDir), cfg.Log); err != nil {
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"driver", cfg.Database.Driver,
	)
	return nil
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

// initEnvVars binds the environment variables explicitly, so it is clear
// which ones are allowed. They match the fields of config.ToOptions().
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix("DATABLOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.driver", "DATABLOCK_DATABASE_DRIVER")
	v.BindEnv("database.path", "DATABLOCK_DATABASE_PATH")
	v.BindEnv("database.host", "DATABLOCK_DATABASE_HOST")
	v.BindEnv("database.port", "DATABLOCK_DATABASE_PORT")
	v.BindEnv("database.user", "DATABLOCK_DATABASE_USER")
	v.BindEnv("database.password", "DATABLOCK_DATABASE_PASSWORD")
	v.BindEnv("database.database", "DATABLOCK_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "DATABLOCK_DATABASE_SSL_MODE")

	// Load configuration
	v.BindEnv("load.category", "DATABLOCK_LOAD_CATEGORY")
	v.BindEnv("load.skip_unchanged", "DATABLOCK_LOAD_SKIP_UNCHANGED")
	v.BindEnv("load.metrics_file", "DATABLOCK_LOAD_METRICS_FILE")

	// S3 configuration
	v.BindEnv("s3.region", "DATABLOCK_S3_REGION")
	v.BindEnv("s3.endpoint", "DATABLOCK_S3_ENDPOINT")
	v.BindEnv("s3.path_style", "DATABLOCK_S3_PATH_STYLE")

	// Log configuration
	v.BindEnv("log.level", "DATABLOCK_LOG_LEVEL")
	v.BindEnv("log.format", "DATABLOCK_LOG_FORMAT")
	v.BindEnv("log.destination", "DATABLOCK_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "DATABLOCK_JOBS_NUMBER")

	v.AutomaticEnv()
}
