// Package main is the entry point for the boardlog API.
//
// Usage:
//
//	boardlog-api serve [-c boardlog.yaml]        # bootstrap the schema and serve HTTP
//	boardlog-api schema init [-c boardlog.yaml]  # only create the tables
//	boardlog-api version
//
// Database and listen settings come from DB_HOST, DB_PORT, DB_USER,
// DB_PASSWORD, DB_NAME and PORT; the optional yaml file is read first and the
// environment overrides it.
package main

import (
	"fmt"
	"os"

	"github.com/itchan-dev/boardlog/shared/config"
	"github.com/itchan-dev/boardlog/shared/logger"
	"github.com/spf13/cobra"
)

// set at build time via -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "boardlog-api",
	Short: "Circuit board and test run registry API",
	Long: `boardlog-api records manufactured circuit boards and the test runs
performed on them, and serves lookup and ingestion endpoints for the
factory-floor UI.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "boardlog-api %s (%s)\n", version, commit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to optional yaml config file")
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads config for a subcommand and initializes the logger from it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Initialize(cfg.LogLevel, cfg.LogJSON)
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Log.Error("exiting", "error", err)
		os.Exit(1)
	}
}
