package main

import (
	"context"
	"fmt"

	"github.com/itchan-dev/boardlog/backend/internal/storage/pg"
	"github.com/itchan-dev/boardlog/shared/logger"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Database schema commands",
}

var schemaInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the boards and test_runs tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), startupTimeout)
		defer cancel()

		storage, err := pg.New(ctx, cfg.Pg)
		if err != nil {
			return err
		}
		defer storage.Cleanup()

		if err := storage.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to bootstrap schema: %w", err)
		}
		logger.Log.Info("schema ready", "dbname", cfg.Pg.Dbname)
		return nil
	},
}

func init() {
	schemaCmd.AddCommand(schemaInitCmd)
	rootCmd.AddCommand(schemaCmd)
}
