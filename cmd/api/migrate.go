package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Brendon2203/techsolutions/internal/database"
	"github.com/Brendon2203/techsolutions/internal/logging"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the quote_requests table and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logging.Init(cfg.Log, cfg.App.Debug)

			store, err := database.New(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer store.Close()

			if err := store.Initialize(cmd.Context()); err != nil {
				return err
			}
			logging.Info("database schema is up to date", "component", "migrate")
			return nil
		},
	}
}
