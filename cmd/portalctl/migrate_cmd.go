package main

import (
	"github.com/spf13/cobra"

	"github.com/nucareers/career-portal/internal/bootstrap"
	"github.com/nucareers/career-portal/internal/config"
	"github.com/nucareers/career-portal/internal/logging"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables and unique indexes for the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := logging.New(cfg.Log.Level, cfg.Log.Format)

			stores, err := bootstrap.OpenStores(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer stores.Close(cmd.Context())

			if err := stores.Migrate(cmd.Context()); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]string{
				"command": "migrate",
				"store":   cfg.Store.Kind,
			})
		},
	}
}
