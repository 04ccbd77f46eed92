// Package commands implements the coa operator CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chart-of-accounts/backend/config"
	"github.com/chart-of-accounts/backend/internal/application/adapter"
	"github.com/chart-of-accounts/backend/internal/infra/db"
	"github.com/chart-of-accounts/backend/internal/integration/persistence"
)

// app carries the configuration shared by every subcommand.
type app struct {
	cfg         *config.Config
	databaseURL string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "coa",
		Short: "Chart of accounts administration",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if a.databaseURL != "" {
				cfg.Database.URL = a.databaseURL
			}
			a.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.databaseURL, "database-url", "", "database URL, overrides DATABASE_URL")

	rootCmd.AddCommand(newMigrateCommand(a))
	rootCmd.AddCommand(newChartsCommand(a))
	rootCmd.AddCommand(newAccountsCommand(a))
	rootCmd.AddCommand(newTokenCommand(a))

	return rootCmd
}

// open connects to the database and returns the chart registry over it.
// Commands never use the cache so they always observe the store.
func (a *app) open() (adapter.Charts, func(), error) {
	database, err := db.NewConnection(&a.cfg.Database, a.cfg.Server.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	closer := func() { _ = database.Close() }
	return persistence.NewChartRepository(database.DB(), nil), closer, nil
}

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the chart and account tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.NewConnection(&a.cfg.Database, a.cfg.Server.Environment)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()

			if err := database.Migrate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
