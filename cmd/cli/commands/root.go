// Package commands implements the admin CLI. It talks to the database
// directly, bypassing the API, for bootstrap tasks.
package commands

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/trabajitos-sv/trabajitos-api/internal/config"
	"github.com/trabajitos-sv/trabajitos-api/internal/db"
	"github.com/trabajitos-sv/trabajitos-api/internal/logger"
)

// database is the shared connection, opened by PersistentPreRunE.
var database *gorm.DB

func init() {
	RootCmd.AddCommand(GetUsersCmd())
	RootCmd.AddCommand(GetStatusesCmd())
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "trabajitos",
	Short: "Trabajitos CLI - administration tool for the Trabajitos API",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.Initialize(cfg.LogLevel)

		database, err = db.New(cfg.DSN())
		return err
	},
}
