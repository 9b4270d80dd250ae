package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/infrastructure/persistence"
)

// MigrateCmd creates or updates the database schema
func MigrateCmd(cmd *cobra.Command, _ []string) error {
	env, err := setupEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := persistence.Migrate(env.store.DB); err != nil {
		return err
	}

	env.logger.Info("Database migrations completed successfully")
	fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
	return nil
}

// InitMigrateCommands registers the migrate command
func InitMigrateCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  MigrateCmd,
	})
}
