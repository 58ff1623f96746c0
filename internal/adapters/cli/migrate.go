package cli

import (
	"github.com/spf13/cobra"

	"legaltext/internal/infrastructure/database"
)

func newMigrateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return database.RunMigrations(app.Config.DatabaseURL, app.Config.MigrationsPath, app.Logger)
		},
	}
}
