package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "legaltext",
		Short: "Manage license legal code translations",
		Long: `legaltext keeps license records and their translated legal codes,
reconciles translation catalogs against the English source text and
exports them for the translation hosting service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newMigrateCommand(app),
		newReconcileCommand(app),
		newBranchNameCommand(app),
		newFilenameCommand(app),
		newDefinitionsCommand(app),
		newTitleCommand(app),
		newPublishCommand(app),
		newBranchCommand(app),
		newScanCommand(app),
		newWatchCommand(app),
	)
	return cmd
}
