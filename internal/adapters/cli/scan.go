package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"legaltext/internal/infrastructure/catalog"
)

func newScanCommand(app *App) *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the catalog files of the translation repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if root == "" {
				root = app.Config.TranslationRepository
			}
			paths, err := catalog.Scan(root, app.Codecs)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			app.Logger.Debug("translation repository scanned", "root", root, "files", len(paths))
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "translation repository (default: TRANSLATION_REPOSITORY_DIRECTORY)")
	return cmd
}
