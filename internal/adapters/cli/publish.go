package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPublishCommand(app *App) *cobra.Command {
	var about string
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Export the reconciled catalogs of every legal code of a license",
		Long: `Publish reconciles the catalog of each legal code of the license against
the English one and writes it under EXPORT_DIR, English first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.Connect(ctx); err != nil {
				return err
			}
			license, err := app.Licenses.GetLicenseByAbout(ctx, about)
			if err != nil {
				return err
			}
			if err := app.Publish.PublishLicense(ctx, license.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published %s to %s\n", license.FatCode(), app.Config.ExportDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&about, "about", "", "canonical URL of the license")
	_ = cmd.MarkFlagRequired("about")
	return cmd
}
