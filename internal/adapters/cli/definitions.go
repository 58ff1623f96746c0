package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"legaltext/internal/domain/entities"
)

// legalCodeByAbout finds the legal code of the license at about in lang.
func (a *App) legalCodeByAbout(ctx context.Context, about, lang string) (*entities.LegalCode, error) {
	if err := a.Connect(ctx); err != nil {
		return nil, err
	}
	license, err := a.Licenses.GetLicenseByAbout(ctx, about)
	if err != nil {
		return nil, err
	}
	return a.Licenses.LegalCodeForLanguage(ctx, license.ID, lang)
}

func newDefinitionsCommand(app *App) *cobra.Command {
	var about, lang string
	cmd := &cobra.Command{
		Use:   "definitions",
		Short: "Print the translated definitions and downstream clauses of a legal code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lc, err := app.legalCodeByAbout(ctx, about, lang)
			if err != nil {
				return err
			}
			defs, err := app.LegalCodes.Definitions(ctx, lc)
			if err != nil {
				return err
			}
			downs, err := app.LegalCodes.Downstreams(ctx, lc)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, d := range defs {
				fmt.Fprintf(w, "%s\t%s\n", d.ID, d.Translation)
			}
			for _, d := range downs {
				fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID, d.NameTranslation, d.TextTranslation)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&about, "about", "", "canonical URL of the license")
	cmd.Flags().StringVar(&lang, "language", "", "language code (default: DEFAULT_LANGUAGE)")
	_ = cmd.MarkFlagRequired("about")
	return cmd
}

func newTitleCommand(app *App) *cobra.Command {
	var about, lang string
	cmd := &cobra.Command{
		Use:   "title",
		Short: "Print the translated title and name of a license",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.Connect(ctx); err != nil {
				return err
			}
			if lang == "" {
				lang = app.Config.DefaultLanguage
			}
			license, err := app.Licenses.GetLicenseByAbout(ctx, about)
			if err != nil {
				return err
			}
			title, err := app.Licenses.TranslatedTitle(ctx, license.ID, lang)
			if err != nil {
				return err
			}
			name, err := app.Licenses.TranslatedName(ctx, license.ID, lang)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), title)
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	cmd.Flags().StringVar(&about, "about", "", "canonical URL of the license")
	cmd.Flags().StringVar(&lang, "language", "", "language code (default: DEFAULT_LANGUAGE)")
	_ = cmd.MarkFlagRequired("about")
	return cmd
}
