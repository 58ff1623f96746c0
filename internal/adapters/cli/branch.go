package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newBranchCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Track translation branches",
	}
	cmd.AddCommand(newBranchOpenCommand(app), newBranchCompleteCommand(app))
	return cmd
}

func newBranchOpenCommand(app *App) *cobra.Command {
	var about, lang string
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open (or reuse) the branch of a legal code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lc, err := app.legalCodeByAbout(ctx, about, lang)
			if err != nil {
				return err
			}
			branch, err := app.Branches.OpenBranch(ctx, lc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d legal code(s)\n", branch.ID, branch.BranchName, len(branch.LegalCodeIDs))
			return nil
		},
	}
	cmd.Flags().StringVar(&about, "about", "", "canonical URL of the license")
	cmd.Flags().StringVar(&lang, "language", "", "language code (default: DEFAULT_LANGUAGE)")
	_ = cmd.MarkFlagRequired("about")
	return cmd
}

func newBranchCompleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete ID",
		Short: "Mark a branch complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid branch id %q: %w", args[0], err)
			}
			ctx := cmd.Context()
			if err := app.Connect(ctx); err != nil {
				return err
			}
			return app.Branches.CompleteBranch(ctx, uint(id))
		},
	}
}
