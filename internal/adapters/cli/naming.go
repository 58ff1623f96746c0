package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"legaltext/internal/domain"
	"legaltext/internal/domain/entities"
)

// legalCodeFlags describe a legal code without a database.
type legalCodeFlags struct {
	code         string
	version      string
	jurisdiction string
	language     string
}

func (f *legalCodeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.code, "code", "", "license code, e.g. by-sa")
	cmd.Flags().StringVar(&f.version, "version", "", "license version, e.g. 4.0")
	cmd.Flags().StringVar(&f.jurisdiction, "jurisdiction", "", "jurisdiction code of ported licenses")
	cmd.Flags().StringVar(&f.language, "language", entities.DefaultLanguageCode, "language code")
	_ = cmd.MarkFlagRequired("code")
}

func (f *legalCodeFlags) legalCode() (*entities.LegalCode, error) {
	if f.language == "" || len(f.language) > entities.MaxLanguageCodeLength {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidLanguageCode, f.language)
	}
	return &entities.LegalCode{
		LanguageCode: f.language,
		License: &entities.License{
			LicenseCode:      f.code,
			Version:          f.version,
			JurisdictionCode: f.jurisdiction,
		},
	}, nil
}

func newBranchNameCommand(app *App) *cobra.Command {
	var flags legalCodeFlags
	cmd := &cobra.Command{
		Use:   "branch-name",
		Short: "Print the git branch name of a translation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lc, err := flags.legalCode()
			if err != nil {
				return err
			}
			name := lc.BranchName()
			if len(name) > entities.MaxBranchNameLength {
				return fmt.Errorf("%w: %q", domain.ErrBranchNameTooLong, name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newFilenameCommand(app *App) *cobra.Command {
	var (
		flags legalCodeFlags
		root  string
	)
	cmd := &cobra.Command{
		Use:   "filename",
		Short: "Print the translation file path of a legal code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lc, err := flags.legalCode()
			if err != nil {
				return err
			}
			if root == "" {
				root = app.Config.TranslationRepository
			}
			fmt.Fprintln(cmd.OutOrStdout(), lc.TranslationFilename(root))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&root, "root", "", "translation repository (default: TRANSLATION_REPOSITORY_DIRECTORY)")
	return cmd
}
