package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"legaltext/internal/domain"
	"legaltext/internal/domain/entities"
)

func newReconcileCommand(app *App) *cobra.Command {
	var (
		format   string
		language string
	)
	cmd := &cobra.Command{
		Use:   "reconcile TARGET [DEFAULT]",
		Short: "Replace message keys of a catalog with the English text",
		Long: `Reconcile reads the TARGET catalog and rewrites its keys with the text
the DEFAULT (English) catalog holds for them. Without DEFAULT, TARGET is
taken as the English catalog itself: keys become its text and the texts
are cleared.

The result is written to stdout.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := app.readCatalog(args[0], language)
			if err != nil {
				return err
			}

			var def *entities.Catalog
			if len(args) == 2 {
				if def, err = app.readCatalog(args[1], entities.DefaultLanguageCode); err != nil {
					return err
				}
			}

			out, err := domain.ReconcileCatalog(target, def == nil, def)
			if err != nil {
				return err
			}
			data, err := app.Codecs.Marshal("out."+format, out)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	exts := app.Codecs.Extensions()
	slices.Sort(exts)
	cmd.Flags().StringVarP(&format, "format", "f", "po", "output format ("+strings.Join(exts, ", ")+")")
	cmd.Flags().StringVarP(&language, "language", "l", "", "language of TARGET (default: from its file name)")
	return cmd
}

func (a *App) readCatalog(path, lang string) (*entities.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	entries, err := a.Codecs.Unmarshal(path, data)
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	if lang == "" {
		lang = languageFromFilename(path)
	}
	return &entities.Catalog{
		Identity: entities.DocumentIdentity{Language: lang},
		Entries:  entries,
	}, nil
}

// languageFromFilename returns the last "_" separated part of a translation
// file name, e.g. "fr" for "by-nc_4.0_fr.po".
func languageFromFilename(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if i := strings.LastIndex(base, "_"); i >= 0 {
		return base[i+1:]
	}
	return base
}
