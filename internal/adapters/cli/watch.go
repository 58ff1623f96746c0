package cli

import (
	"context"
	"errors"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"legaltext/internal/domain"
	"legaltext/internal/domain/entities"
	"legaltext/internal/infrastructure/catalog"
)

// warmConcurrency bounds the licenses whose catalogs load at once.
const warmConcurrency = 4

func newWatchCommand(app *App) *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the catalog cache in sync with the translation repository",
		Long: `Watch loads the catalog of every legal code into the cache, then drops
and reloads cached catalogs whenever their file changes, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := app.Connect(ctx); err != nil {
				return err
			}
			legalCodes, err := app.warmCache(ctx)
			if err != nil {
				return err
			}

			w, err := catalog.NewWatcher(catalog.WatcherConfig{
				Root:          filepath.Join(app.Config.TranslationRepository, "translations"),
				DebounceDelay: debounce,
				Logger:        app.Logger,
				OnInvalidate: func(id entities.DocumentIdentity) {
					lc, ok := legalCodes[id]
					if !ok {
						return
					}
					if _, err := app.Catalogs.Catalog(ctx, lc); err != nil {
						app.Logger.Warn("catalog reload failed", "catalog", id.String(), "error", err)
					}
					app.WriteMetrics()
				},
			}, app.Loader, app.Cache)
			if err != nil {
				return err
			}
			defer w.Stop()

			if err := w.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()
			app.Logger.Info("👋 Watcher stopped")
			return nil
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", 100*time.Millisecond, "delay before a changed file is reloaded")
	return cmd
}

// warmCache loads the catalog of every legal code with a translation file
// and tracks the file path of every legal code for the watcher.
func (a *App) warmCache(ctx context.Context) (map[entities.DocumentIdentity]*entities.LegalCode, error) {
	licenses, err := a.LicenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu     sync.Mutex
		loaded = make(map[entities.DocumentIdentity]*entities.LegalCode)
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(warmConcurrency)
	for _, license := range licenses {
		g.Go(func() error {
			legalCodes, err := a.LegalCodeRepo.FindByLicenseID(ctx, license.ID)
			if err != nil {
				return err
			}
			for i := range legalCodes {
				lc := &legalCodes[i]
				// a cache hit never reads the file, so register its path here
				a.Loader.Track(lc)
				mu.Lock()
				loaded[lc.Identity()] = lc
				mu.Unlock()

				_, err := a.Catalogs.Catalog(ctx, lc)
				if errors.Is(err, domain.ErrCatalogNotFound) {
					a.Logger.Debug("no translation file", "legal_code", lc.String())
					continue
				}
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	a.Logger.Info("✅ Catalog cache warmed", "legal_codes", len(loaded))
	return loaded, nil
}
