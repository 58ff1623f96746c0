package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"legaltext/internal/application"
	"legaltext/internal/config"
	"legaltext/internal/infrastructure/catalog"
	"legaltext/internal/infrastructure/database"
	"legaltext/internal/infrastructure/export"
	"legaltext/internal/infrastructure/i18n"
	"legaltext/internal/infrastructure/metrics"
	"legaltext/internal/ports/input"
	"legaltext/internal/ports/output"
)

// App carries what the commands need. Commands that work on files only use
// Config, Logger and Codecs; the others call Connect first. Fields already
// set are kept, which lets tests plug in their own use cases.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Codecs *catalog.Codecs

	Licenses   input.LicenseUseCase
	LegalCodes input.LegalCodeUseCase
	Catalogs   input.CatalogUseCase
	Publish    input.PublishUseCase
	Branches   input.BranchUseCase

	LicenseRepo   output.LicenseRepository
	LegalCodeRepo output.LegalCodeRepository
	Cache         output.CatalogCache
	Loader        *catalog.FileLoader
	Metrics       *metrics.Metrics

	closers []func()
}

func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		Config:  cfg,
		Logger:  logger,
		Codecs:  catalog.NewCodecs(),
		Metrics: metrics.New(),
	}
}

// Connect opens the database and builds the services once.
func (a *App) Connect(ctx context.Context) error {
	if a.Licenses != nil {
		return nil
	}

	pool, err := database.NewPool(ctx, a.Config.DatabaseURL, a.Logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	a.closers = append(a.closers, pool.Close)

	cache, err := a.newCache(ctx)
	if err != nil {
		return err
	}

	a.LicenseRepo = database.NewLicenseRepository(pool)
	a.LegalCodeRepo = database.NewLegalCodeRepository(pool)
	names := database.NewTranslatedLicenseNameRepository(pool)
	branches := database.NewTranslationBranchRepository(pool)

	a.Cache = a.Metrics.Cache(cache)
	a.Loader = catalog.NewFileLoader(a.Config.TranslationRepository, a.Codecs)
	translators := i18n.NewFactory(a.Logger)

	catalogs := application.NewCatalogService(a.Loader, a.LegalCodeRepo, a.Cache, a.Logger)
	a.Catalogs = catalogs
	a.Licenses = application.NewLicenseService(a.LicenseRepo, a.LegalCodeRepo, names, catalogs, translators, a.Config.DefaultLanguage)
	a.LegalCodes = application.NewLegalCodeService(catalogs, translators)
	a.Publish = application.NewPublishService(
		a.LegalCodeRepo,
		catalogs,
		a.Metrics.Publisher(export.NewDirPublisher(a.Config.ExportDir, a.Codecs, a.Logger)),
		a.Logger,
	)
	a.Branches = application.NewBranchService(branches)
	return nil
}

func (a *App) newCache(ctx context.Context) (output.CatalogCache, error) {
	if a.Config.CatalogCache != config.CacheRedis {
		return catalog.NewMemoryCache(), nil
	}
	opts, err := redis.ParseURL(a.Config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	a.closers = append(a.closers, func() { _ = client.Close() })
	a.Logger.Info("✅ Redis catalog cache connected")
	return catalog.NewRedisCache(client, a.Config.CatalogCacheTTL, a.Logger), nil
}

// WriteMetrics saves the metrics to MetricsFile, if configured.
func (a *App) WriteMetrics() {
	if a.Config.MetricsFile == "" {
		return
	}
	if err := a.Metrics.WriteFile(a.Config.MetricsFile); err != nil {
		a.Logger.Warn("metrics not written", "path", a.Config.MetricsFile, "error", err)
	}
}

// Close writes the metrics and releases what Connect opened, in reverse
// order.
func (a *App) Close() {
	if a.closers != nil {
		a.WriteMetrics()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
