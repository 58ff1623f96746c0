package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Catalog cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type Config struct {
	DatabaseURL    string
	MigrationsPath string

	// TranslationRepository is the checkout of the translation data
	// repository; catalogs live under its "translations" directory.
	TranslationRepository string
	ExportDir             string
	DefaultLanguage       string

	CatalogCache    string
	RedisURL        string
	CatalogCacheTTL time.Duration

	LogLevel  string
	LogFormat string
	LogOutput string

	// MetricsFile, when set, receives the Prometheus metrics of the run.
	MetricsFile string
}

// Load reads the configuration from the environment (and an optional .env
// file) and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, ...).
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:           v.GetString("DATABASE_URL"),
		MigrationsPath:        v.GetString("MIGRATIONS_PATH"),
		TranslationRepository: v.GetString("TRANSLATION_REPOSITORY_DIRECTORY"),
		ExportDir:             v.GetString("EXPORT_DIR"),
		DefaultLanguage:       v.GetString("DEFAULT_LANGUAGE"),
		CatalogCache:          strings.ToLower(v.GetString("CATALOG_CACHE")),
		RedisURL:              v.GetString("REDIS_URL"),
		CatalogCacheTTL:       v.GetDuration("CATALOG_CACHE_TTL"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		LogFormat:             v.GetString("LOG_FORMAT"),
		LogOutput:             v.GetString("LOG_OUTPUT"),
		MetricsFile:           v.GetString("METRICS_FILE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DATABASE_URL", "postgres://localhost:5432/legaltext?sslmode=disable")
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("TRANSLATION_REPOSITORY_DIRECTORY", "../cc-licenses-data")
	v.SetDefault("EXPORT_DIR", "export")
	v.SetDefault("DEFAULT_LANGUAGE", "en")
	v.SetDefault("CATALOG_CACHE", CacheMemory)
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("CATALOG_CACHE_TTL", time.Hour)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOG_OUTPUT", "stderr")
	v.SetDefault("METRICS_FILE", "")
}

// validate applies the rules on the loaded configuration.
func (c *Config) validate() error {
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.TranslationRepository) == "" {
		return fmt.Errorf("config: TRANSLATION_REPOSITORY_DIRECTORY must not be empty")
	}

	if _, err := language.Parse(c.DefaultLanguage); err != nil {
		return fmt.Errorf("config: invalid DEFAULT_LANGUAGE (%q): %w", c.DefaultLanguage, err)
	}

	switch c.CatalogCache {
	case CacheMemory:
	case CacheRedis:
		if _, err := url.Parse(c.RedisURL); err != nil || !strings.HasPrefix(c.RedisURL, "redis") {
			return fmt.Errorf("config: invalid REDIS_URL (%q)", c.RedisURL)
		}
	default:
		return fmt.Errorf("config: CATALOG_CACHE must be %q or %q, got %q", CacheMemory, CacheRedis, c.CatalogCache)
	}

	if c.CatalogCacheTTL < 0 {
		return fmt.Errorf("config: CATALOG_CACHE_TTL must not be negative")
	}
	return nil
}
