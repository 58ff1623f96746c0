package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"legaltext/internal/domain/entities"
	"legaltext/internal/ports/output"
)

const (
	// RedisCachePrefix is the key prefix of cached catalogs.
	RedisCachePrefix = "catalog:"
	// RedisCacheTTL is used when no TTL is configured.
	RedisCacheTTL = time.Hour
)

var _ output.CatalogCache = (*RedisCache)(nil)

// RedisCache shares loaded catalogs between processes. Values are JSON
// encoded and expire after the TTL.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCache {
	if ttl == 0 {
		ttl = RedisCacheTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisCache{
		client: client,
		prefix: RedisCachePrefix,
		ttl:    ttl,
		logger: logger,
	}
}

type redisCatalog struct {
	Variant  string      `json:"variant"`
	Language string      `json:"language"`
	Entries  []fileEntry `json:"entries"`
}

func (c *RedisCache) key(id entities.DocumentIdentity) string {
	return c.prefix + id.Variant + ":" + id.Language
}

// Get treats every Redis failure as a miss; the catalog is then reloaded
// from its file.
func (c *RedisCache) Get(ctx context.Context, id entities.DocumentIdentity) (*entities.Catalog, bool) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("redis catalog cache get failed", "catalog", id.String(), "error", err)
		}
		return nil, false
	}

	var rc redisCatalog
	if err := json.Unmarshal(data, &rc); err != nil {
		c.logger.Warn("redis catalog cache holds invalid value", "catalog", id.String(), "error", err)
		return nil, false
	}
	cat := &entities.Catalog{
		Identity: entities.DocumentIdentity{Variant: rc.Variant, Language: rc.Language},
		Entries:  make([]entities.CatalogEntry, len(rc.Entries)),
	}
	for i, e := range rc.Entries {
		cat.Entries[i] = entities.CatalogEntry{Key: e.Key, Text: e.Text}
	}
	return cat, true
}

func (c *RedisCache) Put(ctx context.Context, cat *entities.Catalog) error {
	rc := redisCatalog{
		Variant:  cat.Identity.Variant,
		Language: cat.Identity.Language,
		Entries:  make([]fileEntry, len(cat.Entries)),
	}
	for i, e := range cat.Entries {
		rc.Entries[i] = fileEntry{Key: e.Key, Text: e.Text}
	}
	data, err := json.Marshal(rc)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := c.client.Set(ctx, c.key(cat.Identity), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, id entities.DocumentIdentity) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Clear removes every cached catalog under the cache prefix.
func (c *RedisCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
