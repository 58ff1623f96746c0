package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"legaltext/internal/domain/entities"
	"legaltext/internal/ports/output"
)

// Metrics tracks catalog cache efficiency and publishing.
type Metrics struct {
	registry *prometheus.Registry

	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	CacheInvalidations prometheus.Counter
	CatalogsPublished  prometheus.Counter
	PublishDuration    prometheus.Histogram
}

// New registers the metrics on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "legaltext_catalog_cache_hits_total",
			Help: "Catalog reads served from the cache",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "legaltext_catalog_cache_misses_total",
			Help: "Catalog reads that had to load the translation file",
		}),
		CacheInvalidations: factory.NewCounter(prometheus.CounterOpts{
			Name: "legaltext_catalog_cache_invalidations_total",
			Help: "Catalogs dropped from the cache",
		}),
		CatalogsPublished: factory.NewCounter(prometheus.CounterOpts{
			Name: "legaltext_catalogs_published_total",
			Help: "Reconciled catalogs handed to the publisher",
		}),
		PublishDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "legaltext_publish_duration_seconds",
			Help:    "Duration of one catalog publication",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteFile writes the current values in the text exposition format, for
// node_exporter's textfile collector.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

var _ output.CatalogCache = (*Cache)(nil)

// Cache counts hits, misses and invalidations of the wrapped cache.
type Cache struct {
	next    output.CatalogCache
	metrics *Metrics
}

func (m *Metrics) Cache(next output.CatalogCache) *Cache {
	return &Cache{next: next, metrics: m}
}

func (c *Cache) Get(ctx context.Context, id entities.DocumentIdentity) (*entities.Catalog, bool) {
	cat, ok := c.next.Get(ctx, id)
	if ok {
		c.metrics.CacheHits.Inc()
	} else {
		c.metrics.CacheMisses.Inc()
	}
	return cat, ok
}

func (c *Cache) Put(ctx context.Context, cat *entities.Catalog) error {
	return c.next.Put(ctx, cat)
}

func (c *Cache) Invalidate(ctx context.Context, id entities.DocumentIdentity) error {
	c.metrics.CacheInvalidations.Inc()
	return c.next.Invalidate(ctx, id)
}

func (c *Cache) Clear(ctx context.Context) error {
	return c.next.Clear(ctx)
}

var _ output.CatalogPublisher = (*Publisher)(nil)

// Publisher times the wrapped publisher and counts successful publications.
type Publisher struct {
	next    output.CatalogPublisher
	metrics *Metrics
}

func (m *Metrics) Publisher(next output.CatalogPublisher) *Publisher {
	return &Publisher{next: next, metrics: m}
}

func (p *Publisher) Publish(ctx context.Context, legalCode *entities.LegalCode, cat *entities.Catalog) error {
	start := time.Now()
	if err := p.next.Publish(ctx, legalCode, cat); err != nil {
		return err
	}
	p.metrics.PublishDuration.Observe(time.Since(start).Seconds())
	p.metrics.CatalogsPublished.Inc()
	return nil
}
