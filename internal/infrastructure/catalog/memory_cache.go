package catalog

import (
	"context"
	"sync"

	"legaltext/internal/domain/entities"
	"legaltext/internal/ports/output"
)

var _ output.CatalogCache = (*MemoryCache)(nil)

// MemoryCache keeps catalogs in process memory until invalidated.
type MemoryCache struct {
	mu       sync.RWMutex
	catalogs map[entities.DocumentIdentity]*entities.Catalog
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{catalogs: make(map[entities.DocumentIdentity]*entities.Catalog)}
}

// Get returns the cached catalog. Callers must not modify it.
func (c *MemoryCache) Get(_ context.Context, id entities.DocumentIdentity) (*entities.Catalog, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cat, ok := c.catalogs[id]
	return cat, ok
}

// Put stores a copy of cat under its identity.
func (c *MemoryCache) Put(_ context.Context, cat *entities.Catalog) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.catalogs[cat.Identity] = cat.Clone()
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context, id entities.DocumentIdentity) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.catalogs, id)
	return nil
}

func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.catalogs = make(map[entities.DocumentIdentity]*entities.Catalog)
	return nil
}
