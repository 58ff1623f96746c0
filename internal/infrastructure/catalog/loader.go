package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"legaltext/internal/domain"
	"legaltext/internal/domain/entities"
	"legaltext/internal/ports/output"
)

var _ output.CatalogLoader = (*FileLoader)(nil)

// FileLoader reads catalogs from a checkout of the translation repository.
// It remembers which file each identity was read from so file changes can be
// mapped back to catalogs.
type FileLoader struct {
	root   string
	codecs *Codecs

	mu    sync.RWMutex
	paths map[string]entities.DocumentIdentity
}

func NewFileLoader(root string, codecs *Codecs) *FileLoader {
	if codecs == nil {
		codecs = NewCodecs()
	}
	return &FileLoader{
		root:   root,
		codecs: codecs,
		paths:  make(map[string]entities.DocumentIdentity),
	}
}

func (l *FileLoader) Root() string {
	return l.root
}

// Load reads the catalog at legalCode.TranslationFilename(root).
func (l *FileLoader) Load(ctx context.Context, legalCode *entities.LegalCode) (*entities.Catalog, error) {
	return l.LoadFile(ctx, legalCode.TranslationFilename(l.root), legalCode.Identity())
}

// LoadFile reads the catalog stored at path and labels it with id.
func (l *FileLoader) LoadFile(ctx context.Context, path string, id entities.DocumentIdentity) (*entities.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	entries, err := l.codecs.Unmarshal(path, data)
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	l.track(path, id)
	return &entities.Catalog{Identity: id, Entries: entries}, nil
}

// Track maps legalCode's translation file to its identity without reading
// it, so changes to a catalog served from a shared cache still resolve.
func (l *FileLoader) Track(legalCode *entities.LegalCode) {
	l.track(legalCode.TranslationFilename(l.root), legalCode.Identity())
}

func (l *FileLoader) track(path string, id entities.DocumentIdentity) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	l.mu.Lock()
	l.paths[abs] = id
	l.mu.Unlock()
}

// IdentityForPath returns the identity of the catalog last loaded from path.
func (l *FileLoader) IdentityForPath(path string) (entities.DocumentIdentity, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return entities.DocumentIdentity{}, false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	id, ok := l.paths[abs]
	return id, ok
}
