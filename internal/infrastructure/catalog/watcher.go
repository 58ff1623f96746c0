package catalog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"legaltext/internal/domain/entities"
	"legaltext/internal/ports/output"
)

// PathResolver maps a catalog file back to the identity it was loaded as.
type PathResolver interface {
	IdentityForPath(path string) (entities.DocumentIdentity, bool)
}

type WatcherConfig struct {
	Root          string
	DebounceDelay time.Duration
	Logger        *slog.Logger
	// OnInvalidate, when set, is called after a catalog has been dropped
	// from the cache.
	OnInvalidate func(id entities.DocumentIdentity)
}

// Watcher drops cached catalogs whose files change on disk, so the next read
// picks up the new content.
type Watcher struct {
	config   WatcherConfig
	resolver PathResolver
	cache    output.CatalogCache
	watcher  *fsnotify.Watcher
	logger   *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op
}

func NewWatcher(config WatcherConfig, resolver PathResolver, cache output.CatalogCache) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.DebounceDelay == 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}
	return &Watcher{
		config:   config,
		resolver: resolver,
		cache:    cache,
		watcher:  fsw,
		logger:   config.Logger,
		pending:  make(map[string]fsnotify.Op),
	}, nil
}

// Start watches every directory below the root until ctx is done.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addWatchesRecursive(w.config.Root); err != nil {
		return err
	}
	go w.processEvents(ctx)

	w.logger.Info("catalog watcher started",
		"root", w.config.Root,
		"debounce", w.config.DebounceDelay)
	return nil
}

func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
}

func (w *Watcher) processEvents(ctx context.Context) {
	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("catalog watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addWatchesRecursive(event.Name); err != nil {
				w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}
			return
		}
	}
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return
	}

	w.pendingMu.Lock()
	w.pending[event.Name] |= event.Op
	w.pendingMu.Unlock()
}

func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	batch := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for path, op := range batch {
		id, ok := w.resolver.IdentityForPath(path)
		if !ok {
			continue
		}
		if err := w.cache.Invalidate(ctx, id); err != nil {
			w.logger.Warn("catalog invalidation failed", "catalog", id.String(), "error", err)
			continue
		}
		w.logger.Info("catalog invalidated", "catalog", id.String(), "path", path, "op", op.String())
		if w.config.OnInvalidate != nil {
			w.config.OnInvalidate(id)
		}
	}
}
