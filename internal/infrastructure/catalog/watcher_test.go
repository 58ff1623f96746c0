package catalog

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legaltext/internal/domain/entities"
)

func TestWatcher_InvalidatesChangedCatalog(t *testing.T) {
	root := t.TempDir()
	fr, de := testLegalCode("fr"), testLegalCode("de")
	writeFile(t, fr.TranslationFilename(root), "msgid \"s1a\"\nmsgstr \"v1\"\n")
	writeFile(t, de.TranslationFilename(root), "msgid \"s1a\"\nmsgstr \"eins\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := NewFileLoader(root, nil)
	cache := NewMemoryCache()
	for _, lc := range []*entities.LegalCode{fr, de} {
		cat, err := loader.Load(ctx, lc)
		require.NoError(t, err)
		require.NoError(t, cache.Put(ctx, cat))
	}

	var invalidated atomic.Int32
	w, err := NewWatcher(WatcherConfig{
		Root:          root,
		DebounceDelay: 10 * time.Millisecond,
		OnInvalidate:  func(entities.DocumentIdentity) { invalidated.Add(1) },
	}, loader, cache)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	writeFile(t, fr.TranslationFilename(root), "msgid \"s1a\"\nmsgstr \"v2\"\n")

	require.Eventually(t, func() bool {
		_, ok := cache.Get(ctx, fr.Identity())
		return !ok
	}, 2*time.Second, 10*time.Millisecond)

	_, ok := cache.Get(ctx, de.Identity())
	assert.True(t, ok)
	assert.GreaterOrEqual(t, invalidated.Load(), int32(1))

	cat, err := loader.Load(ctx, fr)
	require.NoError(t, err)
	assert.Equal(t, "v2", cat.Entries[0].Text)
}

func TestWatcher_IgnoresUnknownFiles(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cache := NewMemoryCache()
	require.NoError(t, cache.Put(ctx, sampleCatalog("fr")))

	w, err := NewWatcher(WatcherConfig{Root: root, DebounceDelay: 10 * time.Millisecond}, NewFileLoader(root, nil), cache)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	writeFile(t, root+"/notes.txt", "hello")
	time.Sleep(100 * time.Millisecond)

	_, ok := cache.Get(ctx, sampleCatalog("fr").Identity)
	assert.True(t, ok)
}

func TestWatcher_InvalidatesCatalogCachedByAnotherProcess(t *testing.T) {
	root := t.TempDir()
	fr := testLegalCode("fr")
	writeFile(t, fr.TranslationFilename(root), "msgid \"s1a\"\nmsgstr \"v1\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, client := setupTestRedis(t)
	cache := NewRedisCache(client, time.Hour, nil)

	// another process loaded and cached the catalog
	cat, err := NewFileLoader(root, nil).Load(ctx, fr)
	require.NoError(t, err)
	require.NoError(t, cache.Put(ctx, cat))

	loader := NewFileLoader(root, nil)
	_, ok := loader.IdentityForPath(fr.TranslationFilename(root))
	require.False(t, ok)

	loader.Track(fr)
	id, ok := loader.IdentityForPath(fr.TranslationFilename(root))
	require.True(t, ok)
	assert.Equal(t, fr.Identity(), id)

	w, err := NewWatcher(WatcherConfig{Root: root, DebounceDelay: 10 * time.Millisecond}, loader, cache)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	writeFile(t, fr.TranslationFilename(root), "msgid \"s1a\"\nmsgstr \"v2\"\n")

	require.Eventually(t, func() bool {
		_, ok := cache.Get(ctx, fr.Identity())
		return !ok
	}, 2*time.Second, 10*time.Millisecond)
}
