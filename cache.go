package ignorefile

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultCacheSize is the maximum number of rule sets to cache.
	// This prevents unbounded memory growth in long-running scanners.
	DefaultCacheSize = 1000

	// warmConcurrency bounds parallel compilation during Warm.
	warmConcurrency = 8
)

// Cache memoizes compiled rule sets by starting directory, so scanners
// that query the same subtree repeatedly pay the locate-and-compile
// cost once. Uses LRU eviction to bound memory. Directories with no
// governing ignore file are not cached.
type Cache struct {
	cache *lru.Cache[string, *RuleSet]
	mu    sync.RWMutex
}

// NewCache creates a cache holding up to size rule sets. A size of
// zero or less selects DefaultCacheSize.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, *RuleSet](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create rule set cache: %w", err)
	}
	return &Cache{cache: cache}, nil
}

// Get returns the rule set governing start, loading and caching it on
// first use. The second return is false when no governing ignore file
// exists or it cannot be compiled.
func (c *Cache) Get(start string) (*RuleSet, bool) {
	c.mu.RLock()
	rs, ok := c.cache.Get(start)
	c.mu.RUnlock()
	if ok {
		return rs, true
	}

	rs, ok = LocateAndLoad(start)
	if !ok {
		return nil, false
	}

	c.mu.Lock()
	c.cache.Add(start, rs)
	c.mu.Unlock()

	return rs, true
}

// Invalidate clears all cached rule sets. Call this when ignore files
// change so fresh patterns are used. Safe for concurrent use.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Purge()
}

// Warm precompiles the rule sets for dirs in parallel, bounded by
// warmConcurrency, and returns early if ctx is canceled. Directories
// without a governing file are skipped silently; they are not errors.
func (c *Cache) Warm(ctx context.Context, dirs []string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(warmConcurrency)

	for _, dir := range dirs {
		dir := dir
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, ok := c.Get(dir); !ok {
				slog.Debug("no rule set for directory", slog.String("dir", dir))
			}
			return nil
		})
	}

	return g.Wait()
}
