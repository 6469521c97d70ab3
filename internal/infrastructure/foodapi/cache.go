package foodapi

import (
	"context"
	"sync"
	"time"

	"github.com/fridgewise/v1/internal/domain/recipe"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// failureRetryWindow bounds how long an empty fail-open snapshot is
// served before the fetch is attempted again.
const failureRetryWindow = 5 * time.Minute

// Fetcher is the fetch side of the corpus cache, satisfied by *Client
type Fetcher interface {
	FetchAll(ctx context.Context) ([]recipe.PublicRecipe, error)
}

// SnapshotStore is an optional second cache tier for the serialized
// snapshot (Redis in production). Errors from the store are fail-open.
type SnapshotStore interface {
	Load(ctx context.Context) ([]recipe.PublicRecipe, bool)
	Save(ctx context.Context, corpus []recipe.PublicRecipe)
}

// CachedCorpus is the process-wide corpus snapshot with TTL refresh.
// Concurrent cache misses share one in-flight fetch through the
// single-flight group instead of each refetching the full dataset.
// A failed fetch degrades to an empty corpus (fail-open) so the
// recommendation flow still works with zero public matches.
type CachedCorpus struct {
	fetcher Fetcher
	store   SnapshotStore // may be nil
	ttl     time.Duration
	logger  *zap.Logger

	group singleflight.Group

	mu        sync.RWMutex
	snapshot  []recipe.PublicRecipe
	expiresAt time.Time

	// now is injectable for tests
	now func() time.Time
}

// NewCachedCorpus creates the corpus cache. store may be nil.
func NewCachedCorpus(fetcher Fetcher, store SnapshotStore, ttl time.Duration, logger *zap.Logger) *CachedCorpus {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CachedCorpus{
		fetcher: fetcher,
		store:   store,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}
}

// Snapshot returns the cached corpus, refreshing it when the TTL has
// elapsed. The returned slice is shared read-only state; callers must
// not mutate it.
func (c *CachedCorpus) Snapshot(ctx context.Context) ([]recipe.PublicRecipe, error) {
	c.mu.RLock()
	fresh := c.snapshot != nil && c.now().Before(c.expiresAt)
	snapshot := c.snapshot
	c.mu.RUnlock()

	if fresh {
		corpusCacheHits.Inc()
		return snapshot, nil
	}

	corpusCacheMisses.Inc()
	result, err, _ := c.group.Do("corpus", func() (interface{}, error) {
		// Re-check under the flight: another caller may have refilled
		// while this one was queued on the group.
		c.mu.RLock()
		if c.snapshot != nil && c.now().Before(c.expiresAt) {
			defer c.mu.RUnlock()
			return c.snapshot, nil
		}
		c.mu.RUnlock()

		return c.refill(ctx), nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]recipe.PublicRecipe), nil
}

// refill fetches a new snapshot and installs it. Never returns an
// error: fetch failures install an empty corpus with a short retry
// window instead of poisoning the cache for a full TTL.
func (c *CachedCorpus) refill(ctx context.Context) []recipe.PublicRecipe {
	if c.store != nil {
		if corpus, ok := c.store.Load(ctx); ok {
			c.install(corpus, c.ttl)
			return corpus
		}
	}

	corpusFetches.Inc()
	corpus, err := c.fetcher.FetchAll(ctx)
	if err != nil {
		c.logger.Warn("corpus fetch failed, serving empty corpus", zap.Error(err))
		empty := []recipe.PublicRecipe{}
		c.install(empty, failureRetryWindow)
		return empty
	}

	if c.store != nil {
		c.store.Save(ctx, corpus)
	}
	c.install(corpus, c.ttl)
	return corpus
}

func (c *CachedCorpus) install(corpus []recipe.PublicRecipe, validFor time.Duration) {
	c.mu.Lock()
	c.snapshot = corpus
	c.expiresAt = c.now().Add(validFor)
	c.mu.Unlock()
}

// Invalidate drops the snapshot so the next call refetches
func (c *CachedCorpus) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.expiresAt = time.Time{}
	c.mu.Unlock()
}
