package foodapi

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fridgewise/v1/internal/domain/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingFetcher struct {
	calls  atomic.Int64
	corpus []recipe.PublicRecipe
	err    error
	delay  time.Duration
}

func (f *countingFetcher) FetchAll(ctx context.Context) ([]recipe.PublicRecipe, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.corpus, f.err
}

type memoryStore struct {
	mu     sync.Mutex
	corpus []recipe.PublicRecipe
	loaded bool
	saves  int
}

func (s *memoryStore) Load(ctx context.Context) ([]recipe.PublicRecipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.corpus, s.loaded
}

func (s *memoryStore) Save(ctx context.Context, corpus []recipe.PublicRecipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.corpus = corpus
	s.loaded = true
	s.saves++
}

func sampleCorpus() []recipe.PublicRecipe {
	return []recipe.PublicRecipe{
		{ID: "1", Name: "김치찌개"},
		{ID: "2", Name: "된장찌개"},
	}
}

func TestSnapshotFetchesOnceWithinTTL(t *testing.T) {
	fetcher := &countingFetcher{corpus: sampleCorpus()}
	cache := NewCachedCorpus(fetcher, nil, time.Hour, zap.NewNop())

	for i := 0; i < 5; i++ {
		corpus, err := cache.Snapshot(context.Background())
		require.NoError(t, err)
		assert.Len(t, corpus, 2)
	}

	assert.Equal(t, int64(1), fetcher.calls.Load())
}

func TestSnapshotSharesConcurrentRefill(t *testing.T) {
	fetcher := &countingFetcher{corpus: sampleCorpus(), delay: 20 * time.Millisecond}
	cache := NewCachedCorpus(fetcher, nil, time.Hour, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			corpus, err := cache.Snapshot(context.Background())
			assert.NoError(t, err)
			assert.Len(t, corpus, 2)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), fetcher.calls.Load(), "concurrent misses share one fetch")
}

func TestSnapshotRefetchesAfterTTL(t *testing.T) {
	fetcher := &countingFetcher{corpus: sampleCorpus()}
	cache := NewCachedCorpus(fetcher, nil, time.Hour, zap.NewNop())

	current := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	_, err := cache.Snapshot(context.Background())
	require.NoError(t, err)

	current = current.Add(30 * time.Minute)
	_, err = cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), fetcher.calls.Load())

	current = current.Add(31 * time.Minute)
	_, err = cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), fetcher.calls.Load(), "expired snapshot triggers a refetch")
}

func TestSnapshotFailsOpenOnFetchError(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New("upstream down")}
	cache := NewCachedCorpus(fetcher, nil, time.Hour, zap.NewNop())

	current := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	corpus, err := cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, corpus)
	assert.Equal(t, int64(1), fetcher.calls.Load())

	// Inside the short retry window the empty snapshot is served as-is
	current = current.Add(time.Minute)
	_, err = cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), fetcher.calls.Load())

	// Past the window the fetch is attempted again
	fetcher.err = nil
	fetcher.corpus = sampleCorpus()
	current = current.Add(failureRetryWindow)
	corpus, err = cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, corpus, 2)
	assert.Equal(t, int64(2), fetcher.calls.Load())
}

func TestSnapshotPrefersStoreOverFetch(t *testing.T) {
	fetcher := &countingFetcher{corpus: sampleCorpus()}
	store := &memoryStore{corpus: sampleCorpus()[:1], loaded: true}
	cache := NewCachedCorpus(fetcher, store, time.Hour, zap.NewNop())

	corpus, err := cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, corpus, 1)
	assert.Equal(t, int64(0), fetcher.calls.Load(), "warm store hit skips the upstream fetch")
}

func TestSnapshotSavesFetchedCorpusToStore(t *testing.T) {
	fetcher := &countingFetcher{corpus: sampleCorpus()}
	store := &memoryStore{}
	cache := NewCachedCorpus(fetcher, store, time.Hour, zap.NewNop())

	_, err := cache.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), fetcher.calls.Load())
	assert.Equal(t, 1, store.saves)
	assert.Len(t, store.corpus, 2)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	fetcher := &countingFetcher{corpus: sampleCorpus()}
	cache := NewCachedCorpus(fetcher, nil, time.Hour, zap.NewNop())

	_, err := cache.Snapshot(context.Background())
	require.NoError(t, err)

	cache.Invalidate()

	_, err = cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), fetcher.calls.Load())
}
