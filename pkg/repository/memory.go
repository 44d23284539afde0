package repository

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatlens/pkg/domain/interfaces"
	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/secmon-lab/threatlens/pkg/domain/types"
)

const (
	// DefaultTTL is how long a loaded dataset is served before refetching
	DefaultTTL = time.Hour
	// DefaultSize bounds the number of distinct dataset URLs held at once
	DefaultSize = 16
)

type cacheEntry struct {
	dataset  *model.Dataset
	storedAt time.Time
}

// Memory implements DatasetCache with an in-memory LRU keyed by URL.
// Entries expire once they are TTL old. Concurrent Puts for the same URL
// are last-writer-wins.
type Memory struct {
	entries *lru.Cache[types.DatasetURL, cacheEntry]
	ttl     time.Duration
	now     func() time.Time
}

// MemoryOption is a functional option for configuring Memory
type MemoryOption func(*Memory)

// WithTTL sets the maximum age of a cached dataset
func WithTTL(ttl time.Duration) MemoryOption {
	return func(m *Memory) {
		m.ttl = ttl
	}
}

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		m.now = now
	}
}

// NewMemory creates a new memory dataset cache holding at most size URLs
func NewMemory(size int, opts ...MemoryOption) (*Memory, error) {
	if size <= 0 {
		size = DefaultSize
	}

	entries, err := lru.New[types.DatasetURL, cacheEntry](size)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create dataset cache", goerr.V("size", size))
	}

	m := &Memory{
		entries: entries,
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

var _ interfaces.DatasetCache = (*Memory)(nil)

// Get returns the dataset for url if it was stored less than TTL ago. An
// expired entry stays in place until the next Put for url replaces it.
func (m *Memory) Get(url types.DatasetURL) (*model.Dataset, bool) {
	entry, ok := m.entries.Get(url)
	if !ok {
		return nil, false
	}

	if m.now().Sub(entry.storedAt) >= m.ttl {
		return nil, false
	}

	return entry.dataset, true
}

// Put stores a dataset with the current clock time
func (m *Memory) Put(url types.DatasetURL, dataset *model.Dataset) {
	m.entries.Add(url, cacheEntry{
		dataset:  dataset,
		storedAt: m.now(),
	})
}

// Len returns the number of entries, including expired ones not yet evicted
func (m *Memory) Len() int {
	return m.entries.Len()
}
