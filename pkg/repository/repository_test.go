package repository_test

import (
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/secmon-lab/threatlens/pkg/domain/types"
	"github.com/secmon-lab/threatlens/pkg/repository"
)

// fakeClock is a manually advanced clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func testDataset(url types.DatasetURL) *model.Dataset {
	return model.NewDataset(url, []model.Incident{{Country: "USA", Year: 2020}}, time.Now())
}

func TestMemoryGetPut(t *testing.T) {
	t.Run("miss on empty cache", func(t *testing.T) {
		repo, err := repository.NewMemory(4)
		gt.NoError(t, err).Required()

		ds, ok := repo.Get("https://example.com/a.xlsx")
		gt.False(t, ok)
		gt.True(t, ds == nil)
	})

	t.Run("hit within TTL", func(t *testing.T) {
		clock := newClock()
		repo, err := repository.NewMemory(4,
			repository.WithTTL(time.Hour),
			repository.WithClock(clock.Now),
		)
		gt.NoError(t, err).Required()

		url := types.DatasetURL("https://example.com/a.xlsx")
		stored := testDataset(url)
		repo.Put(url, stored)

		clock.Advance(59 * time.Minute)
		ds, ok := repo.Get(url)
		gt.True(t, ok)
		gt.True(t, ds == stored)
	})

	t.Run("expired at TTL", func(t *testing.T) {
		clock := newClock()
		repo, err := repository.NewMemory(4,
			repository.WithTTL(time.Hour),
			repository.WithClock(clock.Now),
		)
		gt.NoError(t, err).Required()

		url := types.DatasetURL("https://example.com/a.xlsx")
		repo.Put(url, testDataset(url))

		clock.Advance(time.Hour)
		_, ok := repo.Get(url)
		gt.False(t, ok)
		gt.Equal(t, 1, repo.Len())
	})

	t.Run("put after an expired get is kept", func(t *testing.T) {
		clock := newClock()
		repo, err := repository.NewMemory(4,
			repository.WithTTL(time.Hour),
			repository.WithClock(clock.Now),
		)
		gt.NoError(t, err).Required()

		url := types.DatasetURL("https://example.com/a.xlsx")
		repo.Put(url, testDataset(url))
		clock.Advance(2 * time.Hour)

		_, ok := repo.Get(url)
		gt.False(t, ok)

		fresh := testDataset(url)
		repo.Put(url, fresh)
		_, ok = repo.Get(url)
		gt.True(t, ok)

		ds, ok := repo.Get(url)
		gt.True(t, ok)
		gt.True(t, ds == fresh)
		gt.Equal(t, 1, repo.Len())
	})

	t.Run("keyed by URL", func(t *testing.T) {
		repo, err := repository.NewMemory(4)
		gt.NoError(t, err).Required()

		a := types.DatasetURL("https://example.com/a.xlsx")
		b := types.DatasetURL("https://example.com/b.xlsx")
		repo.Put(a, testDataset(a))

		_, ok := repo.Get(b)
		gt.False(t, ok)
		_, ok = repo.Get(a)
		gt.True(t, ok)
	})

	t.Run("last writer wins", func(t *testing.T) {
		repo, err := repository.NewMemory(4)
		gt.NoError(t, err).Required()

		url := types.DatasetURL("https://example.com/a.xlsx")
		first := testDataset(url)
		second := testDataset(url)
		repo.Put(url, first)
		repo.Put(url, second)

		ds, ok := repo.Get(url)
		gt.True(t, ok)
		gt.True(t, ds == second)
	})

	t.Run("put refreshes timestamp", func(t *testing.T) {
		clock := newClock()
		repo, err := repository.NewMemory(4,
			repository.WithTTL(time.Hour),
			repository.WithClock(clock.Now),
		)
		gt.NoError(t, err).Required()

		url := types.DatasetURL("https://example.com/a.xlsx")
		repo.Put(url, testDataset(url))
		clock.Advance(50 * time.Minute)
		repo.Put(url, testDataset(url))
		clock.Advance(50 * time.Minute)

		_, ok := repo.Get(url)
		gt.True(t, ok)
	})
}

func TestMemoryEviction(t *testing.T) {
	repo, err := repository.NewMemory(2)
	gt.NoError(t, err).Required()

	urls := []types.DatasetURL{
		"https://example.com/1.xlsx",
		"https://example.com/2.xlsx",
		"https://example.com/3.xlsx",
	}
	for _, u := range urls {
		repo.Put(u, testDataset(u))
	}

	gt.Equal(t, 2, repo.Len())
	_, ok := repo.Get(urls[0])
	gt.False(t, ok)
	_, ok = repo.Get(urls[2])
	gt.True(t, ok)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	repo, err := repository.NewMemory(4)
	gt.NoError(t, err).Required()

	url := types.DatasetURL("https://example.com/a.xlsx")
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Put(url, testDataset(url))
			repo.Get(url)
		}()
	}
	wg.Wait()

	_, ok := repo.Get(url)
	gt.True(t, ok)
}
