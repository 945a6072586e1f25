package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	dmn "github.com/beka-birhanu/vinom-tilemap/domain"
	"github.com/beka-birhanu/vinom-tilemap/service/i"
	"github.com/beka-birhanu/vinom-tilemap/tilemap"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu    sync.Mutex
	maps  map[uuid.UUID]*dmn.Map
	saves int
}

func newMemRepo() *memRepo {
	return &memRepo{maps: make(map[uuid.UUID]*dmn.Map)}
}

func (r *memRepo) Save(_ context.Context, m *dmn.Map) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.maps[m.ID] = m
	r.saves++
	return nil
}

func (r *memRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Map, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.maps[id]; ok {
		return m, nil
	}
	return nil, dmn.ErrMapNotFound
}

func (r *memRepo) ByChecksum(_ context.Context, checksum string) (*dmn.Map, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.maps {
		if m.Checksum == checksum {
			return m, nil
		}
	}
	return nil, dmn.ErrMapNotFound
}

type memCache struct {
	mu      sync.Mutex
	maps    map[uuid.UUID]*dmn.Map
	locks   sync.Map
	hits    int
	lockErr error
}

func newMemCache() *memCache {
	return &memCache{maps: make(map[uuid.UUID]*dmn.Map)}
}

func (c *memCache) Get(_ context.Context, id uuid.UUID) (*dmn.Map, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.maps[id]; ok {
		c.hits++
		return m, nil
	}
	return nil, i.ErrCacheMiss
}

func (c *memCache) Set(_ context.Context, m *dmn.Map) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maps[m.ID] = m
	return nil
}

func (c *memCache) Lock(_ context.Context, checksum string) (func(), error) {
	if c.lockErr != nil {
		return nil, c.lockErr
	}
	mu, _ := c.locks.LoadOrStore(checksum, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	return mu.(*sync.Mutex).Unlock, nil
}

func sampleCells() [][]tilemap.MazeCell {
	return [][]tilemap.MazeCell{
		{{X: 0, Y: 0, Walls: []string{"north", "west", "south"}}},
		{{X: 1, Y: 0, Walls: []string{"north", "east", "south"}}},
	}
}

func TestNewMapService(t *testing.T) {
	_, err := NewMapService(nil, newMemCache(), nil)
	assert.ErrorIs(t, err, ErrMissingDependency)

	_, err = NewMapService(newMemRepo(), nil, nil)
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestMapsCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores and caches the map", func(t *testing.T) {
		repo, cache := newMemRepo(), newMemCache()
		svc, err := NewMapService(repo, cache, nil)
		require.NoError(t, err)

		m, err := svc.Create(ctx, "corridor", sampleCells())
		require.NoError(t, err)
		assert.Equal(t, 7, m.Cols)
		assert.Equal(t, 4, m.Rows)
		assert.Contains(t, repo.maps, m.ID)
		assert.Contains(t, cache.maps, m.ID)
	})

	t.Run("Same maze is converted once", func(t *testing.T) {
		repo, cache := newMemRepo(), newMemCache()
		svc, err := NewMapService(repo, cache, nil)
		require.NoError(t, err)

		var wg sync.WaitGroup
		ids := make([]uuid.UUID, 8)
		for n := range ids {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				m, err := svc.Create(ctx, "corridor", sampleCells())
				assert.NoError(t, err)
				if m != nil {
					ids[n] = m.ID
				}
			}(n)
		}
		wg.Wait()

		assert.Equal(t, 1, repo.saves)
		for _, id := range ids {
			assert.Equal(t, ids[0], id)
		}
	})

	t.Run("Malformed maze", func(t *testing.T) {
		svc, err := NewMapService(newMemRepo(), newMemCache(), nil)
		require.NoError(t, err)

		_, err = svc.Create(ctx, "broken", [][]tilemap.MazeCell{{{X: 2, Y: 0}}})
		assert.ErrorIs(t, err, tilemap.ErrMalformedInput)
	})

	t.Run("Lock failure", func(t *testing.T) {
		cache := newMemCache()
		cache.lockErr = errors.New("redis down")
		svc, err := NewMapService(newMemRepo(), cache, nil)
		require.NoError(t, err)

		_, err = svc.Create(ctx, "corridor", sampleCells())
		assert.EqualError(t, err, "redis down")
	})
}

func TestMapsByID(t *testing.T) {
	ctx := context.Background()
	repo, cache := newMemRepo(), newMemCache()
	svc, err := NewMapService(repo, cache, nil)
	require.NoError(t, err)

	stored, err := dmn.NewMap("corridor", sampleCells())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, stored))

	t.Run("Miss falls back to the repository", func(t *testing.T) {
		m, err := svc.ByID(ctx, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored, m)
		assert.Contains(t, cache.maps, stored.ID)
	})

	t.Run("Hit is served from cache", func(t *testing.T) {
		_, err := svc.ByID(ctx, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, cache.hits)
	})

	t.Run("Unknown map", func(t *testing.T) {
		_, err := svc.ByID(ctx, uuid.New())
		assert.ErrorIs(t, err, dmn.ErrMapNotFound)
	})
}
