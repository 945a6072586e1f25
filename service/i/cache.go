package i

import (
	"context"
	"errors"

	dmn "github.com/beka-birhanu/vinom-tilemap/domain"
	"github.com/google/uuid"
)

var ErrCacheMiss = errors.New("cache miss")

// MapCache keeps recently served maps and serializes conversions of the same maze.
type MapCache interface {
	// Get returns the cached map or ErrCacheMiss.
	Get(ctx context.Context, id uuid.UUID) (*dmn.Map, error)

	// Set caches the map under its ID.
	Set(ctx context.Context, m *dmn.Map) error

	// Lock acquires the lock for a maze checksum and returns its release function.
	Lock(ctx context.Context, checksum string) (func(), error)
}
