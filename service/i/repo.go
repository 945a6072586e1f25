package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-tilemap/domain"
	"github.com/google/uuid"
)

// MapRepo defines the interface for map persistence operations.
type MapRepo interface {
	// Save inserts or updates a map in the repository.
	Save(ctx context.Context, m *dmn.Map) error

	// ByID retrieves a map by its unique ID.
	// Returns dmn.ErrMapNotFound if no map has that ID.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Map, error)

	// ByChecksum retrieves the map converted from the maze with the given checksum.
	// Returns dmn.ErrMapNotFound if the maze was never converted.
	ByChecksum(ctx context.Context, checksum string) (*dmn.Map, error)
}
