package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-tilemap/domain"
	"github.com/beka-birhanu/vinom-tilemap/tilemap"
	"github.com/google/uuid"
)

// MapService converts uploaded mazes and serves the stored maps.
type MapService interface {
	// Create converts the generator output and stores the resulting map.
	// Uploading the same maze twice returns the map stored the first time.
	Create(ctx context.Context, name string, cells [][]tilemap.MazeCell) (*dmn.Map, error)

	// ByID returns a stored map.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Map, error)
}
