// Package tilemapapi exposes converted maze maps over HTTP.
package tilemapapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-tilemap/domain"
	"github.com/beka-birhanu/vinom-tilemap/tilemap"
)

// CreateMapRequest carries generator output to convert.
type CreateMapRequest struct {
	Name  string               `json:"name" binding:"required"`
	Cells [][]tilemap.MazeCell `json:"cells" binding:"required"`
}

// MapResponse describes a stored map.
type MapResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Checksum   string             `json:"checksum"`
	SourceRows int                `json:"source_rows"`
	SourceCols int                `json:"source_cols"`
	Rows       int                `json:"rows"`
	Cols       int                `json:"cols"`
	Grid       tilemap.MergedGrid `json:"grid"`
	CreatedAt  time.Time          `json:"created_at"`
}

func newMapResponse(m *dmn.Map) *MapResponse {
	return &MapResponse{
		ID:         m.ID.String(),
		Name:       m.Name,
		Checksum:   m.Checksum,
		SourceRows: m.SourceRows,
		SourceCols: m.SourceCols,
		Rows:       m.Rows,
		Cols:       m.Cols,
		Grid:       m.Grid,
		CreatedAt:  m.CreatedAt,
	}
}
