package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"slices"
	"time"

	"github.com/beka-birhanu/vinom-tilemap/tilemap"
	"github.com/google/uuid"
)

var ErrMapNotFound = errors.New("map not found")

// Map is a converted maze stored for the game to load.
type Map struct {
	ID         uuid.UUID          `bson:"_id" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Checksum   string             `bson:"checksum" json:"checksum"`
	SourceRows int                `bson:"sourceRows" json:"source_rows"`
	SourceCols int                `bson:"sourceCols" json:"source_cols"`
	Rows       int                `bson:"rows" json:"rows"`
	Cols       int                `bson:"cols" json:"cols"`
	Grid       tilemap.MergedGrid `bson:"grid" json:"grid"`
	CreatedAt  time.Time          `bson:"createdAt" json:"created_at"`
}

// NewMap converts the generator output and wraps the result in a Map.
func NewMap(name string, cells [][]tilemap.MazeCell) (*Map, error) {
	checksum, err := Checksum(cells)
	if err != nil {
		return nil, err
	}

	grid, err := tilemap.Convert(cells)
	if err != nil {
		return nil, err
	}

	return &Map{
		ID:         uuid.New(),
		Name:       name,
		Checksum:   checksum,
		SourceRows: (grid.Rows() - 1) / (tilemap.CellGridSize - 1),
		SourceCols: (grid.Cols() - 1) / (tilemap.CellGridSize - 1),
		Rows:       grid.Rows(),
		Cols:       grid.Cols(),
		Grid:       grid,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Checksum identifies a maze independently of the nesting order of its cells
// and the order of each cell's walls.
func Checksum(cells [][]tilemap.MazeCell) (string, error) {
	var flat []tilemap.MazeCell
	for _, col := range cells {
		for _, cell := range col {
			walls := slices.Clone(cell.Walls)
			slices.Sort(walls)
			flat = append(flat, tilemap.MazeCell{X: cell.X, Y: cell.Y, Walls: slices.Compact(walls)})
		}
	}
	slices.SortFunc(flat, func(a, b tilemap.MazeCell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})

	data, err := json.Marshal(flat)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
