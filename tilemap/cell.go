/*
Package tilemap converts a maze generator's cell/wall description into the
binary tile grid the maze game renders and collides against.

Every maze cell is expanded into a 4x4 CellGrid whose outer ring carries the
cell's walls. The CellGrids are arranged into a CellMatrix and stitched into a
single MergedGrid in which neighbouring cells share their border row/column.
*/
package tilemap

// WallDirection names one side of a maze cell, in the generator's vocabulary.
type WallDirection string

const (
	North WallDirection = "north"
	South WallDirection = "south"
	East  WallDirection = "east"
	West  WallDirection = "west"
)

// Tile values of a MergedGrid. Only Empty and Wall are produced by the
// converter; the remaining values are reserved for hand-edited maps.
const (
	Empty = 0
	Wall  = 1
	Star  = 2
	Start = 3
	End   = 4
)

// CellGridSize is the width and height of a single CellGrid.
const CellGridSize = 4

// MazeCell is a single cell of the source maze as emitted by the generator.
type MazeCell struct {
	X     int      `json:"x"`     // Column in the source maze
	Y     int      `json:"y"`     // Row in the source maze
	Walls []string `json:"walls"` // Walled sides, e.g. ["north", "west"]
}

// HasWall reports whether the cell lists the given wall.
func (c MazeCell) HasWall(d WallDirection) bool {
	for _, w := range c.Walls {
		if WallDirection(w) == d {
			return true
		}
	}
	return false
}

// CellGrid is one MazeCell rendered at double resolution.
type CellGrid [CellGridSize][CellGridSize]int

// CellMatrix holds CellGrids indexed [row][col].
type CellMatrix [][]CellGrid

// MergedGrid is the stitched tile grid indexed [row][col].
type MergedGrid [][]int
