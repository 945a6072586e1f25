/*
Package maze generates rectangular perfect mazes with Wilson's algorithm.

A generated Maze is exported in the same shape a third-party maze generator
emits: a slice of columns, each holding the cells of that column with their
x/y coordinates and the names of their walled sides. That output feeds the
tilemap converter directly.
*/
package maze

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-tilemap/tilemap"
)

const (
	maxMazeDimension = 100
)

var (
	// directions is ordered so that a seeded maze is reproducible.
	directions = []struct {
		name  string
		delta CellPosition
	}{
		{"North", CellPosition{Row: -1, Col: 0}},
		{"South", CellPosition{Row: 1, Col: 0}},
		{"East", CellPosition{Row: 0, Col: 1}},
		{"West", CellPosition{Row: 0, Col: -1}},
	}

	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)

// Maze represents a rectangular maze consisting of cells with walls.
type Maze struct {
	Width  int       // Width of the maze (number of columns)
	Height int       // Height of the maze (number of rows)
	Grid   [][]*Cell // 2D grid of cells indexed [row][col]

	rng *rand.Rand
}

// New initializes a maze of the given dimensions and carves it.
// A zero seed selects a time based one.
func New(width, height int, seed int64) (*Maze, error) {
	if min(width, height) <= 0 || max(width, height) > maxMazeDimension {
		return nil, ErrInvalidDimensions
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid := make([][]*Cell, height)
	for i := range grid {
		grid[i] = make([]*Cell, width)
		for j := range grid[i] {
			grid[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	m := &Maze{
		Width:  width,
		Height: height,
		Grid:   grid,
		rng:    rand.New(rand.NewSource(seed)),
	}
	m.generateMaze()
	return m, nil
}

// randomCellPosition generates a random position within the maze.
func (m *Maze) randomCellPosition() CellPosition {
	return CellPosition{Row: m.rng.Intn(m.Height), Col: m.rng.Intn(m.Width)}
}

// randomUnvisitedCellPosition picks uniformly among the cells not yet in the maze.
func (m *Maze) randomUnvisitedCellPosition(visited map[CellPosition]struct{}) CellPosition {
	unvisited := make([]CellPosition, 0, m.Width*m.Height-len(visited))
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			pos := CellPosition{Row: row, Col: col}
			if _, ok := visited[pos]; !ok {
				unvisited = append(unvisited, pos)
			}
		}
	}
	return unvisited[m.rng.Intn(len(unvisited))]
}

// neighbors finds all in-bound moves from a given cell position.
func (m *Maze) neighbors(pos CellPosition) []Move {
	result := make([]Move, 0, len(directions))
	for _, d := range directions {
		neighbor := CellPosition{Row: pos.Row + d.delta.Row, Col: pos.Col + d.delta.Col}
		if neighbor.Row >= 0 && neighbor.Row < m.Height && neighbor.Col >= 0 && neighbor.Col < m.Width {
			result = append(result, Move{From: pos, To: neighbor, Direction: d.name})
		}
	}
	return result
}

// openWall removes the wall between two adjacent cells on both sides.
func (m *Maze) openWall(move Move) {
	from := m.Grid[move.From.Row][move.From.Col]
	to := m.Grid[move.To.Row][move.To.Col]
	switch move.Direction {
	case "North":
		from.NorthWall, to.SouthWall = false, false
	case "South":
		from.SouthWall, to.NorthWall = false, false
	case "East":
		from.EastWall, to.WestWall = false, false
	case "West":
		from.WestWall, to.EastWall = false, false
	}
}

// randomWalk walks from an unvisited cell until it hits the maze, keeping the
// last exit taken from each cell. Last exits form a loop-free path into the maze.
func (m *Maze) randomWalk(visited map[CellPosition]struct{}) map[CellPosition]Move {
	cell := m.randomUnvisitedCellPosition(visited)
	visits := make(map[CellPosition]Move)

	for {
		neighbors := m.neighbors(cell)
		next := neighbors[m.rng.Intn(len(neighbors))]
		visits[cell] = next
		if _, included := visited[next.To]; included {
			break
		}
		cell = next.To
	}

	return visits
}

// generateMaze carves the maze with Wilson's algorithm.
func (m *Maze) generateMaze() {
	visited := make(map[CellPosition]struct{})
	visited[m.randomCellPosition()] = struct{}{}

	for len(visited) < m.Width*m.Height {
		for cell, move := range m.randomWalk(visited) {
			m.openWall(move)
			visited[cell] = struct{}{}
		}
	}
}

// Cells exports the maze as generator output, indexed [x][y].
func (m *Maze) Cells() [][]tilemap.MazeCell {
	cells := make([][]tilemap.MazeCell, m.Width)
	for x := range cells {
		cells[x] = make([]tilemap.MazeCell, m.Height)
		for y := range cells[x] {
			cells[x][y] = tilemap.MazeCell{X: x, Y: y, Walls: m.Grid[y][x].Walls()}
		}
	}
	return cells
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var sb strings.Builder

	sb.WriteString("+" + strings.Repeat("---+", m.Width) + "\n")
	for row := 0; row < m.Height; row++ {
		sb.WriteString("|")
		for col := 0; col < m.Width; col++ {
			if m.Grid[row][col].EastWall {
				sb.WriteString("   |")
			} else {
				sb.WriteString("    ")
			}
		}
		sb.WriteString("\n+")
		for col := 0; col < m.Width; col++ {
			if m.Grid[row][col].SouthWall {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
