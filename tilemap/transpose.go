package tilemap

import "fmt"

// TransposeCellsToGrid arranges the generator output, indexed cells[x][y],
// into a CellMatrix indexed [y][x]. Placement uses each cell's own X and Y, so
// the nesting order of the input does not matter as long as the coordinates
// cover the full rectangle exactly once.
func TransposeCellsToGrid(cells [][]MazeCell) (CellMatrix, error) {
	maxX, maxY, count := -1, -1, 0
	for _, col := range cells {
		for _, cell := range col {
			if cell.X < 0 || cell.Y < 0 {
				return nil, fmt.Errorf("%w: negative coordinate (%d,%d)", ErrMalformedInput, cell.X, cell.Y)
			}
			maxX = max(maxX, cell.X)
			maxY = max(maxY, cell.Y)
			count++
		}
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrMalformedInput)
	}
	// The rectangle must fit the cell count before it is allocated.
	if maxX >= count || maxY >= count {
		return nil, fmt.Errorf("%w: coordinate (%d,%d) out of range for %d cells", ErrMalformedInput, maxX, maxY, count)
	}

	rows, cols := maxY+1, maxX+1
	if rows*cols > count {
		return nil, fmt.Errorf("%w: missing cells, %d cells for a %dx%d rectangle", ErrMalformedInput, count, rows, cols)
	}

	matrix := make(CellMatrix, rows)
	filled := make([][]bool, rows)
	for y := range matrix {
		matrix[y] = make([]CellGrid, cols)
		filled[y] = make([]bool, cols)
	}

	for _, col := range cells {
		for _, cell := range col {
			if filled[cell.Y][cell.X] {
				return nil, fmt.Errorf("%w: duplicate cell at (%d,%d)", ErrMalformedInput, cell.X, cell.Y)
			}
			matrix[cell.Y][cell.X] = BuildCellGrid(cell.Walls...)
			filled[cell.Y][cell.X] = true
		}
	}

	for y := range filled {
		for x, ok := range filled[y] {
			if !ok {
				return nil, fmt.Errorf("%w: missing cell at (%d,%d)", ErrMalformedInput, x, y)
			}
		}
	}

	return matrix, nil
}
