package tilemap

import "fmt"

// MergedSize returns the dimensions of the grid produced by stitching a
// rows x cols CellMatrix. Neighbouring CellGrids share one row or column.
func MergedSize(rows, cols int) (int, int) {
	return rows*CellGridSize - (rows - 1), cols*CellGridSize - (cols - 1)
}

// MergeCellGrids stitches a CellMatrix into one MergedGrid.
//
// Grids are placed row-major. Every matrix row after the first skips its
// grids' top row, and every column after the first drops its grids' left
// column, so a shared border is written once by whichever grid reaches it
// first in that order. Values are overwritten, never OR-combined.
func MergeCellGrids(matrix CellMatrix) (MergedGrid, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, fmt.Errorf("%w: empty cell matrix", ErrMalformedInput)
	}
	cols := len(matrix[0])
	for y, row := range matrix {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: matrix row %d has %d columns, want %d", ErrMalformedInput, y, len(row), cols)
		}
	}

	outRows, outCols := MergedSize(len(matrix), cols)
	output := make(MergedGrid, outRows)

	for y, row := range matrix {
		yOffset := y * (CellGridSize - 1)
		for x, grid := range row {
			start := 1
			if y == 0 {
				start = 0
			}
			for gy := start; gy < CellGridSize; gy++ {
				if x == 0 {
					output[gy+yOffset] = make([]int, CellGridSize, outCols)
					copy(output[gy+yOffset], grid[gy][:])
				} else {
					output[gy+yOffset] = append(output[gy+yOffset], grid[gy][1:]...)
				}
			}
		}
	}

	return output, nil
}

// Convert runs the whole pipeline on generator output: transpose, expand
// each cell and stitch.
func Convert(cells [][]MazeCell) (MergedGrid, error) {
	matrix, err := TransposeCellsToGrid(cells)
	if err != nil {
		return nil, err
	}
	return MergeCellGrids(matrix)
}
