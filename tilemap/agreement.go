package tilemap

import "fmt"

// CheckWallAgreement verifies that every pair of adjacent cells agrees about
// the wall they share. The stitcher keeps only one side of a shared border,
// so a disagreement would make the merged grid depend on placement order.
func CheckWallAgreement(cells [][]MazeCell) error {
	byPos := make(map[[2]int]MazeCell)
	for _, col := range cells {
		for _, cell := range col {
			byPos[[2]int{cell.X, cell.Y}] = cell
		}
	}

	for pos, cell := range byPos {
		if east, ok := byPos[[2]int{pos[0] + 1, pos[1]}]; ok {
			if cell.HasWall(East) != east.HasWall(West) {
				return fmt.Errorf("%w: (%d,%d) east / (%d,%d) west", ErrWallDisagreement, cell.X, cell.Y, east.X, east.Y)
			}
		}
		if south, ok := byPos[[2]int{pos[0], pos[1] + 1}]; ok {
			if cell.HasWall(South) != south.HasWall(North) {
				return fmt.Errorf("%w: (%d,%d) south / (%d,%d) north", ErrWallDisagreement, cell.X, cell.Y, south.X, south.Y)
			}
		}
	}

	return nil
}
