package tilemap

// BuildCellGrid returns a floor-filled CellGrid with the edge of every listed
// wall set to Wall. Walls compose by union so the order of walls does not
// matter; unknown wall names are ignored.
func BuildCellGrid(walls ...string) CellGrid {
	var grid CellGrid
	last := CellGridSize - 1

	for _, w := range walls {
		switch WallDirection(w) {
		case West:
			for i := 0; i < CellGridSize; i++ {
				grid[i][0] = Wall
			}
		case East:
			for i := 0; i < CellGridSize; i++ {
				grid[i][last] = Wall
			}
		case North:
			for i := 0; i < CellGridSize; i++ {
				grid[0][i] = Wall
			}
		case South:
			for i := 0; i < CellGridSize; i++ {
				grid[last][i] = Wall
			}
		}
	}

	return grid
}
