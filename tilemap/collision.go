package tilemap

import "strings"

// Rows returns the number of tile rows.
func (g MergedGrid) Rows() int {
	return len(g)
}

// Cols returns the number of tile columns.
func (g MergedGrid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// IsEmpty reports whether the pixel position (px, py) falls on a passable tile
// when every tile is tileSize pixels square. Positions outside the grid are
// never empty.
func (g MergedGrid) IsEmpty(px, py, tileSize int) bool {
	if px < 0 || py < 0 || tileSize <= 0 {
		return false
	}
	tileX, tileY := px/tileSize, py/tileSize
	if tileY >= len(g) || tileX >= len(g[tileY]) {
		return false
	}
	return g[tileY][tileX] != Wall
}

// BoxIsClear reports whether all four corners of the w x h box at (x, y) are
// on passable tiles.
func (g MergedGrid) BoxIsClear(x, y, w, h, tileSize int) bool {
	right, bottom := x+w-1, y+h-1
	return g.IsEmpty(x, y, tileSize) &&
		g.IsEmpty(right, y, tileSize) &&
		g.IsEmpty(x, bottom, tileSize) &&
		g.IsEmpty(right, bottom, tileSize)
}

// String draws walls as 'X' and everything else as '.'.
func (g MergedGrid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			if v > 0 {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
