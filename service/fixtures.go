package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beka-birhanu/vinom-tilemap/maze"
)

// FixtureSizes are the square maze sizes the game ships maps for.
var FixtureSizes = []int{3, 11, 100}

// GenerateFixtures writes, for every size, a generated maze
// "input-maze-NxN.json" and its converted map "map-NxN.json" into dir.
func (c *Converter) GenerateFixtures(dir string, sizes []int, seed int64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	for idx, size := range sizes {
		mazeSeed := seed
		if seed != 0 {
			mazeSeed = seed + int64(idx)
		}
		m, err := maze.New(size, size, mazeSeed)
		if err != nil {
			return fmt.Errorf("generating %dx%d maze: %w", size, size, err)
		}

		inPath := filepath.Join(dir, fmt.Sprintf("input-maze-%dx%d.json", size, size))
		if err := WriteCells(inPath, m.Cells()); err != nil {
			return err
		}

		outPath := filepath.Join(dir, fmt.Sprintf("map-%dx%d.json", size, size))
		if err := c.ConvertFile(inPath, outPath); err != nil {
			return err
		}
	}
	return nil
}
