package tilemap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// modulePrefix starts the JS module form of a map, imported by the game as
// its default export.
const modulePrefix = "export default "

// Encode renders the grid as a nested array literal, one row per line:
//
//	[
//	  [1,1,1,1],
//	  [1,0,0,1]
//	]
//
// The output is valid JSON and is the inverse of Parse.
func Encode(grid MergedGrid) []byte {
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for y, row := range grid {
		if y > 0 {
			buf.WriteString(",\n")
		}
		buf.WriteString("  [")
		for x, v := range row {
			if x > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Itoa(v))
		}
		buf.WriteByte(']')
	}
	buf.WriteString("\n]")
	return buf.Bytes()
}

// EncodeModule renders the grid as a JS module whose default export is the
// Encode literal.
func EncodeModule(grid MergedGrid) []byte {
	out := append([]byte(modulePrefix), Encode(grid)...)
	return append(out, '\n')
}

// Parse decodes an encoded grid, rejecting empty, ragged or non-binary content.
func Parse(data []byte) (MergedGrid, error) {
	var grid MergedGrid
	if err := json.Unmarshal(data, &grid); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return grid, nil
}

// ParseModule decodes the output of EncodeModule.
func ParseModule(data []byte) (MergedGrid, error) {
	trimmed := bytes.TrimSpace(data)
	if !bytes.HasPrefix(trimmed, []byte(modulePrefix)) {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedInput, modulePrefix)
	}
	return Parse(bytes.TrimSuffix(trimmed[len(modulePrefix):], []byte(";")))
}

// Validate checks the grid is non-empty, rectangular and holds only Empty or Wall.
func (g MergedGrid) Validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return fmt.Errorf("%w: empty grid", ErrMalformedInput)
	}
	cols := len(g[0])
	for y, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrMalformedInput, y, len(row), cols)
		}
		for x, v := range row {
			if v != Empty && v != Wall {
				return fmt.Errorf("%w: value %d at (%d,%d) is not binary", ErrMalformedInput, v, x, y)
			}
		}
	}
	return nil
}
