package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beka-birhanu/vinom-tilemap/service/i"
	"github.com/beka-birhanu/vinom-tilemap/tilemap"
)

var (
	ErrReadInput   = errors.New("reading maze input")
	ErrParseInput  = errors.New("parsing maze input")
	ErrWriteOutput = errors.New("writing map output")
)

// Converter turns generator output files into map files.
type Converter struct {
	logger i.Logger
	strict bool
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// ConverterWithStrictWalls rejects mazes whose neighbouring cells disagree
// about a shared wall instead of letting placement order decide.
func ConverterWithStrictWalls() ConverterOption {
	return func(c *Converter) {
		c.strict = true
	}
}

// NewConverter creates a Converter. A nil logger discards log output.
func NewConverter(logger i.Logger, opts ...ConverterOption) *Converter {
	if logger == nil {
		logger = nopLogger{}
	}
	c := &Converter{logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReadCells decodes generator output.
func ReadCells(r io.Reader) ([][]tilemap.MazeCell, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	var cells [][]tilemap.MazeCell
	if err := json.Unmarshal(data, &cells); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseInput, err)
	}
	return cells, nil
}

// Convert reads generator output and returns the merged tile grid.
func (c *Converter) Convert(r io.Reader) (tilemap.MergedGrid, error) {
	cells, err := ReadCells(r)
	if err != nil {
		return nil, err
	}

	if c.strict {
		if err := tilemap.CheckWallAgreement(cells); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseInput, err)
		}
	}

	grid, err := tilemap.Convert(cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseInput, err)
	}
	return grid, nil
}

// ConvertFile converts the maze at inPath and writes the map to outPath.
// A ".js" destination gets the JS module form, anything else the plain
// array literal. Nothing is written unless the whole conversion succeeds.
func (c *Converter) ConvertFile(inPath, outPath string) error {
	f, err := os.Open(inPath)
	if err != nil {
		c.logger.Error(fmt.Sprintf("opening %s: %v", inPath, err))
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	defer f.Close()

	grid, err := c.Convert(f)
	if err != nil {
		c.logger.Error(fmt.Sprintf("converting %s: %v", inPath, err))
		return err
	}

	data := tilemap.Encode(grid)
	if strings.EqualFold(filepath.Ext(outPath), ".js") {
		data = tilemap.EncodeModule(grid)
	}

	if err := writeFileAtomic(outPath, data); err != nil {
		c.logger.Error(fmt.Sprintf("writing %s: %v", outPath, err))
		return err
	}

	c.logger.Info(fmt.Sprintf("converted %s -> %s (%dx%d tiles)", inPath, outPath, grid.Cols(), grid.Rows()))
	return nil
}

// WriteCells stores generator output as JSON at path.
func WriteCells(path string, cells [][]tilemap.MazeCell) error {
	data, err := json.Marshal(cells)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return writeFileAtomic(path, data)
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// into place, so readers never observe a partial file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(string) {}
