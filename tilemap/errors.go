package tilemap

import "errors"

var (
	// ErrMalformedInput indicates the maze description does not describe a
	// complete rectangle of cells, or a grid is not rectangular.
	ErrMalformedInput = errors.New("tilemap: malformed input")
	// ErrWallDisagreement indicates two adjacent cells disagree about their shared wall.
	ErrWallDisagreement = errors.New("tilemap: adjacent cells disagree about shared wall")
)
