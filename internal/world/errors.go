package world

import "errors"

var (
	ErrOutOfBounds       = errors.New("coordinates out of bounds")
	ErrInvalidDimensions = errors.New("map dimensions must be positive")
	ErrCellOccupied      = errors.New("cell is occupied")
)
