package engine

import "errors"

var (
	ErrInvalidColumn     = errors.New("column is outside the grid")
	ErrColumnFull        = errors.New("column is full")
	ErrGameOver          = errors.New("game is already over")
	ErrOutOfBounds       = errors.New("cell is outside the grid")
	ErrInvalidDimensions = errors.New("rows and columns must be positive")
	ErrInvalidRunLength  = errors.New("run length must be at least 2")
	ErrInvalidPlayer     = errors.New("owner is not a player")
)
