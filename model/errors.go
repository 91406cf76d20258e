package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is constructed with a non-positive size
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrOutOfRange is returned when a coordinate falls outside the grid
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrUninitializedGrid is returned when cells are queried before the grid is populated
	ErrUninitializedGrid = errors.New("grid is not populated")
)
