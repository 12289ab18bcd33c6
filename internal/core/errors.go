package core

import "errors"

var (
	// ErrInvalidDimension is returned when a grid is created with a zero or
	// negative width or height.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrMalformedGrid is returned when a text grid is empty or its rows do not
	// share the same length.
	ErrMalformedGrid = errors.New("malformed grid")
	// ErrUnknownSymbol is returned by rules whose CharToState has no mapping
	// for a character.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrOutOfBounds is returned for coordinates outside the grid extent.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrNotEditable is returned by Cycle when the rule has no edit cycle.
	ErrNotEditable = errors.New("rule does not support cell editing")
)
