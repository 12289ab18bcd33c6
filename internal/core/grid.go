package core

import (
	"fmt"
	"math"
)

// State is the constraint satisfied by cell state enumerations. The zero value
// of a state type is its default state, so rules declare states with iota and
// list the empty state first.
type State interface {
	~uint8
}

// Grid stores two equally sized generations of cells in row-major order.
// Reads and writes through At and Set always target the current generation;
// the next generation is only written by Automaton.Step.
type Grid[S State] struct {
	w, h int
	cur  []S
	nxt  []S
}

// NewGrid allocates a grid with every cell in the default state.
func NewGrid[S State](w, h int) (*Grid[S], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrInvalidDimension)
	}
	if w > math.MaxInt/h {
		return nil, fmt.Errorf("%dx%d: cell count overflows: %w", w, h, ErrInvalidDimension)
	}
	return &Grid[S]{w: w, h: h, cur: make([]S, w*h), nxt: make([]S, w*h)}, nil
}

// Width returns the number of columns.
func (g *Grid[S]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[S]) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid[S]) Size() Size { return Size{W: g.w, H: g.h} }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[S]) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Index returns the linear slice index for coordinates (x, y). It does not
// bounds-check.
func (g *Grid[S]) Index(x, y int) int { return y*g.w + x }

// At returns the current state of the cell at (x, y).
func (g *Grid[S]) At(x, y int) (S, error) {
	if !g.InBounds(x, y) {
		var zero S
		return zero, g.boundsError(x, y)
	}
	return g.cur[g.Index(x, y)], nil
}

// Set overwrites the current state of the cell at (x, y).
func (g *Grid[S]) Set(x, y int, s S) error {
	if !g.InBounds(x, y) {
		return g.boundsError(x, y)
	}
	g.cur[g.Index(x, y)] = s
	return nil
}

// Cells exposes the current generation. Callers must not retain it across a
// Step since the buffers are swapped.
func (g *Grid[S]) Cells() []S { return g.cur }

// Fill sets every cell of the current generation to s.
func (g *Grid[S]) Fill(s S) {
	for i := range g.cur {
		g.cur[i] = s
	}
}

// at reads the current generation without a bounds check.
func (g *Grid[S]) at(x, y int) S { return g.cur[y*g.w+x] }

func (g *Grid[S]) swap() { g.cur, g.nxt = g.nxt, g.cur }

func (g *Grid[S]) boundsError(x, y int) error {
	return fmt.Errorf("(%d,%d) in %dx%d grid: %w", x, y, g.w, g.h, ErrOutOfBounds)
}
