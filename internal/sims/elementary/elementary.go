package elementary

import (
	"fmt"
	"image/color"
	"strconv"

	"cellular/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// State is a cell of the one-dimensional automaton.
type State uint8

const (
	Off State = iota
	On
)

// Elementary runs a Wolfram code on the top row and scrolls history
// downwards: every other row takes the state of the cell above it.
type Elementary struct {
	rule uint8
}

// New creates the automaton for a Wolfram rule number.
func New(rule uint8) *Elementary { return &Elementary{rule: rule} }

// Name returns the rule identifier.
func (e *Elementary) Name() string { return "elementary " + strconv.Itoa(int(e.rule)) }

// States lists the cell states, off first.
func (e *Elementary) States() []State { return []State{Off, On} }

// NextState computes the top row from its left and right neighbors. Cells
// beyond the edges count as off.
func (e *Elementary) NextState(g core.Reader[State], current State, x, y int) (State, error) {
	n := g.VonNeumann(x, y)
	if y > 0 {
		above, _ := n.Get(core.North)
		return above, nil
	}
	left, _ := n.Get(core.West)
	right, _ := n.Get(core.East)
	idx := (uint8(left) << 2) | (uint8(current) << 1) | uint8(right)
	if idx > 7 {
		return current, fmt.Errorf("elementary: invalid state at (%d,%d)", x, y)
	}
	return State((e.rule >> idx) & 1), nil
}

// StateToChar maps on cells to '#' and off cells to '.'.
func (e *Elementary) StateToChar(s State) byte {
	if s == On {
		return '#'
	}
	return '.'
}

// CharToState is the inverse of StateToChar.
func (e *Elementary) CharToState(c byte) (State, error) {
	switch c {
	case '#':
		return On, nil
	case '.':
		return Off, nil
	}
	return Off, fmt.Errorf("elementary: %q: %w", c, core.ErrUnknownSymbol)
}

// StateToColor draws on cells white on black.
func (e *Elementary) StateToColor(s State) color.RGBA {
	if s == On {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{A: 255}
}

// CycleState toggles a cell.
func (e *Elementary) CycleState(s State) State { return 1 - s }

// Seed activates a single cell in the middle of the top row.
func (e *Elementary) Seed(_ *core.RNG, x, y int, size core.Size) State {
	if y == 0 && x == size.W/2 {
		return On
	}
	return Off
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		a, err := core.New[State](New(c.Rule), c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		return a, nil
	})
}
