package wireworld

import (
	"fmt"
	"image/color"
	"strconv"

	"cellular/internal/core"
)

// State is a Wireworld cell.
type State uint8

const (
	Empty State = iota
	ElectronHead
	ElectronTail
	Conductor
)

var stateNames = [...]string{"empty", "head", "tail", "conductor"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// Wireworld implements Brian Silverman's Wireworld: electron heads decay to
// tails, tails decay to conductor, and conductor fires when one or two heads
// touch it.
type Wireworld struct{}

// New returns the Wireworld rule.
func New() *Wireworld { return &Wireworld{} }

// Name returns the rule identifier.
func (Wireworld) Name() string { return "wireworld" }

// States lists the cell states, empty first.
func (Wireworld) States() []State {
	return []State{Empty, ElectronHead, ElectronTail, Conductor}
}

// NextState advances a single cell.
func (Wireworld) NextState(g core.Reader[State], current State, x, y int) (State, error) {
	switch current {
	case Empty:
		return Empty, nil
	case ElectronHead:
		return ElectronTail, nil
	case ElectronTail:
		return Conductor, nil
	case Conductor:
		heads := g.Moore(x, y).Count(ElectronHead)
		if heads == 1 || heads == 2 {
			return ElectronHead, nil
		}
		return Conductor, nil
	}
	return current, fmt.Errorf("wireworld: invalid state %d at (%d,%d)", current, x, y)
}

// StateToChar maps states to ' ', '*', 'o' and '#'.
func (Wireworld) StateToChar(s State) byte {
	switch s {
	case ElectronHead:
		return '*'
	case ElectronTail:
		return 'o'
	case Conductor:
		return '#'
	default:
		return ' '
	}
}

// CharToState is the inverse of StateToChar.
func (Wireworld) CharToState(c byte) (State, error) {
	switch c {
	case ' ':
		return Empty, nil
	case '*':
		return ElectronHead, nil
	case 'o':
		return ElectronTail, nil
	case '#':
		return Conductor, nil
	}
	return Empty, fmt.Errorf("wireworld: %q: %w", c, core.ErrUnknownSymbol)
}

// StateToColor returns the display color of s.
func (Wireworld) StateToColor(s State) color.RGBA {
	switch s {
	case ElectronHead:
		return color.RGBA{B: 255, A: 255}
	case ElectronTail:
		return color.RGBA{R: 255, A: 255}
	case Conductor:
		return color.RGBA{R: 255, G: 255, A: 255}
	default:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
}

// CycleState lays wire on empty cells, fires conductor and clears the rest.
func (Wireworld) CycleState(s State) State {
	switch s {
	case Empty:
		return Conductor
	case Conductor:
		return ElectronHead
	default:
		return Empty
	}
}

// Config controls the Wireworld board dimensions.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns a 20x20 board.
func DefaultConfig() Config {
	return Config{Width: 20, Height: 20}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
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
	return c
}

func init() {
	core.Register("wireworld", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		a, err := core.New[State](New(), c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		return a, nil
	})
}
