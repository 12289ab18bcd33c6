package briansbrain

import (
	"fmt"
	"image/color"
	"strconv"

	"cellular/internal/core"
)

// State is a Brian's Brain cell.
type State uint8

const (
	Dead State = iota
	On
	Dying
)

func (s State) String() string {
	switch s {
	case Dead:
		return "dead"
	case On:
		return "on"
	case Dying:
		return "dying"
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// Brain implements Brian's Brain cellular automaton.
type Brain struct{}

// New returns the Brian's Brain rule.
func New() *Brain { return &Brain{} }

// Name identifies the rule.
func (Brain) Name() string { return "briansbrain" }

// States lists the cell states, dead first.
func (Brain) States() []State { return []State{Dead, On, Dying} }

// NextState fires dead cells with exactly two firing Moore neighbors.
func (Brain) NextState(g core.Reader[State], current State, x, y int) (State, error) {
	switch current {
	case On:
		return Dying, nil
	case Dying:
		return Dead, nil
	case Dead:
		if g.Moore(x, y).Count(On) == 2 {
			return On, nil
		}
		return Dead, nil
	}
	return current, fmt.Errorf("briansbrain: invalid state %d at (%d,%d)", current, x, y)
}

// StateToChar maps states to '.', 'O' and 'o'.
func (Brain) StateToChar(s State) byte {
	switch s {
	case On:
		return 'O'
	case Dying:
		return 'o'
	default:
		return '.'
	}
}

// CharToState is the inverse of StateToChar.
func (Brain) CharToState(c byte) (State, error) {
	switch c {
	case '.':
		return Dead, nil
	case 'O':
		return On, nil
	case 'o':
		return Dying, nil
	}
	return Dead, fmt.Errorf("briansbrain: %q: %w", c, core.ErrUnknownSymbol)
}

// StateToColor returns the display color of s.
func (Brain) StateToColor(s State) color.RGBA {
	switch s {
	case On:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case Dying:
		return color.RGBA{R: 40, G: 90, B: 200, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}

// CycleState steps dead → on → dying → dead.
func (Brain) CycleState(s State) State {
	return (s + 1) % 3
}

// Seed randomizes cells into dead or firing states.
func (Brain) Seed(rng *core.RNG, x, y int, size core.Size) State {
	if rng.OneIn(8) {
		return On
	}
	return Dead
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) (core.Sim, error) {
		w, h := 256, 256
		if v, err := strconv.Atoi(cfg["w"]); err == nil && v > 0 {
			w = v
		}
		if v, err := strconv.Atoi(cfg["h"]); err == nil && v > 0 {
			h = v
		}
		a, err := core.New[State](New(), w, h)
		if err != nil {
			return nil, err
		}
		return a, nil
	})
}
