package life

import (
	"fmt"
	"image/color"
	"strings"

	"cellular/internal/core"

	"github.com/zyedidia/generic/mapset"
)

// Conway is the birth/survival string of the standard Game of Life.
const Conway = "B3/S23"

// State is a Life cell.
type State uint8

const (
	Dead State = iota
	Alive
)

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Life implements Life-like automata over the Moore neighborhood without
// wrapping at the edges.
type Life struct {
	name    string
	birth   mapset.Set[int]
	survive mapset.Set[int]
}

// New returns Conway's Game of Life.
func New() *Life {
	l, _ := Parse(Conway)
	return l
}

// Parse builds a rule from a string of the form "B<digits>/S<digits>".
func Parse(rule string) (*Life, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(rule)), "/")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "B") || !strings.HasPrefix(parts[1], "S") {
		return nil, fmt.Errorf("life rule %q: want B<digits>/S<digits>", rule)
	}
	birth, err := counts(parts[0][1:])
	if err != nil {
		return nil, fmt.Errorf("life rule %q: %w", rule, err)
	}
	survive, err := counts(parts[1][1:])
	if err != nil {
		return nil, fmt.Errorf("life rule %q: %w", rule, err)
	}
	name := "life"
	if parts[0]+"/"+parts[1] != Conway {
		name = "life " + parts[0] + "/" + parts[1]
	}
	return &Life{name: name, birth: birth, survive: survive}, nil
}

func counts(digits string) (mapset.Set[int], error) {
	set := mapset.New[int]()
	for _, r := range digits {
		if r < '0' || r > '8' {
			return set, fmt.Errorf("neighbor count %q out of range 0-8", r)
		}
		set.Put(int(r - '0'))
	}
	return set, nil
}

// Name returns the rule identifier.
func (l *Life) Name() string { return l.name }

// States lists the cell states, dead first.
func (l *Life) States() []State { return []State{Dead, Alive} }

// NextState applies the birth/survival sets to the live Moore neighbor count.
func (l *Life) NextState(g core.Reader[State], current State, x, y int) (State, error) {
	live := g.Moore(x, y).Count(Alive)
	switch current {
	case Alive:
		if l.survive.Has(live) {
			return Alive, nil
		}
		return Dead, nil
	case Dead:
		if l.birth.Has(live) {
			return Alive, nil
		}
		return Dead, nil
	}
	return current, fmt.Errorf("life: invalid state %d at (%d,%d)", current, x, y)
}

// StateToChar maps alive cells to '#' and dead cells to '*'.
func (l *Life) StateToChar(s State) byte {
	if s == Alive {
		return '#'
	}
	return '*'
}

// CharToState is the inverse of StateToChar.
func (l *Life) CharToState(c byte) (State, error) {
	switch c {
	case '#':
		return Alive, nil
	case '*':
		return Dead, nil
	}
	return Dead, fmt.Errorf("life: %q: %w", c, core.ErrUnknownSymbol)
}

// StateToColor draws live cells yellow on white.
func (l *Life) StateToColor(s State) color.RGBA {
	if s == Alive {
		return color.RGBA{R: 255, G: 255, A: 255}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

// CycleState toggles a cell.
func (l *Life) CycleState(s State) State {
	if s == Alive {
		return Dead
	}
	return Alive
}

// Seed fills the board with live cells at even odds.
func (l *Life) Seed(rng *core.RNG, x, y int, size core.Size) State {
	if rng.Bool() {
		return Alive
	}
	return Dead
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		rule, err := Parse(c.Rule)
		if err != nil {
			return nil, err
		}
		a, err := core.New[State](rule, c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		return a, nil
	})
}
