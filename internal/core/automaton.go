package core

import (
	"fmt"
	"image/color"
	"strconv"
)

// Automaton owns a double-buffered grid and advances it with a rule.
type Automaton[S State] struct {
	rule Rule[S]
	grid *Grid[S]
	gen  int

	// origin holds the pattern the grid was last loaded from, if any.
	origin []S

	display []uint8
	palette []color.RGBA
}

// New returns an automaton of w*h cells in the rule's default state.
func New[S State](rule Rule[S], w, h int) (*Automaton[S], error) {
	g, err := NewGrid[S](w, h)
	if err != nil {
		return nil, err
	}
	return &Automaton[S]{rule: rule, grid: g}, nil
}

// FromText builds an automaton by parsing blob with the rule's CharToState.
func FromText[S State](rule Rule[S], blob string, delim byte) (*Automaton[S], error) {
	g, err := ParseGrid(blob, delim, rule.CharToState)
	if err != nil {
		return nil, err
	}
	return &Automaton[S]{rule: rule, grid: g, origin: clone(g.cur)}, nil
}

// Rule returns the transition rule.
func (a *Automaton[S]) Rule() Rule[S] { return a.rule }

// Grid exposes the underlying grid for read-only inspection.
func (a *Automaton[S]) Grid() Reader[S] { return a.grid }

// Name returns the rule name.
func (a *Automaton[S]) Name() string { return a.rule.Name() }

// Width returns the number of columns.
func (a *Automaton[S]) Width() int { return a.grid.w }

// Height returns the number of rows.
func (a *Automaton[S]) Height() int { return a.grid.h }

// Size returns the grid dimensions.
func (a *Automaton[S]) Size() Size { return a.grid.Size() }

// Generation returns the number of completed steps since the last reset or load.
func (a *Automaton[S]) Generation() int { return a.gen }

// Get returns the state of the cell at (x, y).
func (a *Automaton[S]) Get(x, y int) (S, error) { return a.grid.At(x, y) }

// Set overwrites the state of the cell at (x, y).
func (a *Automaton[S]) Set(x, y int, s S) error { return a.grid.Set(x, y, s) }

// Step advances the grid by one generation. Every NextState call observes the
// generation as it was before Step began. If the rule returns an error the
// current generation is left untouched and the error is returned as is.
func (a *Automaton[S]) Step() error {
	g := a.grid
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			idx := g.Index(x, y)
			next, err := a.rule.NextState(g, g.cur[idx], x, y)
			if err != nil {
				return err
			}
			g.nxt[idx] = next
		}
	}
	g.swap()
	a.gen++
	return nil
}

// Run performs n steps, stopping at the first error.
func (a *Automaton[S]) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := a.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Reset restores the loaded pattern when there is one. Otherwise rules that
// implement Seeder randomize the grid from seed and all others clear it to the
// default state. The generation counter returns to zero.
func (a *Automaton[S]) Reset(seed int64) {
	a.gen = 0
	g := a.grid
	if a.origin != nil {
		copy(g.cur, a.origin)
		return
	}
	seeder, ok := a.rule.(Seeder[S])
	if !ok {
		var zero S
		g.Fill(zero)
		return
	}
	rng := NewRNG(seed)
	size := g.Size()
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			g.cur[g.Index(x, y)] = seeder.Seed(rng, x, y, size)
		}
	}
}

// Cycle advances the cell at (x, y) to the next state of the rule's edit cycle.
func (a *Automaton[S]) Cycle(x, y int) error {
	cycler, ok := a.rule.(Cycler[S])
	if !ok {
		return fmt.Errorf("%s: %w", a.rule.Name(), ErrNotEditable)
	}
	cur, err := a.grid.At(x, y)
	if err != nil {
		return err
	}
	return a.grid.Set(x, y, cycler.CycleState(cur))
}

// Load replaces the grid with one parsed from blob. The automaton is left
// unchanged when parsing fails.
func (a *Automaton[S]) Load(blob string, delim byte) error {
	g, err := ParseGrid(blob, delim, a.rule.CharToState)
	if err != nil {
		return err
	}
	a.grid = g
	a.origin = clone(g.cur)
	a.gen = 0
	a.display = nil
	return nil
}

// Cells returns the current generation as raw state values.
func (a *Automaton[S]) Cells() []uint8 {
	cur := a.grid.cur
	if len(a.display) != len(cur) {
		a.display = make([]uint8, len(cur))
	}
	for i, s := range cur {
		a.display[i] = uint8(s)
	}
	return a.display
}

// Glyph returns the text character for the raw state value v.
func (a *Automaton[S]) Glyph(v uint8) byte { return a.rule.StateToChar(S(v)) }

// Palette returns display colors indexed by raw state value. Rules without a
// Colorer get an evenly spaced grayscale ramp starting at black.
func (a *Automaton[S]) Palette() []color.RGBA {
	if a.palette != nil {
		return a.palette
	}
	states := a.rule.States()
	size := 0
	for _, s := range states {
		if int(s)+1 > size {
			size = int(s) + 1
		}
	}
	palette := make([]color.RGBA, size)
	colorer, hasColors := a.rule.(Colorer[S])
	for i, s := range states {
		if hasColors {
			palette[s] = colorer.StateToColor(s)
			continue
		}
		level := uint8(0)
		if len(states) > 1 {
			level = uint8(i * 255 / (len(states) - 1))
		}
		palette[s] = color.RGBA{R: level, G: level, B: level, A: 255}
	}
	a.palette = palette
	return palette
}

// Population counts the cells of the current generation in each state, in
// the order of Rule.States.
func (a *Automaton[S]) Population() []int {
	states := a.rule.States()
	counts := make([]int, len(states))
	pos := map[S]int{}
	for i, s := range states {
		pos[s] = i
	}
	for _, s := range a.grid.cur {
		if i, ok := pos[s]; ok {
			counts[i]++
		}
	}
	return counts
}

// Parameters reports the automaton's identity and population for display.
func (a *Automaton[S]) Parameters() ParameterSnapshot {
	states := a.rule.States()
	counts := a.Population()
	pop := make([]Parameter, len(states))
	for i, s := range states {
		label := stateLabel(s, a.rule.StateToChar(s))
		pop[i] = intParam("pop_"+strconv.Itoa(int(s)), label, counts[i])
	}
	return ParameterSnapshot{Groups: []ParameterGroup{
		{
			Name: "Automaton",
			Params: []Parameter{
				{Key: "rule", Label: "Rule", Type: ParamTypeString, Value: a.rule.Name()},
				intParam("w", "Width", a.grid.w),
				intParam("h", "Height", a.grid.h),
				intParam("generation", "Generation", a.gen),
			},
		},
		{Name: "Population", Params: pop},
	}}
}

func stateLabel(s any, glyph byte) string {
	if named, ok := s.(fmt.Stringer); ok {
		return named.String()
	}
	return strconv.Quote(string(glyph))
}

func intParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

func clone[S State](cells []S) []S {
	return append([]S(nil), cells...)
}
