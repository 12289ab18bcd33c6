package core

import (
	"fmt"
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the rule-agnostic view of an automaton used by the front-ends.
type Sim interface {
	Name() string
	Size() Size
	Generation() int
	Reset(seed int64)
	Step() error
	// Cells returns the current generation with one byte per cell holding the
	// state's numeric value.
	Cells() []uint8
	Palette() []color.RGBA
	Glyph(v uint8) byte
	Cycle(x, y int) error
	Load(blob string, delim byte) error
	Text(delim byte) string
	Parameters() ParameterSnapshot
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSim looks up the named factory and builds a Sim from cfg.
func NewSim(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", name)
	}
	return f(cfg)
}
