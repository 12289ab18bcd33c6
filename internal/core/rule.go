package core

import "image/color"

// Reader is the read-only view of the current generation handed to rules.
type Reader[S State] interface {
	Width() int
	Height() int
	At(x, y int) (S, error)
	VonNeumann(x, y int) Neighborhood[S]
	Moore(x, y int) Neighborhood[S]
	ExtendedVonNeumann(x, y int) Neighborhood[S]
}

// Rule defines a cellular automaton over the state type S.
type Rule[S State] interface {
	Name() string
	// States lists the alphabet in declaration order; the first entry is the
	// default state and must be the zero value.
	States() []S
	// NextState computes the state of (x, y) in the next generation. It may
	// query any neighborhood of g but must not retain the results.
	NextState(g Reader[S], current S, x, y int) (S, error)
	StateToChar(s S) byte
	CharToState(c byte) (S, error)
}

// Colorer is implemented by rules that provide display colors.
type Colorer[S State] interface {
	StateToColor(s S) color.RGBA
}

// Cycler is implemented by rules whose cells can be edited by clicking
// through a sequence of states.
type Cycler[S State] interface {
	CycleState(s S) S
}

// Seeder is implemented by rules that know how to randomize a grid.
type Seeder[S State] interface {
	Seed(rng *RNG, x, y int, size Size) S
}
