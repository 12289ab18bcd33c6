package core

// Direction labels a neighbor position relative to a cell.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
	North2
	South2
	East2
	West2

	numDirections
)

var directionNames = [numDirections]string{"n", "s", "e", "w", "ne", "nw", "se", "sw", "n2", "s2", "e2", "w2"}

var directionOffsets = [numDirections][2]int{
	North:     {0, -1},
	South:     {0, 1},
	East:      {1, 0},
	West:      {-1, 0},
	NorthEast: {1, -1},
	NorthWest: {-1, -1},
	SouthEast: {1, 1},
	SouthWest: {-1, 1},
	North2:    {0, -2},
	South2:    {0, 2},
	East2:     {2, 0},
	West2:     {-2, 0},
}

// String returns the lower-case compass label, e.g. "ne" or "s2".
func (d Direction) String() string {
	if d >= numDirections {
		return "invalid"
	}
	return directionNames[d]
}

// Offset returns the (dx, dy) step from a cell to its neighbor in direction d.
// North is towards y == 0.
func (d Direction) Offset() (int, int) {
	if d >= numDirections {
		return 0, 0
	}
	o := directionOffsets[d]
	return o[0], o[1]
}

// Directions lists every direction in declaration order.
func Directions() []Direction {
	out := make([]Direction, numDirections)
	for i := range out {
		out[i] = Direction(i)
	}
	return out
}

// Neighborhood is the result of a neighborhood query: the current-generation
// state of each in-bounds neighbor keyed by direction. Directions that would
// cross the grid boundary are absent.
type Neighborhood[S State] struct {
	states  [numDirections]S
	present uint16
}

func (n *Neighborhood[S]) put(d Direction, s S) {
	n.states[d] = s
	n.present |= 1 << d
}

// Get returns the neighbor state in direction d and whether it exists.
func (n Neighborhood[S]) Get(d Direction) (S, bool) {
	if !n.Has(d) {
		var zero S
		return zero, false
	}
	return n.states[d], true
}

// Has reports whether direction d is part of the neighborhood.
func (n Neighborhood[S]) Has(d Direction) bool {
	return d < numDirections && n.present&(1<<d) != 0
}

// Len returns the number of neighbors present.
func (n Neighborhood[S]) Len() int {
	count := 0
	for p := n.present; p != 0; p &= p - 1 {
		count++
	}
	return count
}

// Count returns how many present neighbors are in state s.
func (n Neighborhood[S]) Count(s S) int {
	return n.CountFunc(func(v S) bool { return v == s })
}

// CountFunc returns how many present neighbors satisfy fn.
func (n Neighborhood[S]) CountFunc(fn func(S) bool) int {
	count := 0
	for d := Direction(0); d < numDirections; d++ {
		if n.Has(d) && fn(n.states[d]) {
			count++
		}
	}
	return count
}

// Each calls fn for every present neighbor in direction order.
func (n Neighborhood[S]) Each(fn func(Direction, S)) {
	for d := Direction(0); d < numDirections; d++ {
		if n.Has(d) {
			fn(d, n.states[d])
		}
	}
}

// VonNeumann returns the up to four orthogonal neighbors of (x, y). A center
// outside the grid yields an empty neighborhood.
//
//	  *
//	 * *
//	  *
func (g *Grid[S]) VonNeumann(x, y int) Neighborhood[S] {
	var n Neighborhood[S]
	if !g.InBounds(x, y) {
		return n
	}
	g.addOrthogonal(&n, x, y)
	return n
}

// Moore returns the von Neumann neighbors plus the diagonals. A diagonal is
// included only when both orthogonal directions it combines are in bounds.
//
//	***
//	* *
//	***
func (g *Grid[S]) Moore(x, y int) Neighborhood[S] {
	var n Neighborhood[S]
	if !g.InBounds(x, y) {
		return n
	}
	g.addOrthogonal(&n, x, y)
	north, south := y > 0, y < g.h-1
	west, east := x > 0, x < g.w-1
	if north && east {
		n.put(NorthEast, g.at(x+1, y-1))
	}
	if north && west {
		n.put(NorthWest, g.at(x-1, y-1))
	}
	if south && east {
		n.put(SouthEast, g.at(x+1, y+1))
	}
	if south && west {
		n.put(SouthWest, g.at(x-1, y+1))
	}
	return n
}

// ExtendedVonNeumann returns the von Neumann neighbors plus the cells at
// orthogonal distance two.
//
//	  *
//	  *
//	** **
//	  *
//	  *
func (g *Grid[S]) ExtendedVonNeumann(x, y int) Neighborhood[S] {
	var n Neighborhood[S]
	if !g.InBounds(x, y) {
		return n
	}
	g.addOrthogonal(&n, x, y)
	if y > 1 {
		n.put(North2, g.at(x, y-2))
	}
	if y < g.h-2 {
		n.put(South2, g.at(x, y+2))
	}
	if x < g.w-2 {
		n.put(East2, g.at(x+2, y))
	}
	if x > 1 {
		n.put(West2, g.at(x-2, y))
	}
	return n
}

func (g *Grid[S]) addOrthogonal(n *Neighborhood[S], x, y int) {
	if y > 0 {
		n.put(North, g.at(x, y-1))
	}
	if y < g.h-1 {
		n.put(South, g.at(x, y+1))
	}
	if x < g.w-1 {
		n.put(East, g.at(x+1, y))
	}
	if x > 0 {
		n.put(West, g.at(x-1, y))
	}
}
