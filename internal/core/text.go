package core

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultDelimiter separates rows in the text grid format.
const DefaultDelimiter = '\n'

// ParseGrid builds a grid from rows of characters separated by delim. The
// first row fixes the width and the number of rows fixes the height; a single
// trailing delimiter is allowed. Every character is mapped with charToState and
// its errors are returned unchanged.
func ParseGrid[S State](blob string, delim byte, charToState func(byte) (S, error)) (*Grid[S], error) {
	if len(blob) == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrMalformedGrid)
	}
	rows := strings.Split(blob, string(delim))
	if len(rows) > 1 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if delim == '\n' {
		for i, row := range rows {
			rows[i] = strings.TrimSuffix(row, "\r")
		}
	}
	w, h := len(rows[0]), len(rows)
	if w == 0 {
		return nil, fmt.Errorf("empty first row: %w", ErrMalformedGrid)
	}
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), w, ErrMalformedGrid)
		}
	}
	g, err := NewGrid[S](w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x := 0; x < w; x++ {
			s, err := charToState(row[x])
			if err != nil {
				return nil, err
			}
			g.cur[g.Index(x, y)] = s
		}
	}
	return g, nil
}

// FormatGrid renders the current generation of g, terminating every row with
// delim.
func FormatGrid[S State](g *Grid[S], delim byte, stateToChar func(S) byte) string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			b.WriteByte(stateToChar(g.at(x, y)))
		}
		b.WriteByte(delim)
	}
	return b.String()
}

// FromFile reads path and parses it with FromText.
func FromFile[S State](rule Rule[S], path string, delim byte) (*Automaton[S], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grid %s: %w", path, err)
	}
	return FromText(rule, string(data), delim)
}

// Text renders the current generation in the text grid format.
func (a *Automaton[S]) Text(delim byte) string {
	return FormatGrid(a.grid, delim, a.rule.StateToChar)
}

// MarshalText implements encoding.TextMarshaler using newline delimiters.
func (a *Automaton[S]) MarshalText() ([]byte, error) {
	return []byte(a.Text(DefaultDelimiter)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using newline delimiters.
func (a *Automaton[S]) UnmarshalText(text []byte) error {
	return a.Load(string(text), DefaultDelimiter)
}

// WriteTo writes the current generation to w using newline delimiters.
func (a *Automaton[S]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.Text(DefaultDelimiter))
	return int64(n), err
}
