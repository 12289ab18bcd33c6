package life

import "strconv"

// Config holds parameters for the Life-like automaton.
type Config struct {
	Width  int
	Height int
	// Rule is a birth/survival rule string such as "B3/S23".
	Rule string
}

// DefaultConfig returns Conway's rule on a 64x64 board.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Rule: Conway}
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
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	return c
}
