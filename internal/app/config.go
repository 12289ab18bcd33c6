package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"cellular/internal/core"
)

// Config represents the command-line parameters shared by the front-ends.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	GPS   int
	Seed  int64

	File  string
	Delim string
	W     int
	H     int
	Rule  string

	Grid     bool
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 12, TPS: 60, GPS: 10, Seed: 42, Delim: `\n`, Grid: true, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "automaton to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random reset")
	fs.StringVar(&c.File, "file", c.File, "text grid to load")
	fs.StringVar(&c.Delim, "delim", c.Delim, `row delimiter of the text grid (escapes such as \n allowed)`)
	fs.IntVar(&c.W, "w", c.W, "grid width (0 keeps the automaton default)")
	fs.IntVar(&c.H, "h", c.H, "grid height (0 keeps the automaton default)")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule parameter, e.g. B36/S23 for life or 30 for elementary")
	fs.BoolVar(&c.Grid, "grid", c.Grid, "draw grid lines")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the status panel in pixels (0 hides it)")
}

// Delimiter decodes the Delim flag into a single byte.
func (c *Config) Delimiter() (byte, error) {
	if c.Delim == "" {
		return core.DefaultDelimiter, nil
	}
	if len(c.Delim) == 1 {
		return c.Delim[0], nil
	}
	s, err := strconv.Unquote(`"` + c.Delim + `"`)
	if err != nil || len(s) != 1 {
		return 0, fmt.Errorf("delimiter %q must be a single byte", c.Delim)
	}
	return s[0], nil
}

// SimConfig converts the flags into the string map read by the factories.
func (c *Config) SimConfig() map[string]string {
	cfg := map[string]string{}
	if c.W > 0 {
		cfg["w"] = strconv.Itoa(c.W)
	}
	if c.H > 0 {
		cfg["h"] = strconv.Itoa(c.H)
	}
	if c.Rule != "" {
		cfg["rule"] = c.Rule
	}
	return cfg
}

// Build constructs the configured automaton. A grid file replaces the initial
// board; otherwise the board is reset from the seed.
func (c *Config) Build() (core.Sim, error) {
	sim, err := core.NewSim(c.Sim, c.SimConfig())
	if err != nil {
		return nil, err
	}
	if c.File == "" {
		sim.Reset(c.Seed)
		return sim, nil
	}
	delim, err := c.Delimiter()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(c.File)
	if err != nil {
		return nil, fmt.Errorf("read grid %s: %w", c.File, err)
	}
	if err := sim.Load(string(data), delim); err != nil {
		return nil, fmt.Errorf("load grid %s: %w", c.File, err)
	}
	return sim, nil
}
