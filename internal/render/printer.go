package render

import (
	"fmt"
	"io"

	"cellular/internal/core"
)

// Printer writes text snapshots of a simulation. It keeps no state between
// calls beyond its own settings.
type Printer struct {
	out io.Writer

	// Delim terminates every row.
	Delim byte
	// Header prefixes each snapshot with "<name> generation <n>".
	Header bool
}

// NewPrinter returns a Printer writing newline-delimited grids to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, Delim: core.DefaultDelimiter}
}

// Print writes the current generation of sim.
func (p *Printer) Print(sim core.Sim) error {
	if p.Header {
		if _, err := fmt.Fprintf(p.out, "%s generation %d%c", sim.Name(), sim.Generation(), p.Delim); err != nil {
			return err
		}
	}
	_, err := io.WriteString(p.out, sim.Text(p.Delim))
	return err
}
