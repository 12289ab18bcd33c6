// Package term renders an automaton in a terminal with termloop.
package term

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"cellular/internal/core"

	tl "github.com/JoelOtter/termloop"
)

// cellWidth is the number of terminal columns per cell; two keeps cells
// roughly square.
const cellWidth = 2

const maxGPS = 60

// helpLine lists the key bindings. Quitting is termloop's end key (Ctrl+C).
const helpLine = "space pause  enter resume  n step  r reset  s reseed  +/- speed  click edit  ctrl+c quit"

// View is a termloop entity that draws and drives a simulation. Tick and Draw
// run on the game loop goroutine, so edits and steps never overlap.
type View struct {
	sim    core.Sim
	pacer  *core.FixedStep
	paused bool
	seed   int64
	err    error
}

// NewView wraps sim, advancing it gps generations per second.
func NewView(sim core.Sim, gps int, seed int64) *View {
	return &View{sim: sim, pacer: core.NewFixedStep(gps), seed: seed}
}

// Err returns the rule error that stopped the simulation, if any.
func (v *View) Err() error { return v.err }

// Tick handles keyboard and mouse input.
func (v *View) Tick(ev tl.Event) {
	switch ev.Type {
	case tl.EventKey:
		v.handleKey(ev)
	case tl.EventMouse:
		if ev.Key == tl.MouseLeft {
			v.editAt(ev.MouseX/cellWidth, ev.MouseY)
		}
	}
}

func (v *View) handleKey(ev tl.Event) {
	switch ev.Key {
	case tl.KeySpace:
		v.paused = !v.paused
		return
	case tl.KeyEnter:
		v.paused = false
		return
	}
	switch ev.Ch {
	case 'n':
		v.step()
	case 'r':
		v.sim.Reset(v.seed)
	case 's':
		v.seed = time.Now().UnixNano()
		v.sim.Reset(v.seed)
	case '+', '=':
		v.pacer.SetTPS(min(v.pacer.TPS()+1, maxGPS))
	case '-':
		v.pacer.SetTPS(max(v.pacer.TPS()-1, 1))
	}
}

func (v *View) editAt(x, y int) {
	if err := v.sim.Cycle(x, y); err != nil && !errors.Is(err, core.ErrNotEditable) && !errors.Is(err, core.ErrOutOfBounds) {
		v.fail(err)
	}
}

func (v *View) step() {
	if v.err != nil {
		return
	}
	if err := v.sim.Step(); err != nil {
		v.fail(err)
	}
}

func (v *View) fail(err error) {
	v.err = err
	v.paused = true
}

// Draw advances the simulation when due and paints the grid and status line.
func (v *View) Draw(s *tl.Screen) {
	if !v.paused && v.pacer.ShouldStep() {
		v.step()
	}
	size := v.sim.Size()
	cells := v.sim.Cells()
	palette := v.sim.Palette()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			val := cells[y*size.W+x]
			cell := &tl.Cell{Ch: rune(v.sim.Glyph(val)), Fg: tl.ColorBlack, Bg: tl.ColorWhite}
			if int(val) < len(palette) {
				cell.Bg = Attr(palette[val])
				cell.Fg = contrast(palette[val])
			}
			for i := 0; i < cellWidth; i++ {
				s.RenderCell(x*cellWidth+i, y, cell)
			}
		}
	}
	drawText(s, 0, size.H, v.status())
	drawText(s, 0, size.H+1, helpLine)
}

func (v *View) status() string {
	state := "running"
	if v.paused {
		state = "paused"
	}
	line := fmt.Sprintf("%s  gen %d  %d gen/s  %s", v.sim.Name(), v.sim.Generation(), v.pacer.TPS(), state)
	if v.err != nil {
		line += "  error: " + v.err.Error()
	}
	return line
}

func drawText(s *tl.Screen, x, y int, text string) {
	for i, r := range []rune(text) {
		s.RenderCell(x+i, y, &tl.Cell{Ch: r, Fg: tl.ColorWhite, Bg: tl.ColorDefault})
	}
}

var basicColors = []struct {
	rgb  color.RGBA
	attr tl.Attr
}{
	{color.RGBA{A: 255}, tl.ColorBlack},
	{color.RGBA{R: 255, A: 255}, tl.ColorRed},
	{color.RGBA{G: 255, A: 255}, tl.ColorGreen},
	{color.RGBA{R: 255, G: 255, A: 255}, tl.ColorYellow},
	{color.RGBA{B: 255, A: 255}, tl.ColorBlue},
	{color.RGBA{R: 255, B: 255, A: 255}, tl.ColorMagenta},
	{color.RGBA{G: 255, B: 255, A: 255}, tl.ColorCyan},
	{color.RGBA{R: 255, G: 255, B: 255, A: 255}, tl.ColorWhite},
}

// Attr maps an RGBA color to the nearest of the eight basic terminal colors.
func Attr(c color.RGBA) tl.Attr {
	best, bestDist := tl.ColorDefault, -1
	for _, bc := range basicColors {
		dr := int(c.R) - int(bc.rgb.R)
		dg := int(c.G) - int(bc.rgb.G)
		db := int(c.B) - int(bc.rgb.B)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best, bestDist = bc.attr, dist
		}
	}
	return best
}

func contrast(c color.RGBA) tl.Attr {
	if int(c.R)*299+int(c.G)*587+int(c.B)*114 > 128*1000 {
		return tl.ColorBlack
	}
	return tl.ColorWhite
}
