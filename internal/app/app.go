//go:build ebiten

package app

import (
	"errors"
	"strconv"
	"time"

	"cellular/internal/core"
	"cellular/internal/render"
	"cellular/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const maxGPS = 240

// Game adapts a core simulation to the ebiten.Game interface. Cell edits and
// generation steps both happen in Update, so they never overlap.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale, cfg.Grid),
		pacer:    core.NewFixedStep(cfg.GPS),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
	if g.scale <= 0 {
		g.scale = 1
	}
	g.hud = ui.NewHUD(g, cfg.HUDWidth)
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if err := g.editAt(ebiten.CursorPosition()); err != nil {
			return err
		}
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)

	if (!g.paused && g.pacer.ShouldStep()) || g.tickOnce {
		g.tickOnce = false
		if err := g.sim.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) editAt(px, py int) error {
	size := g.sim.Size()
	x, y := px/g.scale, py/g.scale
	if px < 0 || py < 0 || x >= size.W || y >= size.H {
		return nil
	}
	if err := g.sim.Cycle(x, y); err != nil && !errors.Is(err, core.ErrNotEditable) {
		return err
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Palette(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

// Parameters extends the simulation's snapshot with playback state.
func (g *Game) Parameters() core.ParameterSnapshot {
	snap := g.sim.Parameters()
	status := "running"
	if g.paused {
		status = "paused"
	}
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Playback",
		Params: []core.Parameter{
			{Key: "status", Label: "Status", Type: core.ParamTypeString, Value: status},
			{Key: "gps", Label: "Gen/s", Type: core.ParamTypeInt, Value: strconv.Itoa(g.pacer.TPS())},
		},
	})
	return snap
}

// ParameterControls exposes the generation rate on the HUD.
func (g *Game) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "gps", Label: "Gen/s", Step: 1, Min: 1, Max: maxGPS, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates the generation rate.
func (g *Game) SetIntParameter(key string, value int) bool {
	if key != "gps" || value <= 0 || value > maxGPS {
		return false
	}
	g.pacer.SetTPS(value)
	return true
}
