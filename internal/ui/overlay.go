//go:build ebiten

package ui

import (
	"image/color"

	"cellular/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type sizer interface {
	Size() core.Size
}

// Overlay draws grid lines and highlights the cell under the cursor.
type Overlay struct {
	sim       sizer
	scale     int
	showGrid  bool
	showHover bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim sizer, scale int, showGrid bool) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showGrid: showGrid, showHover: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles grid lines with G and the hover highlight with H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHover = !o.showHover
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showGrid && scale >= 4 {
		o.drawGrid(screen, size, scale)
	}
	if o.showHover {
		mx, my := ebiten.CursorPosition()
		x, y := mx/scale, my/scale
		if mx >= 0 && my >= 0 && x < size.W && y < size.H {
			hover := color.RGBA{R: 60, G: 60, B: 60, A: 60}
			o.fillRect(screen, x*scale, y*scale, scale, scale, hover)
		}
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, size core.Size, scale int) {
	line := color.RGBA{A: 255}
	w, h := size.W*scale, size.H*scale
	for x := 0; x <= size.W; x++ {
		o.fillRect(screen, min(x*scale, w-1), 0, 1, h, line)
	}
	for y := 0; y <= size.H; y++ {
		o.fillRect(screen, 0, min(y*scale, h-1), w, 1, line)
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(o.pixel, op)
}
