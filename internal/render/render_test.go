package render

import (
	"bytes"
	"image/color"
	"slices"
	"testing"

	"cellular/internal/core"
	"cellular/internal/sims/wireworld"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 9, G: 8, B: 7, A: 6}}
	buf := make([]byte, 12)
	FillPaletteRGBA(buf, []uint8{0, 1, 5}, palette)
	want := []byte{1, 2, 3, 4, 9, 8, 7, 6, 9, 8, 7, 6}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
	FillPaletteRGBA(buf, []uint8{0, 1, 5}, nil)
	if !slices.Equal(buf, make([]byte, 12)) {
		t.Fatalf("empty palette should clear, got %v", buf)
	}
}

func TestPrinter(t *testing.T) {
	ww, err := core.FromText[wireworld.State](wireworld.New(), "*##\n", '\n')
	if err != nil {
		t.Fatal(err)
	}
	if err := ww.Step(); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.Header = true
	if err := p.Print(ww); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "wireworld generation 1\no*#\n"; got != want {
		t.Fatalf("printed %q, want %q", got, want)
	}
}
