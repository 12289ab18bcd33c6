package term

import (
	"image/color"
	"strings"
	"testing"

	"cellular/internal/core"
	"cellular/internal/sims/wireworld"

	tl "github.com/JoelOtter/termloop"
)

func TestAttrNearest(t *testing.T) {
	cases := []struct {
		in   color.RGBA
		want tl.Attr
	}{
		{color.RGBA{R: 255, G: 255, A: 255}, tl.ColorYellow},
		{color.RGBA{R: 250, G: 250, B: 250, A: 255}, tl.ColorWhite},
		{color.RGBA{R: 40, G: 90, B: 200, A: 255}, tl.ColorBlue},
		{color.RGBA{R: 10, G: 10, B: 10, A: 255}, tl.ColorBlack},
	}
	for _, tc := range cases {
		if got := Attr(tc.in); got != tc.want {
			t.Fatalf("Attr(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTickEditsAndSteps(t *testing.T) {
	ww, err := core.New[wireworld.State](wireworld.New(), 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	v := NewView(ww, 1, 0)
	// Click the second cell twice: empty → conductor → head.
	click := tl.Event{Type: tl.EventMouse, Key: tl.MouseLeft, MouseX: 1 * cellWidth, MouseY: 0}
	v.Tick(click)
	v.Tick(click)
	if s, _ := ww.Get(1, 0); s != wireworld.ElectronHead {
		t.Fatalf("clicked cell = %v, want head", s)
	}
	// Clicks outside the grid are ignored.
	v.Tick(tl.Event{Type: tl.EventMouse, Key: tl.MouseLeft, MouseX: 40, MouseY: 7})
	if v.Err() != nil {
		t.Fatalf("out of range click reported %v", v.Err())
	}

	v.Tick(tl.Event{Type: tl.EventKey, Ch: 'n'})
	if ww.Generation() != 1 {
		t.Fatalf("generation = %d after single step", ww.Generation())
	}
	v.Tick(tl.Event{Type: tl.EventKey, Key: tl.KeySpace})
	if !v.paused {
		t.Fatal("space should pause")
	}
	v.Tick(tl.Event{Type: tl.EventKey, Ch: 'r'})
	if ww.Generation() != 0 {
		t.Fatal("r should reset the generation")
	}
}

func TestHelpLineNamesBoundKeys(t *testing.T) {
	for _, want := range []string{"space pause", "enter resume", "n step", "r reset", "s reseed", "+/- speed", "ctrl+c quit"} {
		if !strings.Contains(helpLine, want) {
			t.Errorf("help line %q missing %q", helpLine, want)
		}
	}
	if strings.Contains(helpLine, "esc") || strings.Contains(helpLine, "q quit") {
		t.Errorf("help line %q advertises an unbound quit key", helpLine)
	}
}
