package wireworld

import (
	"errors"
	"testing"

	"cellular/internal/core"
)

func TestConductorFiring(t *testing.T) {
	cases := []struct {
		name  string
		heads [][2]int
		want  State
	}{
		{"no heads", nil, Conductor},
		{"one head", [][2]int{{0, 0}}, ElectronHead},
		{"two heads", [][2]int{{0, 0}, {2, 2}}, ElectronHead},
		{"three heads", [][2]int{{0, 0}, {2, 2}, {1, 0}}, Conductor},
		{"four heads", [][2]int{{0, 0}, {2, 2}, {1, 0}, {0, 1}}, Conductor},
	}
	for _, tc := range cases {
		ww, err := core.New[State](New(), 3, 3)
		if err != nil {
			t.Fatal(err)
		}
		ww.Set(1, 1, Conductor)
		for _, h := range tc.heads {
			ww.Set(h[0], h[1], ElectronHead)
		}
		if err := ww.Step(); err != nil {
			t.Fatal(err)
		}
		got, _ := ww.Get(1, 1)
		if got != tc.want {
			t.Fatalf("%s: center = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDecayIgnoresNeighbors(t *testing.T) {
	// A head surrounded by heads still becomes a tail; a tail surrounded by
	// heads still becomes conductor.
	ww, err := core.FromText[State](New(), "***\n*o*\n***\n", '\n')
	if err != nil {
		t.Fatal(err)
	}
	if err := ww.Step(); err != nil {
		t.Fatal(err)
	}
	if got := ww.Text('\n'); got != "ooo\no#o\nooo\n" {
		t.Fatalf("after step:\n%q", got)
	}
	if err := ww.Step(); err != nil {
		t.Fatal(err)
	}
	if got := ww.Text('\n'); got != "###\n###\n###\n" {
		t.Fatalf("after second step:\n%q", got)
	}
}

func TestElectronTravelsAlongWire(t *testing.T) {
	ww, err := core.FromText[State](New(), "o*####\n", '\n')
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"#o*###\n",
		"##o*##\n",
		"###o*#\n",
		"####o*\n",
		"#####o\n",
		"######\n",
	}
	for i, w := range want {
		if err := ww.Step(); err != nil {
			t.Fatal(err)
		}
		if got := ww.Text('\n'); got != w {
			t.Fatalf("step %d = %q, want %q", i+1, got, w)
		}
	}
}

func TestCharMapping(t *testing.T) {
	rule := New()
	for _, s := range rule.States() {
		back, err := rule.CharToState(rule.StateToChar(s))
		if err != nil || back != s {
			t.Fatalf("state %v round trip = %v, %v", s, back, err)
		}
	}
	if _, err := rule.CharToState('x'); !errors.Is(err, core.ErrUnknownSymbol) {
		t.Fatalf("unknown char error = %v", err)
	}
}

func TestCycleOrder(t *testing.T) {
	rule := New()
	seq := []State{Empty, Conductor, ElectronHead, Empty}
	for i := 0; i+1 < len(seq); i++ {
		if got := rule.CycleState(seq[i]); got != seq[i+1] {
			t.Fatalf("CycleState(%v) = %v, want %v", seq[i], got, seq[i+1])
		}
	}
	if rule.CycleState(ElectronTail) != Empty {
		t.Fatal("tail should cycle to empty")
	}
}

func TestResetClearsUnloadedBoard(t *testing.T) {
	ww, _ := core.New[State](New(), 4, 4)
	ww.Set(2, 2, Conductor)
	ww.Reset(1)
	if pop := ww.Population(); pop[0] != 16 {
		t.Fatalf("population after reset = %v", pop)
	}
}
