package life

import (
	"errors"
	"testing"

	"cellular/internal/core"
)

func TestBlinkerOscillation(t *testing.T) {
	life, err := core.New[State](New(), 5, 5)
	if err != nil {
		t.Fatal(err)
	}
	set := func(x, y int) {
		if err := life.Set(x, y, Alive); err != nil {
			t.Fatal(err)
		}
	}
	set(1, 2)
	set(2, 2)
	set(3, 2)

	if err := life.Step(); err != nil {
		t.Fatal(err)
	}

	expects := map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	assertAlive(t, life, expects, "after first step")

	if err := life.Step(); err != nil {
		t.Fatal(err)
	}

	expects = map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	assertAlive(t, life, expects, "after second step")
}

func assertAlive(t *testing.T, life *core.Automaton[State], expects map[[2]int]bool, when string) {
	t.Helper()
	for y := 0; y < life.Height(); y++ {
		for x := 0; x < life.Width(); x++ {
			s, err := life.Get(x, y)
			if err != nil {
				t.Fatal(err)
			}
			alive := s == Alive
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("%s cell (%d,%d) alive=%v, expected %v", when, x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestEmptyBoardStaysEmpty(t *testing.T) {
	life, _ := core.New[State](New(), 7, 4)
	before := life.Text('\n')
	if err := life.Run(5); err != nil {
		t.Fatal(err)
	}
	if life.Text('\n') != before {
		t.Fatalf("empty board changed:\n%s", life.Text('\n'))
	}
}

func TestCornerBlockIsStill(t *testing.T) {
	blob := "##***\n##***\n*****\n"
	life, err := core.FromText[State](New(), blob, '\n')
	if err != nil {
		t.Fatal(err)
	}
	if err := life.Step(); err != nil {
		t.Fatal(err)
	}
	if got := life.Text('\n'); got != blob {
		t.Fatalf("block in corner changed:\n%s", got)
	}
}

func TestTextRoundTrip(t *testing.T) {
	blob := "*#*\n##*\n**#\n"
	life, err := core.FromText[State](New(), blob, '\n')
	if err != nil {
		t.Fatal(err)
	}
	again, err := core.FromText[State](New(), life.Text('\n'), '\n')
	if err != nil {
		t.Fatal(err)
	}
	if again.Text('\n') != blob {
		t.Fatalf("round trip = %q, want %q", again.Text('\n'), blob)
	}
	if _, err := core.FromText[State](New(), "*#\n*.\n", '\n'); !errors.Is(err, core.ErrUnknownSymbol) {
		t.Fatalf("unknown symbol error = %v", err)
	}
}

func TestParseRule(t *testing.T) {
	highlife, err := Parse("b36/s23")
	if err != nil {
		t.Fatal(err)
	}
	if highlife.Name() != "life B36/S23" {
		t.Fatalf("name = %q", highlife.Name())
	}
	if !highlife.birth.Has(6) || highlife.birth.Has(2) || !highlife.survive.Has(2) {
		t.Fatal("HighLife sets parsed incorrectly")
	}
	for _, bad := range []string{"", "23/3", "B9/S23", "B3S23"} {
		if _, err := Parse(bad); err == nil {
			t.Fatalf("Parse(%q) succeeded", bad)
		}
	}
}

func TestFactory(t *testing.T) {
	sim, err := core.NewSim("life", map[string]string{"w": "12", "h": "9"})
	if err != nil {
		t.Fatal(err)
	}
	if sim.Size() != (core.Size{W: 12, H: 9}) {
		t.Fatalf("size = %+v", sim.Size())
	}
	if _, err := core.NewSim("life", map[string]string{"rule": "nope"}); err == nil {
		t.Fatal("bad rule string accepted")
	}
}

func TestCycleAndSeed(t *testing.T) {
	life, _ := core.New[State](New(), 16, 16)
	if err := life.Cycle(3, 3); err != nil {
		t.Fatal(err)
	}
	if s, _ := life.Get(3, 3); s != Alive {
		t.Fatal("cycle should toggle dead to alive")
	}
	life.Reset(7)
	first := life.Text('\n')
	life.Reset(7)
	if life.Text('\n') != first {
		t.Fatal("seeded reset not deterministic")
	}
	if pop := life.Population(); pop[1] == 0 || pop[0] == 0 {
		t.Fatalf("seeded population = %v", pop)
	}
}
