package elementary

import (
	"testing"

	"cellular/internal/core"
)

func TestRule90Triangle(t *testing.T) {
	e, err := core.New[State](New(90), 7, 4)
	if err != nil {
		t.Fatal(err)
	}
	e.Reset(0)
	if err := e.Run(3); err != nil {
		t.Fatal(err)
	}
	want := "" +
		"#.#.#.#\n" +
		".#...#.\n" +
		"..#.#..\n" +
		"...#...\n"
	if got := e.Text('\n'); got != want {
		t.Fatalf("rule 90 after 3 steps:\n%s\nwant:\n%s", got, want)
	}
}

func TestFromMapClampsRule(t *testing.T) {
	c := FromMap(map[string]string{"rule": "300", "w": "-2", "h": "8"})
	if c.Rule != 110 || c.Width != 256 || c.Height != 8 {
		t.Fatalf("config = %+v", c)
	}
}
