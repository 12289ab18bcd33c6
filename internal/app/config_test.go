package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"cellular/internal/core"
	_ "cellular/internal/sims/life"
	_ "cellular/internal/sims/wireworld"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-sim", "wireworld", "-w", "9", "-delim", "|", "-gps", "3"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "wireworld" || cfg.W != 9 || cfg.GPS != 3 {
		t.Fatalf("config = %+v", cfg)
	}
	if d, err := cfg.Delimiter(); err != nil || d != '|' {
		t.Fatalf("delimiter = %q, %v", d, err)
	}
	if got := cfg.SimConfig(); got["w"] != "9" || len(got) != 1 {
		t.Fatalf("sim config = %v", got)
	}
}

func TestDelimiterEscapes(t *testing.T) {
	cases := map[string]byte{"": '\n', `\n`: '\n', `\t`: '\t', ";": ';'}
	for in, want := range cases {
		c := &Config{Delim: in}
		got, err := c.Delimiter()
		if err != nil || got != want {
			t.Fatalf("Delimiter(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := (&Config{Delim: "ab"}).Delimiter(); err == nil {
		t.Fatal("multi-byte delimiter accepted")
	}
}

func TestBuildLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.txt")
	if err := os.WriteFile(path, []byte("*****\n*###*\n*****\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.File = path
	sim, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	if sim.Size() != (core.Size{W: 5, H: 3}) {
		t.Fatalf("size = %+v", sim.Size())
	}
	if err := sim.Step(); err != nil {
		t.Fatal(err)
	}
	if got := sim.Text('\n'); got != "**#**\n**#**\n**#**\n" {
		t.Fatalf("after step:\n%s", got)
	}
}

func TestBuildErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Sim = "nope"
	if _, err := cfg.Build(); err == nil {
		t.Fatal("unknown sim accepted")
	}

	path := filepath.Join(t.TempDir(), "bad.txt")
	os.WriteFile(path, []byte("##\n#\n"), 0o644)
	cfg = NewConfig()
	cfg.File = path
	if _, err := cfg.Build(); !errors.Is(err, core.ErrMalformedGrid) {
		t.Fatalf("Build error = %v, want ErrMalformedGrid", err)
	}

	cfg = NewConfig()
	cfg.W = -1
	cfg.Sim = "wireworld"
	if _, err := cfg.Build(); err != nil {
		t.Fatalf("negative width should fall back to the default: %v", err)
	}
}
