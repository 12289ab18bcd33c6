package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	now := time.Unix(0, 0)
	fs := newFixedStep(10, func() time.Time { return now })

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, must not step")
	}
	now = now.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick elapsed, must not step")
	}
	now = now.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full tick elapsed, should step")
	}

	now = now.Add(5 * time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps > 2 {
		t.Fatalf("stall produced %d catch-up steps, want at most 2", steps)
	}
}

func TestFixedStepSetTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 60 {
		t.Fatalf("default TPS = %d, want 60", fs.TPS())
	}
	fs.SetTPS(5)
	if fs.TPS() != 5 {
		t.Fatalf("TPS = %d, want 5", fs.TPS())
	}
}
