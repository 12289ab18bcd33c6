//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cellular/internal/app"
	_ "cellular/internal/sims/briansbrain"
	_ "cellular/internal/sims/elementary"
	_ "cellular/internal/sims/life"
	_ "cellular/internal/sims/wireworld"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg)
	size := sim.Size()
	w, h := game.Layout(size.W*cfg.Scale, size.H*cfg.Scale)

	ebiten.SetWindowTitle("cellular — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
