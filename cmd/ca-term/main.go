package main

import (
	"flag"
	"log"

	"cellular/internal/app"
	_ "cellular/internal/sims/briansbrain"
	_ "cellular/internal/sims/elementary"
	_ "cellular/internal/sims/life"
	_ "cellular/internal/sims/wireworld"
	"cellular/internal/term"

	tl "github.com/JoelOtter/termloop"
)

func main() {
	cfg := app.NewConfig()
	cfg.W, cfg.H = 40, 20
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}

	view := term.NewView(sim, cfg.GPS, cfg.Seed)
	game := tl.NewGame()
	game.Screen().SetFps(float64(cfg.TPS))
	level := tl.NewBaseLevel(tl.Cell{Bg: tl.ColorDefault, Fg: tl.ColorWhite, Ch: ' '})
	level.AddEntity(view)
	game.Screen().SetLevel(level)
	game.Start()

	if err := view.Err(); err != nil {
		log.Fatal(err)
	}
}
