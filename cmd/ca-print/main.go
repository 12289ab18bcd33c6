package main

import (
	"flag"
	"io"
	"log"
	"os"

	"cellular/internal/app"
	"cellular/internal/render"
	_ "cellular/internal/sims/briansbrain"
	_ "cellular/internal/sims/elementary"
	_ "cellular/internal/sims/life"
	_ "cellular/internal/sims/wireworld"
)

func main() {
	cfg := app.NewConfig()
	cfg.W, cfg.H = 20, 20
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 1, "generations to advance")
	every := flag.Bool("every", false, "print every generation instead of only the last")
	header := flag.Bool("header", true, "print a header line before each grid")
	flag.Parse()

	if err := run(os.Stdout, cfg, *steps, *every, *header); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer, cfg *app.Config, steps int, every, header bool) error {
	sim, err := cfg.Build()
	if err != nil {
		return err
	}
	delim, err := cfg.Delimiter()
	if err != nil {
		return err
	}
	p := render.NewPrinter(out)
	p.Delim = delim
	p.Header = header
	if every {
		if err := p.Print(sim); err != nil {
			return err
		}
	}
	for i := 0; i < steps; i++ {
		if err := sim.Step(); err != nil {
			return err
		}
		if every {
			if err := p.Print(sim); err != nil {
				return err
			}
		}
	}
	if !every {
		return p.Print(sim)
	}
	return nil
}
