//go:build ebiten

package main

import (
	"errors"
	"flag"

	"aoc-ca/internal/app"
	"aoc-ca/internal/core"
	_ "aoc-ca/internal/sims/cave"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	params, err := cfg.SimConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	sim, err := core.Build(cfg.Sim, params)
	if err != nil {
		logrus.WithField("available", core.Names()).Fatal(err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("aoc-ca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logrus.Fatal(err)
	}
}
