//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"counterlife/internal/app"
	"counterlife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level, err := app.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctl, err := app.NewController(cfg, time.Now())
	if err != nil {
		log.Fatal(err)
	}
	if err := ctl.Universe().SeedErr(); err != nil {
		core.Logger().Warn("starting with an empty grid", "err", err)
	}

	game := app.New(ctl, cfg.HUD)

	ebiten.SetWindowTitle("counterlife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
