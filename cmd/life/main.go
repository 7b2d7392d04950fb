//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	session, err := app.NewSession(*cfg, core.NewSystemClock())
	if err != nil {
		log.Fatalf("cannot start: %v", err)
	}

	game := app.New(session)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.WindowSize, cfg.WindowSize)

	log.Printf("grid %dx%d, cell %dpx, tick %v, boundary %s", cfg.GridSize, cfg.GridSize, cfg.CellSize(), cfg.Tick, cfg.BoundaryPolicy())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
