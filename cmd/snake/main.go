//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"gridsnake/internal/app"
	"gridsnake/internal/logging"
	"gridsnake/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	round := cfg.Round()
	if err := round.Validate(2); err != nil {
		log.Fatalf("invalid board: %v", err)
	}

	game := app.New(scene.NewEnv(round, logger))
	defer game.Close()

	ebiten.SetWindowTitle("gridsnake")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// frames without a logic tick keep the previous picture
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
