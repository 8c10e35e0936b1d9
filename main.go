package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"moire/game"
	"moire/moire"
)

func main() {
	// Configuration and preview requests from the screensaver host have nothing to show
	if !moire.ParseMode(os.Args[1:]).Runs() {
		return
	}

	config, err := game.DefaultConfig()
	if err != nil {
		log.Fatalf("display setup: %v", err)
	}

	g := game.NewGame(config)
	g.Configure()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
