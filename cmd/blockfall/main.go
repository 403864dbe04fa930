package main

import (
	"flag"
	"log"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/frontend/gui"
	"github.com/plus3/blockfall/game"
)

const title = "Blockfall"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Printf("Configuration: %s", cfg)

	g, err := gui.NewGame(game.New(game.WithSeed(cfg.Seed)), cfg)
	if err != nil {
		log.Fatalf("Failed to set up game: %v", err)
	}

	if cfg.Debug {
		g.SetOverlay(debugui.NewOverlay(title+" (debug)", 1280, 720))
		g.Scheduler.Register(debugui.NewSystem(g.Scheduler))
	}

	if err := g.Run(title); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}

	state := g.Scheduler.State()
	log.Printf("Final score %d after %d lines", state.Score(), state.LinesCleared())
}
