package main

import (
	"bytes"
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/frontend/term"
	"github.com/plus3/blockfall/game"
)

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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}

	state := game.New(game.WithSeed(cfg.Seed))
	session, err := term.NewSession(screen, state, cfg)
	if err != nil {
		log.Fatalf("Failed to set up game: %v", err)
	}

	// The screen owns the terminal while the game runs; hold log output
	// until it is released.
	var held bytes.Buffer
	log.SetOutput(&held)
	log.Printf("Configuration: %s", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := session.Run(ctx)
	stop()

	log.SetOutput(os.Stderr)
	os.Stderr.Write(held.Bytes())

	if runErr != nil {
		log.Fatalf("Game exited with error: %v", runErr)
	}
	log.Printf("Final score %d after %d lines", state.Score(), state.LinesCleared())
}
