// Command blockfall-sim plays games headlessly with a random player and
// reports scores and frame timings. It exercises the same scheduler and
// systems as the interactive frontends.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

// randomPlayer presses one random key on a fraction of frames.
type randomPlayer struct {
	rng    *rand.Rand
	chance float64
}

func (p *randomPlayer) Drain() []game.Action {
	if p.rng.Float64() >= p.chance {
		return nil
	}
	actions := game.Actions()
	return []game.Action{actions[p.rng.IntN(len(actions))]}
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "Maximum wall time to simulate for.")
	games := flag.Int("games", 100, "Number of games to play.")
	framesPerTick := flag.Int("frames-per-tick", 5, "Frames simulated per gravity tick.")
	inputChance := flag.Float64("input-chance", 0.3, "Probability of a key press per frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *framesPerTick <= 0 {
		log.Fatalf("frames-per-tick must be positive, got %d", *framesPerTick)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int64()
	}
	log.Printf("Simulating %d games with seed %d...", *games, seed)

	report := &Report{
		Duration:       *duration,
		Seed:           seed,
		TickInterval:   cfg.TickInterval,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	dt := cfg.TickInterval.Seconds() / float64(*framesPerTick)
	startTime := time.Now()

	for i := 0; i < *games && ctx.Err() == nil; i++ {
		gameSeed := seed + int64(i)
		state := game.New(game.WithRand(rand.New(rand.NewPCG(uint64(gameSeed), uint64(gameSeed)))))
		player := &randomPlayer{
			rng:    rand.New(rand.NewPCG(uint64(gameSeed), 0)),
			chance: *inputChance,
		}
		scheduler, systems := loop.NewGameScheduler(state, cfg.TickInterval, player, &loop.LabelSet{})
		systems.HUD.Logger = log.New(os.Stderr, fmt.Sprintf("game %d: ", i), 0)

		for !state.GameOver() && ctx.Err() == nil {
			updateStart := time.Now()
			scheduler.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}

		report.Add(GameResult{
			Seed:   gameSeed,
			Score:  state.Score(),
			Lines:  state.LinesCleared(),
			Pieces: state.PiecesSpawned(),
			Frames: scheduler.GetStats().Frames,
			Over:   state.GameOver(),
		})
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
