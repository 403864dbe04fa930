package main

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportGenerate(t *testing.T) {
	report := &Report{
		Duration:     time.Second,
		Seed:         7,
		TickInterval: 300 * time.Millisecond,
		UpdateTime: Stats{
			Samples: []time.Duration{time.Microsecond, 3 * time.Microsecond},
		},
	}
	report.Add(GameResult{Seed: 7, Score: 100, Lines: 1, Pieces: 20, Over: true})
	report.Add(GameResult{Seed: 8, Score: 300, Lines: 3, Pieces: 31, Over: true})
	report.UpdateTime.Finalize()

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Played:** 2 (2 reached game over)")
	assert.Contains(t, out, "**Average Score:** 200.0")
	assert.Contains(t, out, "**Best Score:** 300 (seed 8, 3 lines, 31 pieces)")
	assert.Contains(t, out, "**Lines Cleared:** 4")
	assert.Contains(t, out, "**Avg:** 2µs")
	assert.NotContains(t, out, "GC Pause")
}

func TestStatsFinalize(t *testing.T) {
	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)

	s := Stats{Samples: []time.Duration{5, 1, 3}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(5), s.Max)
	assert.Equal(t, time.Duration(3), s.Avg)
}

func TestRandomPlayerFinishesGame(t *testing.T) {
	state := game.New(game.WithSeed(5))
	player := &randomPlayer{rng: rand.New(rand.NewPCG(5, 0)), chance: 0.5}
	scheduler, _ := loop.NewGameScheduler(state, 300*time.Millisecond, player, &loop.LabelSet{})

	for frame := 0; !state.GameOver(); frame++ {
		require.Less(t, frame, 1_000_000, "game never ended")
		scheduler.Once(0.1)
	}

	assert.True(t, state.GameOver())
	assert.Positive(t, state.PiecesSpawned())
}
