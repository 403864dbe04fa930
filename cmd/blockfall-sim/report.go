package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"
)

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Seed   int64
	Score  int
	Lines  int
	Pieces int
	Frames int64
	Over   bool
}

type Report struct {
	// Configuration
	Duration     time.Duration
	Seed         int64
	TickInterval time.Duration

	// Results
	Games          []GameResult
	TotalTime      time.Duration
	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Add records a finished game.
func (r *Report) Add(result GameResult) {
	r.Games = append(r.Games, result)
}

// Finished counts games that reached game over.
func (r *Report) Finished() int {
	n := 0
	for _, g := range r.Games {
		if g.Over {
			n++
		}
	}
	return n
}

// Best returns the highest scoring game.
func (r *Report) Best() GameResult {
	var best GameResult
	for i, g := range r.Games {
		if i == 0 || g.Score > best.Score {
			best = g
		}
	}
	return best
}

// AvgScore is the mean score over all games.
func (r *Report) AvgScore() float64 {
	if len(r.Games) == 0 {
		return 0
	}
	total := 0
	for _, g := range r.Games {
		total += g.Score
	}
	return float64(total) / float64(len(r.Games))
}

// TotalLines sums the cleared lines of all games.
func (r *Report) TotalLines() int {
	total := 0
	for _, g := range r.Games {
		total += g.Lines
	}
	return total
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Max Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Tick Interval:** {{.TickInterval}}

## Games
- **Played:** {{len .Games}} ({{.Finished}} reached game over)
- **Average Score:** {{printf "%.1f" .AvgScore}}
- **Best Score:** {{.Best.Score}} (seed {{.Best.Seed}}, {{.Best.Lines}} lines, {{.Best.Pieces}} pieces)
- **Lines Cleared:** {{.TotalLines}}

## Frame Timing
- **Frames:** {{len .UpdateTime.Samples}}
- **Total Time:** {{.TotalTime}}
- **Avg:** {{.UpdateTime.Avg}}
- **Min:** {{.UpdateTime.Min}}
- **Max:** {{.UpdateTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc: {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:      {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
