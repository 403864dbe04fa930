package loop

import (
	"log"

	"github.com/plus3/blockfall/game"
)

// Labels is the text display of a frontend.
type Labels interface {
	SetScore(text string)
	SetGameOver(text string)
}

// LabelSet is a Labels implementation that keeps the current texts for a
// frontend to draw.
type LabelSet struct {
	Score    string
	GameOver string
}

func (l *LabelSet) SetScore(text string) {
	l.Score = text
}

func (l *LabelSet) SetGameOver(text string) {
	l.GameOver = text
}

// HUDSystem refreshes the labels when the score or the phase changes. The
// first frame always sets both labels.
type HUDSystem struct {
	Labels Labels
	// Logger reports the end of the game. Nil uses the standard logger.
	Logger *log.Logger

	primed    bool
	lastScore int
	lastOver  bool
}

func (h *HUDSystem) logf(format string, args ...any) {
	if h.Logger != nil {
		h.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func (h *HUDSystem) Execute(frame *Frame) {
	if h.Labels == nil {
		return
	}

	score := frame.State.Score()
	over := frame.State.GameOver()

	if !h.primed || score != h.lastScore {
		text := game.ScoreLabel(score)
		frame.Commands.Defer(func() { h.Labels.SetScore(text) })
	}

	if !h.primed || over != h.lastOver {
		text := game.GameOverLabel(over, score)
		frame.Commands.Defer(func() { h.Labels.SetGameOver(text) })
		if over {
			h.logf("game over: score %d, %d lines", score, frame.State.LinesCleared())
		}
	}

	h.primed = true
	h.lastScore = score
	h.lastOver = over
}
