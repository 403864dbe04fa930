package loop

import "time"

// DefaultTickInterval is the gravity period used when none is configured.
const DefaultTickInterval = 300 * time.Millisecond

// GravitySystem is the game clock. It accumulates frame time and ticks the
// game once for every full Interval. Once the game is over it stops
// accumulating and never ticks again.
type GravitySystem struct {
	Interval time.Duration

	accumulator float64
	ticks       int64
}

// Ticks returns how many ticks have been issued.
func (g *GravitySystem) Ticks() int64 {
	return g.ticks
}

func (g *GravitySystem) interval() float64 {
	if g.Interval <= 0 {
		return DefaultTickInterval.Seconds()
	}
	return g.Interval.Seconds()
}

func (g *GravitySystem) Execute(frame *Frame) {
	state := frame.State
	if state.GameOver() {
		g.accumulator = 0
		return
	}

	period := g.interval()
	g.accumulator += frame.DeltaTime

	for g.accumulator >= period {
		g.accumulator -= period
		state.Tick()
		g.ticks++

		if state.GameOver() {
			g.accumulator = 0
			return
		}
	}
}
