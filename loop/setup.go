package loop

import (
	"time"

	"github.com/plus3/blockfall/game"
)

// Systems are the standard systems of a playable game.
type Systems struct {
	Input   *InputSystem
	Gravity *GravitySystem
	HUD     *HUDSystem
}

// NewGameScheduler registers input, gravity and HUD systems, in that order,
// on a new scheduler for state.
func NewGameScheduler(state *game.State, interval time.Duration, source ActionSource, labels Labels) (*Scheduler, Systems) {
	systems := Systems{
		Input:   &InputSystem{Source: source},
		Gravity: &GravitySystem{Interval: interval},
		HUD:     &HUDSystem{Labels: labels},
	}

	scheduler := NewScheduler(state)
	scheduler.Register(systems.Input)
	scheduler.Register(systems.Gravity)
	scheduler.Register(systems.HUD)

	return scheduler, systems
}
