package loop

import "github.com/plus3/blockfall/game"

// Frame is handed to every system during one Scheduler.Once call.
type Frame struct {
	DeltaTime float64
	State     *game.State
	Commands  *Commands
}

func newFrame(dt float64, state *game.State) *Frame {
	return &Frame{
		DeltaTime: dt,
		State:     state,
		Commands:  newCommands(),
	}
}
