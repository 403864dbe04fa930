package loop

import "github.com/plus3/blockfall/game"

// ActionSource hands over the actions collected since the last frame.
type ActionSource interface {
	Drain() []game.Action
}

// ActionQueue collects actions between frames. Frontends push key presses
// into it from the same goroutine that runs the scheduler.
type ActionQueue struct {
	actions []game.Action
}

// Push appends a to the queue.
func (q *ActionQueue) Push(a game.Action) {
	q.actions = append(q.actions, a)
}

// Len returns the number of pending actions.
func (q *ActionQueue) Len() int {
	return len(q.actions)
}

// Drain returns the pending actions and empties the queue.
func (q *ActionQueue) Drain() []game.Action {
	if len(q.actions) == 0 {
		return nil
	}
	drained := q.actions
	q.actions = nil
	return drained
}

// InputSystem applies pending actions to the game in arrival order. Actions
// arriving after the game ended are dropped.
type InputSystem struct {
	Source ActionSource

	applied int64
}

// Applied returns how many actions reached the game.
func (i *InputSystem) Applied() int64 {
	return i.applied
}

func (i *InputSystem) Execute(frame *Frame) {
	if i.Source == nil {
		return
	}

	for _, action := range i.Source.Drain() {
		if frame.State.GameOver() {
			return
		}
		frame.State.Dispatch(action)
		i.applied++
	}
}
