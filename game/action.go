package game

import (
	"fmt"
	"strings"
)

// Action is a player command delivered by a frontend.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionDown
	ActionRotate
)

var actionNames = map[Action]string{
	ActionNone:   "none",
	ActionLeft:   "left",
	ActionRight:  "right",
	ActionDown:   "down",
	ActionRotate: "rotate",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Actions lists every dispatchable action.
func Actions() []Action {
	return []Action{ActionLeft, ActionRight, ActionDown, ActionRotate}
}

// ParseAction resolves an action name. "up" is accepted as an alias for
// rotate since that is the key it is bound to.
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return ActionLeft, nil
	case "right":
		return ActionRight, nil
	case "down":
		return ActionDown, nil
	case "up", "rotate":
		return ActionRotate, nil
	default:
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
}

// Dispatch runs the operation bound to a. Down locks the piece when it
// cannot move further. It returns whether the active piece changed position
// or orientation.
func (s *State) Dispatch(a Action) bool {
	switch a {
	case ActionLeft:
		return s.Move(-1, 0)
	case ActionRight:
		return s.Move(1, 0)
	case ActionDown:
		return s.Move(0, 1)
	case ActionRotate:
		return s.Rotate()
	default:
		return false
	}
}
