package game

import (
	"fmt"
	"log"
)

// Action names a command the presentation layer can issue.
type Action string

const (
	ActionMove   = Action("MOVE")
	ActionType   = Action("TYPE")
	ActionClear  = Action("CLEAR")
	ActionToggle = Action("TOGGLE")
)

// Command is one discrete user action.
type Command struct {
	Action Action
	// Only populated for Action == ActionMove
	Direction Direction
	// Only populated for Action == ActionType
	Letter rune
}

// Move returns a MoveCursor command.
func Move(d Direction) Command {
	return Command{Action: ActionMove, Direction: d}
}

// Type returns a TypeLetter command.
func Type(ch rune) Command {
	return Command{Action: ActionType, Letter: ch}
}

// Clear returns a ClearCell command.
func Clear() Command {
	return Command{Action: ActionClear}
}

// Toggle returns a ToggleTypingDirection command.
func Toggle() Command {
	return Command{Action: ActionToggle}
}

func (c Command) String() string {
	switch c.Action {
	case ActionMove:
		return fmt.Sprintf("%s %s", c.Action, c.Direction)
	case ActionType:
		return fmt.Sprintf("%s %q", c.Action, c.Letter)
	}
	return string(c.Action)
}

// Apply dispatches cmd to the matching transition. Every command is a total
// transition; unknown actions are logged and leave the state unchanged.
func (s *State) Apply(cmd Command) {
	switch cmd.Action {
	case ActionMove:
		s.MoveCursor(cmd.Direction)
	case ActionType:
		s.TypeLetter(cmd.Letter)
	case ActionClear:
		s.ClearCell()
	case ActionToggle:
		s.ToggleTypingDirection()
	default:
		log.Printf("[Session %s] ignoring unknown action %q", s.shortID(), cmd.Action)
	}
}

// ApplyAll applies cmds in order.
func (s *State) ApplyAll(cmds []Command) {
	for _, cmd := range cmds {
		s.Apply(cmd)
	}
}
