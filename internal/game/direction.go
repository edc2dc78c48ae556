package game

import (
	"fmt"

	"github.com/dyluth/xword/pkg/puz"
)

// Direction is a cardinal direction the cursor can step in.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// alternates pairs each direction with the one stepped after wrapping off an
// edge. Right and Down go together, as do Left and Up: leaving the right edge
// drops a row like a typewriter carriage return, leaving the bottom edge moves
// one column right, and the reverse directions mirror that.
var alternates = map[Direction]Direction{
	Right: Down,
	Down:  Right,
	Left:  Up,
	Up:    Left,
}

// Alternate returns the direction stepped once after a wrap.
func (d Direction) Alternate() Direction {
	return alternates[d]
}

func (d Direction) delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Forward maps a typing direction to the direction typing advances in.
// Typing never advances left or up.
func Forward(td puz.TypingDirection) Direction {
	if td == puz.Down {
		return Down
	}
	return Right
}
