package puz

import "fmt"

// Position is a (row, col) coordinate on a grid.
// Positions are ordered row-major: row first, then column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Less reports whether p sorts before o in row-major order.
func (p Position) Less(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// TypingDirection is the axis a word runs along.
type TypingDirection int

const (
	// Across words run left to right
	Across TypingDirection = iota
	// Down words run top to bottom
	Down
)

// Toggle returns the other typing direction.
func (d TypingDirection) Toggle() TypingDirection {
	if d == Across {
		return Down
	}
	return Across
}

func (d TypingDirection) String() string {
	switch d {
	case Across:
		return "Across"
	case Down:
		return "Down"
	}
	return fmt.Sprintf("TypingDirection(%d)", int(d))
}

// ParseTypingDirection converts "across" or "down" to a TypingDirection.
func ParseTypingDirection(s string) (TypingDirection, error) {
	switch s {
	case "across", "Across", "a", "A":
		return Across, nil
	case "down", "Down", "d", "D":
		return Down, nil
	}
	return Across, fmt.Errorf("unknown typing direction: %q (must be 'across' or 'down')", s)
}

// CellKind classifies a grid entry.
type CellKind int

const (
	// Empty is a writable cell with no letter in it
	Empty CellKind = iota
	// Black is an unusable cell that terminates words
	Black
	// CorrectFill holds a letter that matches the solution
	CorrectFill
	// IncorrectFill holds a letter that does not match the solution
	IncorrectFill
)

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case CorrectFill:
		return "CorrectFill"
	case IncorrectFill:
		return "IncorrectFill"
	}
	return fmt.Sprintf("CellKind(%d)", int(k))
}

// Cell is a single entry of a solution or player grid.
// Letter is only meaningful for CorrectFill and IncorrectFill.
type Cell struct {
	Kind   CellKind
	Letter rune
}

// Filled reports whether the cell holds a letter.
func (c Cell) Filled() bool {
	return c.Kind == CorrectFill || c.Kind == IncorrectFill
}

// Glyph returns the letter to display for the cell, or a space.
func (c Cell) Glyph() rune {
	if c.Filled() {
		return c.Letter
	}
	return ' '
}

// Byte markers used by both grids in the file.
const (
	blackMarker = '.'
	emptyMarker = '_'
	// unfilled player-state cells are written as '-' by most producers
	stateEmptyMarker = '-'
)

// cellFromRune maps a grid character to a Cell, treating letters as the
// answer key.
func cellFromRune(r rune) Cell {
	switch r {
	case blackMarker:
		return Cell{Kind: Black}
	case emptyMarker, stateEmptyMarker:
		return Cell{Kind: Empty}
	}
	return Cell{Kind: CorrectFill, Letter: r}
}
