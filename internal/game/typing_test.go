package game

import (
	"testing"

	"github.com/dyluth/xword/pkg/puz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeLetter_Judging(t *testing.T) {
	testCases := []struct {
		name  string
		input rune
		want  puz.Cell
	}{
		{"matching letter", 'A', puz.Cell{Kind: puz.CorrectFill, Letter: 'A'}},
		{"lower case is normalised", 'a', puz.Cell{Kind: puz.CorrectFill, Letter: 'A'}},
		{"wrong letter", 'B', puz.Cell{Kind: puz.IncorrectFill, Letter: 'B'}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newState(t, "AB", "CD")
			s.TypeLetter(tc.input)
			assert.Equal(t, tc.want, s.Cell(pos(0, 0)))
		})
	}
}

func TestTypeLetter_AdvancesAcross(t *testing.T) {
	s := newState(t, "XYZ", "ABC", "DEF")

	s.TypeLetter('X')
	assert.Equal(t, puz.Cell{Kind: puz.CorrectFill, Letter: 'X'}, s.Cell(pos(0, 0)))
	assert.Equal(t, pos(0, 1), s.Cursor())
}

func TestTypeLetter_WrapsThroughWholeGrid(t *testing.T) {
	s := newState(t, "XYZ", "ABC", "DEF")

	for i := 0; i < 4; i++ {
		s.TypeLetter('Z')
	}
	assert.Equal(t, pos(1, 1), s.Cursor(), "typing wraps from the row end to the next row")

	for i := 0; i < 5; i++ {
		s.TypeLetter('Z')
	}
	assert.Equal(t, pos(0, 0), s.Cursor(), "nine letters visit every cell once")

	p := s.Progress()
	assert.Equal(t, 9, p.Filled)
	assert.Equal(t, 1, p.Correct, "only (0,2) holds Z")
}

func TestTypeLetter_AdvancesDown(t *testing.T) {
	s := newState(t, "AB", "CD")
	s.ToggleTypingDirection()

	s.TypeLetter('A')
	assert.Equal(t, pos(1, 0), s.Cursor())

	s.TypeLetter('C')
	assert.Equal(t, pos(0, 1), s.Cursor(), "wrapping off the bottom steps one column right")
}

func TestTypeLetter_SkipsBlackCells(t *testing.T) {
	s := newState(t, "A.B")

	s.TypeLetter('A')
	assert.Equal(t, pos(0, 2), s.Cursor())
}

func TestClearCell(t *testing.T) {
	s := newState(t, "AB", "CD")
	s.TypeLetter('A')
	s.MoveCursor(Left)
	require.Equal(t, pos(0, 0), s.Cursor())
	sel := s.Selection()

	s.ClearCell()
	assert.Equal(t, puz.Empty, s.Cell(pos(0, 0)).Kind)
	assert.Equal(t, pos(0, 0), s.Cursor(), "clear never moves the cursor")
	assert.Equal(t, sel, s.Selection())

	s.ClearCell()
	assert.Equal(t, puz.Empty, s.Cell(pos(0, 0)).Kind, "clearing an empty cell is a no-op")
}

func TestApply(t *testing.T) {
	s := newState(t, "CAT", "A.O", "BEE")

	s.ApplyAll([]Command{
		Type('c'),
		Type('a'),
		Type('t'),
		Move(Up),
		Toggle(),
		Clear(),
	})

	// After typing CAT the cursor wraps to (1,0); Up returns to (0,0).
	assert.Equal(t, pos(0, 0), s.Cursor())
	assert.Equal(t, puz.Down, s.TypingDirection())
	assert.Equal(t, puz.Empty, s.Cell(pos(0, 0)).Kind)
	assert.Equal(t, puz.CorrectFill, s.Cell(pos(0, 1)).Kind)
	assert.Equal(t, "1 Down: clue 1", s.CurrentClueText())
}

func TestApply_UnknownActionIsNoOp(t *testing.T) {
	s := newState(t, "AB", "CD")
	before := s.Cells()

	s.Apply(Command{Action: "JUMP"})
	assert.Equal(t, before, s.Cells())
}

func TestCells(t *testing.T) {
	s := newState(t, "CAT", "A.O", "BEE")
	s.TypeLetter('C')
	s.TypeLetter('X')

	rows := s.Cells()
	require.Len(t, rows, 3)
	require.Len(t, rows[0], 3)

	assert.Equal(t, CellView{Pos: pos(0, 0), Glyph: 'C', Number: 1, Filled: true, Correct: true, Selected: true}, rows[0][0])
	assert.Equal(t, CellView{Pos: pos(0, 1), Glyph: 'X', Filled: true, Selected: true}, rows[0][1])
	assert.Equal(t, CellView{Pos: pos(0, 2), Glyph: ' ', Number: 2, Cursor: true, Selected: true}, rows[0][2])
	assert.Equal(t, CellView{Pos: pos(1, 1), Glyph: ' ', Black: true}, rows[1][1])
}

func TestSolved(t *testing.T) {
	s := newState(t, "AB", "CD")
	assert.False(t, s.Solved())

	for _, ch := range "ABCD" {
		s.TypeLetter(ch)
	}
	assert.True(t, s.Solved())
	assert.Equal(t, Progress{Open: 4, Filled: 4, Correct: 4}, s.Progress())
}
