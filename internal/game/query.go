package game

import (
	"fmt"
	"log"

	"github.com/dyluth/xword/pkg/puz"
)

// CellView is the render descriptor for one cell.
type CellView struct {
	Pos      puz.Position
	Glyph    rune
	Number   int // printed clue number, 0 if none
	Black    bool
	Filled   bool
	Correct  bool
	Cursor   bool
	Selected bool
}

// ActiveClue describes the clue for the selected word.
type ActiveClue struct {
	Found     bool
	Index     int
	Number    int
	Pos       puz.Position
	Direction puz.TypingDirection
	Text      string
}

// Progress counts filled and correct cells.
type Progress struct {
	Open    int
	Filled  int
	Correct int
}

// Cursor returns the cursor position.
func (s *State) Cursor() puz.Position { return s.cursor }

// TypingDirection returns the current typing direction.
func (s *State) TypingDirection() puz.TypingDirection { return s.dir }

// Cell returns the player cell at p.
func (s *State) Cell(p puz.Position) puz.Cell { return s.player.At(p) }

// Selection returns the selected word, sorted row-major.
func (s *State) Selection() []puz.Position {
	return append([]puz.Position(nil), s.selection...)
}

// Selected reports whether p is part of the selected word.
func (s *State) Selected(p puz.Position) bool {
	for _, sp := range s.selection {
		if sp == p {
			return true
		}
	}
	return false
}

// Cells returns a render descriptor for every cell, row by row.
func (s *State) Cells() [][]CellView {
	rows := make([][]CellView, s.height())
	for r := range rows {
		rows[r] = make([]CellView, s.width())
		for c := range rows[r] {
			pos := puz.Position{Row: r, Col: c}
			cell := s.player.At(pos)
			num, _ := s.numbering.NumberAt(pos)
			rows[r][c] = CellView{
				Pos:      pos,
				Glyph:    cell.Glyph(),
				Number:   num,
				Black:    cell.Kind == puz.Black,
				Filled:   cell.Filled(),
				Correct:  cell.Kind == puz.CorrectFill,
				Cursor:   pos == s.cursor,
				Selected: s.Selected(pos),
			}
		}
	}
	return rows
}

// CurrentClue looks up the clue for the selected word, keyed by the word's
// first cell and the typing direction.
func (s *State) CurrentClue() ActiveClue {
	ac := ActiveClue{Direction: s.dir}
	if len(s.selection) == 0 {
		return ac
	}
	ac.Pos = s.selection[0]

	entry, ok := s.index.Lookup(ac.Pos, s.dir)
	if !ok || entry.Index >= len(s.clues) {
		log.Printf("[Session %s] no clue index for %s %s", s.shortID(), ac.Pos, s.dir)
		return ac
	}

	ac.Found = true
	ac.Index = entry.Index
	ac.Number = entry.Number
	ac.Text = s.clues[entry.Index]
	return ac
}

// CurrentClueText formats the active clue as "12 Across: text", or a
// diagnostic placeholder when the word has no clue.
func (s *State) CurrentClueText() string {
	ac := s.CurrentClue()
	if !ac.Found {
		return fmt.Sprintf("no clue for %s %s", ac.Pos, ac.Direction)
	}
	return fmt.Sprintf("%d %s: %s", ac.Number, ac.Direction, ac.Text)
}

// Progress counts open, filled and correctly filled cells.
func (s *State) Progress() Progress {
	var p Progress
	for r := 0; r < s.height(); r++ {
		for c := 0; c < s.width(); c++ {
			cell := s.player.At(puz.Position{Row: r, Col: c})
			if cell.Kind == puz.Black {
				continue
			}
			p.Open++
			if cell.Filled() {
				p.Filled++
			}
			if cell.Kind == puz.CorrectFill {
				p.Correct++
			}
		}
	}
	return p
}

// Solved reports whether every open cell holds the correct letter.
func (s *State) Solved() bool {
	p := s.Progress()
	return p.Open > 0 && p.Correct == p.Open
}
