// Package render draws puzzles and sessions on a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dyluth/xword/internal/game"
	"github.com/dyluth/xword/pkg/puz"
	"github.com/fatih/color"
)

// Options controls grid rendering.
type Options struct {
	// Color enables ANSI highlighting of the cursor, the selected word and
	// wrong letters.
	Color bool
	// ShowNumbers prints clue numbers in empty cells.
	ShowNumbers bool
}

// Box-drawing pieces: left edge, fill, inner junction, right edge.
var (
	boxTop = [4]string{"┌", "─", "┬", "┐"}
	boxMid = [4]string{"├", "─", "┼", "┤"}
	boxBot = [4]string{"└", "─", "┴", "┘"}
)

const (
	boxVertical = "│"
	blackFill   = "███"
	cellWidth   = 3
)

var (
	cursorStyle    = forced(color.ReverseVideo)
	selectedStyle  = forced(color.BgCyan, color.FgBlack)
	incorrectStyle = forced(color.FgRed, color.Bold)
)

func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// FromState returns the render descriptors of a running session.
func FromState(s *game.State) [][]game.CellView {
	return s.Cells()
}

// FromDocument returns render descriptors for a decoded puzzle. With reveal
// set the solution letters are shown, otherwise the stored player state.
// Letters in the player state are marked correct when they match the
// solution.
func FromDocument(doc *puz.Document, reveal bool) [][]game.CellView {
	rows := make([][]game.CellView, doc.Height())
	for r := range rows {
		rows[r] = make([]game.CellView, doc.Width())
		for c := range rows[r] {
			pos := puz.Position{Row: r, Col: c}
			sol := doc.Solution.At(pos)
			cell := doc.PlayerState.At(pos)
			if reveal {
				cell = sol
			}
			num, _ := doc.Numbering.NumberAt(pos)
			rows[r][c] = game.CellView{
				Pos:     pos,
				Glyph:   cell.Glyph(),
				Number:  num,
				Black:   sol.Kind == puz.Black,
				Filled:  cell.Filled(),
				Correct: cell.Filled() && sol.Kind == puz.CorrectFill && cell.Letter == sol.Letter,
			}
		}
	}
	return rows
}

// Grid writes rows as a box-drawn grid.
func Grid(w io.Writer, rows [][]game.CellView, opts Options) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	width := len(rows[0])

	var b strings.Builder
	for r, row := range rows {
		if r == 0 {
			b.WriteString(divider(width, boxTop))
		} else {
			b.WriteString(divider(width, boxMid))
		}
		b.WriteString(boxVertical)
		for _, cv := range row {
			b.WriteString(cellText(cv, opts))
			b.WriteString(boxVertical)
		}
		b.WriteString("\n")
	}
	b.WriteString(divider(width, boxBot))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write grid: %w", err)
	}
	return nil
}

func divider(n int, box [4]string) string {
	fill := strings.Repeat(box[1], cellWidth)
	var b strings.Builder
	for j := 0; j < n; j++ {
		if j == 0 {
			b.WriteString(box[0])
		} else {
			b.WriteString(box[2])
		}
		b.WriteString(fill)
	}
	b.WriteString(box[3])
	b.WriteString("\n")
	return b.String()
}

func cellText(cv game.CellView, opts Options) string {
	if cv.Black {
		return blackFill
	}

	text := "   "
	switch {
	case cv.Cursor:
		text = fmt.Sprintf("[%c]", cv.Glyph)
	case cv.Filled:
		text = fmt.Sprintf(" %c ", cv.Glyph)
	case opts.ShowNumbers && cv.Number > 0:
		text = fmt.Sprintf("%3d", cv.Number)
	}

	if !opts.Color {
		return text
	}
	switch {
	case cv.Cursor:
		return cursorStyle.Sprint(text)
	case cv.Filled && !cv.Correct:
		return incorrectStyle.Sprint(text)
	case cv.Selected:
		return selectedStyle.Sprint(text)
	}
	return text
}
