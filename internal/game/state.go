// Package game holds the runtime state of a solving session: the player grid,
// the cursor, the typing direction and the selected word. The presentation
// layer drives it through discrete commands, one at a time.
package game

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"unicode"

	"github.com/dyluth/xword/pkg/puz"
	"github.com/google/uuid"
)

// ErrDegenerateGrid is returned when a grid has no writable cell, so the
// cursor would have nowhere to rest.
var ErrDegenerateGrid = errors.New("game: grid has no writable cell")

// SeedMode selects how the player grid is initialised.
type SeedMode string

const (
	// SeedEmpty starts with every open cell empty
	SeedEmpty SeedMode = "empty"
	// SeedSaved resumes from the player-state grid stored in the file
	SeedSaved SeedMode = "saved"
)

// Validate checks that the SeedMode is a known value.
func (m SeedMode) Validate() error {
	switch m {
	case SeedEmpty, SeedSaved:
		return nil
	default:
		return fmt.Errorf("unknown seed mode: %q (must be 'empty' or 'saved')", m)
	}
}

// Options configures a new session.
type Options struct {
	Seed      SeedMode
	Direction puz.TypingDirection
}

// State is one solving session. It is not safe for concurrent use; callers
// apply one command at a time.
type State struct {
	ID string

	solution  *puz.Grid
	player    *puz.Grid
	clues     []string
	index     *puz.ClueIndexTable
	numbering *puz.CellNumbering

	cursor    puz.Position
	dir       puz.TypingDirection
	selection []puz.Position
}

// ValidateGrid rejects grids the cursor cannot move on.
func ValidateGrid(g *puz.Grid) error {
	if g == nil || g.Width() == 0 || g.Height() == 0 {
		return fmt.Errorf("%w: empty grid", ErrDegenerateGrid)
	}
	if g.CountOpen() == 0 {
		return fmt.Errorf("%w: all %d cells are black", ErrDegenerateGrid, g.Width()*g.Height())
	}
	return nil
}

// New starts a session on doc. The document is never modified.
func New(doc *puz.Document, opts Options) (*State, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is required")
	}
	if err := ValidateGrid(doc.Solution); err != nil {
		return nil, err
	}
	if opts.Seed == "" {
		opts.Seed = SeedEmpty
	}
	if err := opts.Seed.Validate(); err != nil {
		return nil, err
	}

	s := &State{
		ID:        uuid.New().String(),
		solution:  doc.Solution,
		player:    seedPlayerGrid(doc, opts.Seed),
		clues:     doc.Clues,
		index:     doc.Index,
		numbering: doc.Numbering,
		dir:       opts.Direction,
	}
	s.cursor = s.firstOpen()
	s.updateSelection()

	log.Printf("[Session %s] started %dx%d puzzle (seed=%s, direction=%s)",
		s.shortID(), s.width(), s.height(), opts.Seed, s.dir)

	return s, nil
}

func seedPlayerGrid(doc *puz.Document, mode SeedMode) *puz.Grid {
	sol := doc.Solution
	player := puz.NewGrid(sol.Width(), sol.Height())

	for r := 0; r < sol.Height(); r++ {
		for c := 0; c < sol.Width(); c++ {
			pos := puz.Position{Row: r, Col: c}
			if sol.IsBlack(pos) {
				player.Set(pos, puz.Cell{Kind: puz.Black})
				continue
			}
			if mode != SeedSaved || doc.PlayerState == nil {
				continue
			}
			saved := doc.PlayerState.At(pos)
			if saved.Filled() {
				player.Set(pos, judge(sol.At(pos), saved.Letter))
			}
		}
	}

	return player
}

// judge compares a typed letter against the solution cell.
func judge(sol puz.Cell, ch rune) puz.Cell {
	ch = unicode.ToUpper(ch)
	if sol.Kind == puz.CorrectFill && unicode.ToUpper(sol.Letter) == ch {
		return puz.Cell{Kind: puz.CorrectFill, Letter: ch}
	}
	return puz.Cell{Kind: puz.IncorrectFill, Letter: ch}
}

func (s *State) width() int  { return s.solution.Width() }
func (s *State) height() int { return s.solution.Height() }

func (s *State) shortID() string {
	if len(s.ID) > 8 {
		return s.ID[:8]
	}
	return s.ID
}

func (s *State) firstOpen() puz.Position {
	for r := 0; r < s.height(); r++ {
		for c := 0; c < s.width(); c++ {
			pos := puz.Position{Row: r, Col: c}
			if !s.solution.IsBlack(pos) {
				return pos
			}
		}
	}
	return puz.Position{}
}

// MoveCursor steps the cursor one cell in d, wrapping around the grid. A step
// that wraps is followed by one step in d.Alternate(). Black cells are skipped
// by repeating the whole procedure.
func (s *State) MoveCursor(d Direction) {
	alt := d.Alternate()

	// Each direction visits every cell once per width*height steps, and
	// ValidateGrid guarantees an open cell exists.
	limit := s.width() * s.height()
	for i := 0; i < limit; i++ {
		if s.step(d) {
			s.step(alt)
		}
		if !s.solution.IsBlack(s.cursor) {
			break
		}
	}

	s.updateSelection()
}

// step moves the cursor a single cell with modular wraparound and reports
// whether it crossed an edge.
func (s *State) step(d Direction) bool {
	dr, dc := d.delta()
	row := s.cursor.Row + dr
	col := s.cursor.Col + dc

	wrapped := false
	switch {
	case row < 0:
		row, wrapped = s.height()-1, true
	case row >= s.height():
		row, wrapped = 0, true
	}
	switch {
	case col < 0:
		col, wrapped = s.width()-1, true
	case col >= s.width():
		col, wrapped = 0, true
	}

	s.cursor = puz.Position{Row: row, Col: col}
	return wrapped
}

// TypeLetter fills the cursor cell with ch, judged against the solution, then
// advances in the typing direction.
func (s *State) TypeLetter(ch rune) {
	if s.solution.IsBlack(s.cursor) {
		return
	}
	s.player.Set(s.cursor, judge(s.solution.At(s.cursor), ch))
	s.MoveCursor(Forward(s.dir))
}

// ClearCell empties the cursor cell. The cursor does not move.
func (s *State) ClearCell() {
	if s.solution.IsBlack(s.cursor) {
		return
	}
	s.player.Set(s.cursor, puz.Cell{Kind: puz.Empty})
}

// ToggleTypingDirection flips between Across and Down.
func (s *State) ToggleTypingDirection() {
	s.dir = s.dir.Toggle()
	s.updateSelection()
}

func (s *State) updateSelection() {
	s.selection = s.recalcSelection()
}

// recalcSelection collects the maximal run of open cells through the cursor
// along the typing axis, sorted row-major.
func (s *State) recalcSelection() []puz.Position {
	deltas := [2][2]int{{0, -1}, {0, 1}}
	if s.dir == puz.Down {
		deltas = [2][2]int{{-1, 0}, {1, 0}}
	}

	sel := []puz.Position{s.cursor}
	for _, d := range deltas {
		p := puz.Position{Row: s.cursor.Row + d[0], Col: s.cursor.Col + d[1]}
		for s.solution.InBounds(p) && !s.solution.IsBlack(p) {
			sel = append(sel, p)
			p = puz.Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		}
	}

	sort.Slice(sel, func(i, j int) bool { return sel[i].Less(sel[j]) })
	return sel
}
