package puz

import (
	"fmt"
	"strings"
)

// Grid is a rectangular height x width array of cells stored row-major.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid returns a width x height grid of Empty cells.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// ParseGrid builds a grid from rows of text using the file's markers:
// '.' is Black, '_' and '-' are Empty, anything else is the answer letter.
// Every row must have the same length.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid must contain at least one row")
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("grid rows must contain at least one column")
	}

	g := NewGrid(width, len(rows))
	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("grid rows should contain %d columns (failed at row %d with %d)", width, r, len(runes))
		}
		for c, ch := range runes {
			g.cells[r*width+c] = cellFromRune(ch)
		}
	}
	return g, nil
}

// MustParseGrid is ParseGrid that panics on malformed input. Intended for
// fixtures.
func MustParseGrid(rows ...string) *Grid {
	g, err := ParseGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the cell at p. Out of bounds positions read as Black so that
// word scans stop at the edge.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Cell{Kind: Black}
	}
	return g.cells[p.Row*g.width+p.Col]
}

// Set stores c at p. Out of bounds writes are ignored.
func (g *Grid) Set(p Position, c Cell) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Row*g.width+p.Col] = c
}

// IsBlack reports whether the cell at p is Black or off the grid.
func (g *Grid) IsBlack(p Position) bool {
	return g.At(p).Kind == Black
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cp := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.height)
	for r := range rows {
		rows[r] = make([]Cell, g.width)
		copy(rows[r], g.cells[r*g.width:(r+1)*g.width])
	}
	return rows
}

// CountOpen returns the number of non-Black cells.
func (g *Grid) CountOpen() int {
	n := 0
	for _, c := range g.cells {
		if c.Kind != Black {
			n++
		}
	}
	return n
}

// String renders the grid with the same markers ParseGrid accepts.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			cell := g.cells[r*g.width+c]
			switch cell.Kind {
			case Black:
				sb.WriteRune(blackMarker)
			case Empty:
				sb.WriteRune(emptyMarker)
			default:
				sb.WriteRune(cell.Letter)
			}
		}
		if r+1 < g.height {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
