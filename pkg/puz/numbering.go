package puz

import "sort"

// CellNumbering holds the printed clue numbers derived from a solution grid.
// A cell carries at most one number; that number may start an across word, a
// down word, or both.
type CellNumbering struct {
	across    []int
	down      []int
	positions map[int]Position
	numbers   map[Position]int
}

// NumberedCell is one word-start cell of a numbering.
type NumberedCell struct {
	Number int
	Pos    Position
	Across bool
	Down   bool
}

// DeriveNumbering scans the solution grid row-major and assigns a number to
// every cell that starts an across or down word of at least two cells. The
// counter starts at 1 and advances once per numbered cell.
func DeriveNumbering(g *Grid) *CellNumbering {
	n := &CellNumbering{
		positions: make(map[int]Position),
		numbers:   make(map[Position]int),
	}

	next := 1
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			pos := Position{Row: r, Col: c}
			if g.IsBlack(pos) {
				continue
			}

			across := needsAcrossNumber(g, r, c)
			down := needsDownNumber(g, r, c)
			if !across && !down {
				continue
			}

			if across {
				n.across = append(n.across, next)
			}
			if down {
				n.down = append(n.down, next)
			}
			n.positions[next] = pos
			n.numbers[pos] = next
			next++
		}
	}

	return n
}

func needsAcrossNumber(g *Grid, r, c int) bool {
	startsRun := c == 0 || g.IsBlack(Position{Row: r, Col: c - 1})
	continues := c+1 < g.Width() && !g.IsBlack(Position{Row: r, Col: c + 1})
	return startsRun && continues
}

func needsDownNumber(g *Grid, r, c int) bool {
	startsRun := r == 0 || g.IsBlack(Position{Row: r - 1, Col: c})
	continues := r+1 < g.Height() && !g.IsBlack(Position{Row: r + 1, Col: c})
	return startsRun && continues
}

// Across returns the across-start numbers in ascending order.
func (n *CellNumbering) Across() []int {
	return append([]int(nil), n.across...)
}

// Down returns the down-start numbers in ascending order.
func (n *CellNumbering) Down() []int {
	return append([]int(nil), n.down...)
}

// Numbers returns the ascending union of across and down numbers.
func (n *CellNumbering) Numbers() []int {
	all := make([]int, 0, len(n.positions))
	for num := range n.positions {
		all = append(all, num)
	}
	sort.Ints(all)
	return all
}

// Position returns the cell that carries num.
func (n *CellNumbering) Position(num int) (Position, bool) {
	p, ok := n.positions[num]
	return p, ok
}

// NumberAt returns the number printed in the cell at p, if any.
func (n *CellNumbering) NumberAt(p Position) (int, bool) {
	num, ok := n.numbers[p]
	return num, ok
}

// IsAcross reports whether num starts an across word.
func (n *CellNumbering) IsAcross(num int) bool {
	return containsSorted(n.across, num)
}

// IsDown reports whether num starts a down word.
func (n *CellNumbering) IsDown(num int) bool {
	return containsSorted(n.down, num)
}

// Cells returns every numbered cell in ascending number order.
func (n *CellNumbering) Cells() []NumberedCell {
	nums := n.Numbers()
	out := make([]NumberedCell, 0, len(nums))
	for _, num := range nums {
		out = append(out, NumberedCell{
			Number: num,
			Pos:    n.positions[num],
			Across: n.IsAcross(num),
			Down:   n.IsDown(num),
		})
	}
	return out
}

func containsSorted(s []int, v int) bool {
	i := sort.SearchInts(s, v)
	return i < len(s) && s[i] == v
}
