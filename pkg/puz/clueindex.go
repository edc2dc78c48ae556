package puz

// ClueKey identifies a word by its start cell and direction.
type ClueKey struct {
	Pos Position
	Dir TypingDirection
}

// ClueEntry is one row of a ClueIndexTable.
type ClueEntry struct {
	Index  int             `json:"index"`
	Number int             `json:"number"`
	Pos    Position        `json:"pos"`
	Dir    TypingDirection `json:"dir"`
}

// ClueIndexTable maps (start position, direction) to a contiguous 0-based clue
// index. Entries are kept in index order.
type ClueIndexTable struct {
	entries []ClueEntry
	byKey   map[ClueKey]int
}

// DeriveClueIndex walks the numbering in ascending number order and assigns
// indices, across before down when a number starts both.
func DeriveClueIndex(n *CellNumbering) *ClueIndexTable {
	t := &ClueIndexTable{byKey: make(map[ClueKey]int)}

	for _, num := range n.Numbers() {
		pos := n.positions[num]
		if n.IsAcross(num) {
			t.add(num, pos, Across)
		}
		if n.IsDown(num) {
			t.add(num, pos, Down)
		}
	}

	return t
}

func (t *ClueIndexTable) add(num int, pos Position, dir TypingDirection) {
	idx := len(t.entries)
	t.entries = append(t.entries, ClueEntry{Index: idx, Number: num, Pos: pos, Dir: dir})
	t.byKey[ClueKey{Pos: pos, Dir: dir}] = idx
}

// Lookup returns the entry for the word starting at pos in direction dir.
func (t *ClueIndexTable) Lookup(pos Position, dir TypingDirection) (ClueEntry, bool) {
	idx, ok := t.byKey[ClueKey{Pos: pos, Dir: dir}]
	if !ok {
		return ClueEntry{}, false
	}
	return t.entries[idx], true
}

// At returns the entry with clue index i.
func (t *ClueIndexTable) At(i int) (ClueEntry, bool) {
	if i < 0 || i >= len(t.entries) {
		return ClueEntry{}, false
	}
	return t.entries[i], true
}

// Len returns the number of entries.
func (t *ClueIndexTable) Len() int {
	return len(t.entries)
}

// Entries returns a copy of all entries in index order.
func (t *ClueIndexTable) Entries() []ClueEntry {
	return append([]ClueEntry(nil), t.entries...)
}

// Filter returns the entries running in dir, in index order.
func (t *ClueIndexTable) Filter(dir TypingDirection) []ClueEntry {
	var out []ClueEntry
	for _, e := range t.entries {
		if e.Dir == dir {
			out = append(out, e)
		}
	}
	return out
}
