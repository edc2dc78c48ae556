package puz

import "fmt"

// FileMagic is the 12-byte magic string stored at offset 0x02.
const FileMagic = "ACROSS&DOWN\x00"

// Header is the fixed-layout metadata at the start of a puzzle file.
// Checksums are carried for inspection only; they are never verified.
type Header struct {
	Checksum          uint16  `json:"checksum"`
	Magic             string  `json:"magic"`
	CIBChecksum       uint16  `json:"cib_checksum"`
	MaskedLow         [4]byte `json:"masked_low"`
	MaskedHigh        [4]byte `json:"masked_high"`
	Version           string  `json:"version"`
	Reserved1C        [2]byte `json:"reserved_1c"`
	ScrambledChecksum uint16  `json:"scrambled_checksum"`
	Width             int     `json:"width"`
	Height            int     `json:"height"`
	ClueCount         int     `json:"clue_count"`
	Bitmask           uint16  `json:"bitmask"`
	ScrambledTag      uint16  `json:"scrambled_tag"`
}

// Scrambled reports whether the solution in the file is scrambled.
func (h Header) Scrambled() bool {
	return h.ScrambledTag != 0
}

// Strings is the string table of a puzzle file.
type Strings struct {
	Title     string
	Author    string
	Copyright string
	Clues     []string
	Notes     string
}

// Document is a decoded puzzle. It is built once and must not be modified
// afterwards; sessions clone what they need to mutate.
type Document struct {
	Header      Header
	Solution    *Grid
	PlayerState *Grid

	Title     string
	Author    string
	Copyright string
	Notes     string

	// Clues[i] is the text for clue index i.
	Clues []string

	Numbering *CellNumbering
	Index     *ClueIndexTable
}

// NewDocument derives numbering and the clue index from the solution grid
// and checks that there is exactly one clue string per derived word.
func NewDocument(h Header, solution, state *Grid, s Strings) (*Document, error) {
	if solution == nil {
		return nil, fmt.Errorf("solution grid is required")
	}
	if state == nil {
		state = NewGrid(solution.Width(), solution.Height())
	}
	if state.Width() != solution.Width() || state.Height() != solution.Height() {
		return nil, fmt.Errorf("player-state grid is %dx%d, solution is %dx%d",
			state.Width(), state.Height(), solution.Width(), solution.Height())
	}

	numbering := DeriveNumbering(solution)
	index := DeriveClueIndex(numbering)

	if len(s.Clues) != index.Len() {
		return nil, fmt.Errorf("%w: %d clue strings, %d words in grid", ErrClueCountMismatch, len(s.Clues), index.Len())
	}

	return &Document{
		Header:      h,
		Solution:    solution,
		PlayerState: state,
		Title:       s.Title,
		Author:      s.Author,
		Copyright:   s.Copyright,
		Notes:       s.Notes,
		Clues:       append([]string(nil), s.Clues...),
		Numbering:   numbering,
		Index:       index,
	}, nil
}

// ClueText returns the text for clue index i.
func (d *Document) ClueText(i int) (string, bool) {
	if i < 0 || i >= len(d.Clues) {
		return "", false
	}
	return d.Clues[i], true
}

// Width returns the grid width.
func (d *Document) Width() int { return d.Solution.Width() }

// Height returns the grid height.
func (d *Document) Height() int { return d.Solution.Height() }
