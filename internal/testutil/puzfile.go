// Package testutil builds puzzle files for tests.
package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

// PuzFixture describes a puzzle file to encode. Solution rows use the file's
// markers ('.' black, letters for answers).
type PuzFixture struct {
	Solution  []string
	State     []string // defaults to '-' for every open cell
	Title     string
	Author    string
	Copyright string
	Clues     []string
	Notes     string
	Version   string // defaults to "1.3"

	// ClueCount overrides the header clue count when non-nil.
	ClueCount    *int
	ScrambledTag uint16
}

// MiniFixture is a 3x3 puzzle with a single black square:
//
//	C A T
//	A . O
//	B E E
//
// Numbering: 1 (0,0) across+down, 2 (0,2) down, 3 (2,0) across.
func MiniFixture() PuzFixture {
	return PuzFixture{
		Solution:  []string{"CAT", "A.O", "BEE"},
		Title:     "Mini",
		Author:    "Tester",
		Copyright: "© 2026",
		Clues: []string{
			"Feline",        // 1 Across
			"Taxi",          // 1 Down
			"Also, briefly", // 2 Down
			"Hive dwellers", // 3 Across
		},
		Notes: "Have fun",
	}
}

// BuildPuz encodes f as a complete puzzle file with valid checksums.
func BuildPuz(f PuzFixture) []byte {
	height := len(f.Solution)
	width := 0
	if height > 0 {
		width = len(f.Solution[0])
	}

	state := f.State
	if state == nil {
		state = make([]string, height)
		for i, row := range f.Solution {
			state[i] = strings.Map(func(r rune) rune {
				if r == '.' {
					return '.'
				}
				return '-'
			}, row)
		}
	}

	clueCount := len(f.Clues)
	if f.ClueCount != nil {
		clueCount = *f.ClueCount
	}

	version := f.Version
	if version == "" {
		version = "1.3"
	}

	solBytes := []byte(strings.Join(f.Solution, ""))
	stateBytes := []byte(strings.Join(state, ""))

	// 8 bytes starting at the width field
	cib := make([]byte, 8)
	cib[0] = byte(width)
	cib[1] = byte(height)
	binary.LittleEndian.PutUint16(cib[2:], uint16(clueCount))
	binary.LittleEndian.PutUint16(cib[4:], 0x0001)
	binary.LittleEndian.PutUint16(cib[6:], f.ScrambledTag)

	var strs []byte
	for _, s := range append(append([]string{f.Title, f.Author, f.Copyright}, f.Clues...), f.Notes) {
		strs = append(strs, latin1(s)...)
		strs = append(strs, 0)
	}

	cCib := Cksum(cib, 0)
	cFile := Cksum(solBytes, cCib)
	cFile = Cksum(stateBytes, cFile)
	cFile = Cksum(strs, cFile)

	out := make([]byte, 0, 0x34+len(solBytes)+len(stateBytes)+len(strs))
	out = binary.LittleEndian.AppendUint16(out, cFile)
	out = append(out, "ACROSS&DOWN\x00"...)
	out = binary.LittleEndian.AppendUint16(out, cCib)
	out = append(out, make([]byte, 8)...) // masked checksums
	ver := make([]byte, 4)
	copy(ver, version)
	out = append(out, ver...)
	out = append(out, 0, 0)                // reserved 1C
	out = append(out, 0, 0)                // scrambled checksum
	out = append(out, make([]byte, 12)...) // reserved 20
	out = append(out, cib...)
	out = append(out, solBytes...)
	out = append(out, stateBytes...)
	out = append(out, strs...)
	return out
}

// WritePuz encodes f into a file under t.TempDir and returns its path.
func WritePuz(t *testing.T, f PuzFixture) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.puz")
	require.NoError(t, os.WriteFile(path, BuildPuz(f), 0644))
	return path
}

// Cksum is the Across Lite running checksum.
func Cksum(data []byte, sum uint16) uint16 {
	for _, b := range data {
		if sum&0x0001 != 0 {
			sum = (sum >> 1) + 0x8000
		} else {
			sum = sum >> 1
		}
		sum += uint16(b)
	}
	return sum
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

func latin1(s string) []byte {
	b, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return []byte(s)
	}
	return []byte(b)
}
