// Package puz decodes Across Lite style binary crossword files and derives the
// structures a solving grid needs from them.
//
// # Overview
//
// A puzzle file is read in a single sequential pass: a fixed-layout header,
// the solution grid, the player-state grid and a table of NUL-terminated
// latin1 strings (title, author, copyright, one string per clue, notes).
// Decoding is all-or-nothing: any short read aborts with an error wrapping
// ErrTruncated and no Document is returned.
//
// # Numbering
//
// Clue numbers are not stored in the file. DeriveNumbering scans the solution
// grid row-major and hands out one number per word-start cell. DeriveClueIndex
// turns that numbering into the 0-based clue indices used to look up clue
// text: ascending by number, across before down for a shared number. The clue
// strings in the file are already in that order.
//
// # Usage Example
//
//	doc, err := puz.DecodeFile("wsj240702.puz")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	entry, ok := doc.Index.Lookup(puz.Position{Row: 0, Col: 0}, puz.Across)
//	if ok {
//		fmt.Printf("%d Across: %s\n", entry.Number, doc.Clues[entry.Index])
//	}
package puz
