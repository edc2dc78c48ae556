package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dyluth/xword/pkg/puz"
)

// OutputFormat selects how listings are written.
type OutputFormat string

const (
	// OutputFormatDefault is the human-readable table
	OutputFormatDefault OutputFormat = "default"
	// OutputFormatJSONL writes one JSON object per line
	OutputFormatJSONL OutputFormat = "jsonl"
	// OutputFormatJSON writes a single pretty-printed JSON document
	OutputFormatJSON OutputFormat = "json"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatDefault, OutputFormatJSONL, OutputFormatJSON:
		return OutputFormat(s), nil
	}
	return "", fmt.Errorf("unknown output format: %s (valid formats: default, jsonl, json)", s)
}

// ClueRecord is the JSON form of one clue.
type ClueRecord struct {
	Index     int    `json:"index"`
	Number    int    `json:"number"`
	Direction string `json:"direction"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Text      string `json:"text"`
}

// PuzzleRecord is the JSON form of a puzzle's metadata and clues.
type PuzzleRecord struct {
	Title     string       `json:"title"`
	Author    string       `json:"author"`
	Copyright string       `json:"copyright"`
	Notes     string       `json:"notes,omitempty"`
	Header    puz.Header   `json:"header"`
	Scrambled bool         `json:"scrambled"`
	Grid      []string     `json:"grid"`
	Clues     []ClueRecord `json:"clues"`
}

// ClueRecords returns the clues of doc in index order.
func ClueRecords(doc *puz.Document) []ClueRecord {
	entries := doc.Index.Entries()
	out := make([]ClueRecord, 0, len(entries))
	for _, e := range entries {
		text, _ := doc.ClueText(e.Index)
		out = append(out, ClueRecord{
			Index:     e.Index,
			Number:    e.Number,
			Direction: e.Dir.String(),
			Row:       e.Pos.Row,
			Col:       e.Pos.Col,
			Text:      text,
		})
	}
	return out
}

// FormatJSONL writes each clue as a single JSON object on its own line.
func FormatJSONL(w io.Writer, doc *puz.Document) error {
	for _, rec := range ClueRecords(doc) {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal clue to JSON: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}
	return nil
}

// FormatJSON writes the whole puzzle as pretty-printed JSON. The grid holds
// the solution only when reveal is set.
func FormatJSON(w io.Writer, doc *puz.Document, reveal bool) error {
	grid := doc.PlayerState
	if reveal {
		grid = doc.Solution
	}
	rec := PuzzleRecord{
		Title:     doc.Title,
		Author:    doc.Author,
		Copyright: doc.Copyright,
		Notes:     doc.Notes,
		Header:    doc.Header,
		Scrambled: doc.Header.Scrambled(),
		Grid:      strings.Split(grid.String(), "\n"),
		Clues:     ClueRecords(doc),
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle to JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}
