package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dyluth/xword/pkg/puz"
	"github.com/olekukonko/tablewriter"
)

// ClueLists writes the Across and Down clue lists with their printed numbers
// right-aligned.
func ClueLists(w io.Writer, doc *puz.Document) error {
	var b strings.Builder
	for i, dir := range []puz.TypingDirection{puz.Across, puz.Down} {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s:\n\n", dir)

		entries := doc.Index.Filter(dir)
		if len(entries) == 0 {
			b.WriteString("  (none)\n")
			continue
		}
		numWidth := len(strconv.Itoa(entries[len(entries)-1].Number))
		for _, e := range entries {
			text, _ := doc.ClueText(e.Index)
			fmt.Fprintf(&b, "%*d. %s\n", numWidth, e.Number, text)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write clue lists: %w", err)
	}
	return nil
}

// ClueTable writes every clue in index order as a table.
func ClueTable(w io.Writer, doc *puz.Document) error {
	table := tablewriter.NewWriter(w)
	table.Header("Index", "Number", "Direction", "Start", "Clue")

	for _, e := range doc.Index.Entries() {
		text, _ := doc.ClueText(e.Index)
		row := []string{
			strconv.Itoa(e.Index),
			strconv.Itoa(e.Number),
			e.Dir.String(),
			e.Pos.String(),
			text,
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to add clue %d: %w", e.Index, err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render clue table: %w", err)
	}
	return nil
}

// HeaderTable writes the puzzle metadata and header fields as a two-column
// table.
func HeaderTable(w io.Writer, doc *puz.Document) error {
	h := doc.Header
	rows := [][]string{
		{"Title", doc.Title},
		{"Author", doc.Author},
		{"Copyright", doc.Copyright},
		{"Size", fmt.Sprintf("%dx%d", h.Width, h.Height)},
		{"Version", h.Version},
		{"Clues", strconv.Itoa(h.ClueCount)},
		{"Open cells", strconv.Itoa(doc.Solution.CountOpen())},
		{"Scrambled", strconv.FormatBool(h.Scrambled())},
		{"Checksum", fmt.Sprintf("0x%04x", h.Checksum)},
		{"CIB checksum", fmt.Sprintf("0x%04x", h.CIBChecksum)},
		{"Bitmask", fmt.Sprintf("0x%04x", h.Bitmask)},
	}
	if doc.Notes != "" {
		rows = append(rows, []string{"Notes", doc.Notes})
	}

	table := tablewriter.NewWriter(w)
	table.Header("Field", "Value")
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to add %s: %w", row[0], err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render header table: %w", err)
	}
	return nil
}
