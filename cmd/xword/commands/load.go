package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dyluth/xword/internal/printer"
	"github.com/dyluth/xword/pkg/puz"
)

// loadPuzzle decodes path and turns decode failures into formatted errors.
func loadPuzzle(path string) (*puz.Document, error) {
	doc, err := puz.DecodeFile(path)
	if err == nil {
		if doc.Header.Scrambled() {
			printer.Warning("%s is scrambled: answers cannot be checked\n", path)
		}
		return doc, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return nil, printer.Error(
			"puzzle file not found",
			fmt.Sprintf("No file exists at %s.", path),
			[]string{"Check the path and try again"},
		)
	}

	context := [][2]string{{"File", path}}
	var decodeErr *puz.DecodeError
	if errors.As(err, &decodeErr) {
		context = append(context,
			[2]string{"Field", decodeErr.Field},
			[2]string{"Offset", fmt.Sprintf("0x%02x", decodeErr.Offset)},
		)
	}

	switch {
	case puz.IsTruncated(err):
		return nil, printer.ErrorWithContext(
			"puzzle file is truncated",
			"The file ended before every field could be read.",
			context,
			[]string{"Download the puzzle again; the copy on disk is incomplete"},
		)
	case errors.Is(err, puz.ErrBadMagic):
		return nil, printer.ErrorWithContext(
			"not an Across Lite puzzle",
			"The file does not start with the ACROSS&DOWN signature.",
			context,
			[]string{"Only .puz files are supported"},
		)
	case errors.Is(err, puz.ErrClueCountMismatch):
		return nil, printer.ErrorWithContext(
			"puzzle clues do not match the grid",
			err.Error(),
			context,
			[]string{"The file is corrupt or was written by a non-conforming tool"},
		)
	}

	return nil, printer.ErrorWithContext(
		"failed to decode puzzle",
		err.Error(),
		context,
		nil,
	)
}
