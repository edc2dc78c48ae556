package puz

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated means the stream ended before a field or string terminator
	// was fully read.
	ErrTruncated = errors.New("puz: truncated stream")

	// ErrBadMagic means the file does not carry the ACROSS&DOWN magic string.
	ErrBadMagic = errors.New("puz: not an Across Lite formatted puzzle")

	// ErrBadDimensions means the header declares a zero width or height.
	ErrBadDimensions = errors.New("puz: grid dimensions must be positive")

	// ErrClueCountMismatch means the number of clue strings does not match the
	// number of words derived from the solution grid.
	ErrClueCountMismatch = errors.New("puz: clue count does not match grid")
)

// DecodeError records which field failed to decode and where.
type DecodeError struct {
	Field  string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s at offset 0x%02x: %v", e.Field, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsTruncated reports whether err was caused by a short read.
func IsTruncated(err error) bool {
	return errors.Is(err, ErrTruncated)
}
