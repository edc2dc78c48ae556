package puz

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/text/encoding/charmap"
)

// File layout, taken from the Across Lite format notes:
//
//	Component           Offset Len  Type
//	------------------- ------ ---  -------
//	Checksum            0x00   0x2  uint16
//	File Magic          0x02   0xC  string  "ACROSS&DOWN\0"
//	CIB Checksum        0x0E   0x2  uint16
//	Masked Low          0x10   0x4  [4]byte
//	Masked High         0x14   0x4  [4]byte
//	Version String      0x18   0x4  string  e.g. "1.3\0"
//	Reserved1C          0x1C   0x2  ?
//	Scrambled Checksum  0x1E   0x2  uint16
//	Reserved20          0x20   0xC  ?       skipped
//	Width               0x2C   0x1  byte
//	Height              0x2D   0x1  byte
//	# of Clues          0x2E   0x2  uint16
//	Unknown Bitmask     0x30   0x2  uint16
//	Scrambled Tag       0x32   0x2  uint16
//	Solution            0x34   w*h
//	Player State        ...    w*h
//	Strings             ...    NUL-terminated, clue count + 4
const (
	offsetDimensions = 0x2c
	magicLen         = 0xc
	versionLen       = 0x4
)

// DecodeFile reads and decodes the puzzle at path.
func DecodeFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle: %w", err)
	}
	return DecodeBytes(data)
}

// Decode reads r to the end and decodes it.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes a complete puzzle file held in memory.
func DecodeBytes(data []byte) (*Document, error) {
	fr := &fieldReader{data: data}

	h, err := readHeader(fr)
	if err != nil {
		return nil, err
	}

	solution, err := readGrid(fr, "solution grid", h.Width, h.Height)
	if err != nil {
		return nil, err
	}

	state, err := readGrid(fr, "player-state grid", h.Width, h.Height)
	if err != nil {
		return nil, err
	}

	strs, err := readStrings(fr, h.ClueCount)
	if err != nil {
		return nil, err
	}

	doc, err := NewDocument(h, solution, state, strs)
	if err != nil {
		return nil, fmt.Errorf("invalid puzzle: %w", err)
	}

	log.Printf("[Decoder] decoded %dx%d puzzle (version %q, %d clues, %d bytes unread)",
		h.Width, h.Height, h.Version, h.ClueCount, len(fr.data)-fr.off)
	if h.Scrambled() {
		log.Printf("[Decoder] solution is scrambled (tag 0x%04x)", h.ScrambledTag)
	}
	return doc, nil
}

func readHeader(fr *fieldReader) (Header, error) {
	var h Header
	var err error

	if h.Checksum, err = fr.u16("checksum"); err != nil {
		return h, err
	}

	magic, err := fr.take("file magic", magicLen)
	if err != nil {
		return h, err
	}
	if string(magic) != FileMagic {
		return h, &DecodeError{Field: "file magic", Offset: fr.off - magicLen, Err: ErrBadMagic}
	}
	h.Magic = latin1(bytes.TrimRight(magic, "\x00"))

	if h.CIBChecksum, err = fr.u16("cib checksum"); err != nil {
		return h, err
	}
	if err = fr.array("masked low checksums", h.MaskedLow[:]); err != nil {
		return h, err
	}
	if err = fr.array("masked high checksums", h.MaskedHigh[:]); err != nil {
		return h, err
	}

	version, err := fr.take("version string", versionLen)
	if err != nil {
		return h, err
	}
	if i := bytes.IndexByte(version, 0); i >= 0 {
		version = version[:i]
	}
	h.Version = latin1(version)

	if err = fr.array("reserved", h.Reserved1C[:]); err != nil {
		return h, err
	}
	if h.ScrambledChecksum, err = fr.u16("scrambled checksum"); err != nil {
		return h, err
	}

	fr.seek(offsetDimensions)

	width, err := fr.u8("width")
	if err != nil {
		return h, err
	}
	height, err := fr.u8("height")
	if err != nil {
		return h, err
	}
	h.Width, h.Height = int(width), int(height)
	if h.Width == 0 || h.Height == 0 {
		return h, &DecodeError{Field: "dimensions", Offset: offsetDimensions, Err: ErrBadDimensions}
	}

	clues, err := fr.u16("clue count")
	if err != nil {
		return h, err
	}
	h.ClueCount = int(clues)

	if h.Bitmask, err = fr.u16("unknown bitmask"); err != nil {
		return h, err
	}
	if h.ScrambledTag, err = fr.u16("scrambled tag"); err != nil {
		return h, err
	}

	return h, nil
}

func readGrid(fr *fieldReader, field string, width, height int) (*Grid, error) {
	raw, err := fr.take(field, width*height)
	if err != nil {
		return nil, err
	}

	g := NewGrid(width, height)
	for i, r := range []rune(latin1(raw)) {
		g.cells[i] = cellFromRune(r)
	}
	return g, nil
}

// readStrings consumes exactly clueCount+4 NUL-terminated strings: title,
// author, copyright, the clues in file order, then notes.
func readStrings(fr *fieldReader, clueCount int) (Strings, error) {
	parts := make([]string, 0, clueCount+4)
	for i := 0; i < clueCount+4; i++ {
		s, err := fr.cstring(stringField(i, clueCount))
		if err != nil {
			return Strings{}, err
		}
		parts = append(parts, s)
	}

	return Strings{
		Title:     parts[0],
		Author:    parts[1],
		Copyright: parts[2],
		Clues:     parts[3 : 3+clueCount],
		Notes:     parts[len(parts)-1],
	}, nil
}

func stringField(i, clueCount int) string {
	switch {
	case i == 0:
		return "title"
	case i == 1:
		return "author"
	case i == 2:
		return "copyright"
	case i == clueCount+3:
		return "notes"
	}
	return fmt.Sprintf("clue %d", i-3)
}

// latin1 decodes single-byte ISO-8859-1 text to UTF-8.
func latin1(b []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		// every byte is a valid latin1 code point
		return string(b)
	}
	return string(out)
}

// fieldReader is an offset-tracking cursor over the file contents. Every short
// read is reported as a DecodeError wrapping ErrTruncated.
type fieldReader struct {
	data []byte
	off  int
}

func (fr *fieldReader) take(field string, n int) ([]byte, error) {
	if n < 0 || fr.off > len(fr.data) || len(fr.data)-fr.off < n {
		return nil, &DecodeError{Field: field, Offset: fr.off, Err: ErrTruncated}
	}
	b := fr.data[fr.off : fr.off+n]
	fr.off += n
	return b, nil
}

func (fr *fieldReader) array(field string, dst []byte) error {
	b, err := fr.take(field, len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

func (fr *fieldReader) u8(field string) (uint8, error) {
	b, err := fr.take(field, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (fr *fieldReader) u16(field string) (uint16, error) {
	b, err := fr.take(field, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (fr *fieldReader) cstring(field string) (string, error) {
	if fr.off >= len(fr.data) {
		return "", &DecodeError{Field: field, Offset: fr.off, Err: ErrTruncated}
	}
	i := bytes.IndexByte(fr.data[fr.off:], 0)
	if i < 0 {
		return "", &DecodeError{Field: field, Offset: fr.off, Err: ErrTruncated}
	}
	s := latin1(fr.data[fr.off : fr.off+i])
	fr.off += i + 1
	return s, nil
}

// seek moves to an absolute offset. Seeking past the end is allowed; the next
// read reports the truncation.
func (fr *fieldReader) seek(off int) {
	fr.off = off
}
