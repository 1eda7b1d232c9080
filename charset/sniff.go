package charset

import (
	"bytes"
	"io"
	"regexp"
)

// SniffWindow is the number of bytes the declaration sniffer examines. It is
// large enough to hold any standard XML declaration header.
const SniffWindow = 1024

// MarkResetReader is the rewindable-stream capability the sniffers need: a
// mark records a position, and a reset replays every byte read since the
// mark. source.Buffered satisfies it.
type MarkResetReader interface {
	io.Reader
	Mark(capacity int)
	ResetToMark() error
}

var xmlEncodingPattern = regexp.MustCompile(`encoding\s*=\s*["']([A-Za-z][A-Za-z0-9._-]*)["']`)

// SniffBOM reports the encoding named by a byte-order mark at the start of
// the source, or "" when none is present. The source is reset afterward so
// later stages see every byte, BOM included.
func SniffBOM(src MarkResetReader) (string, error) {
	src.Mark(4)
	p := make([]byte, 3)
	n, err := io.ReadFull(src, p)
	if rerr := src.ResetToMark(); rerr != nil {
		return "", rerr
	}
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	p = p[:n]
	switch {
	case n >= 3 && p[0] == 0xEF && p[1] == 0xBB && p[2] == 0xBF:
		return "utf-8", nil
	case n >= 2 && p[0] == 0xFE && p[1] == 0xFF:
		return "utf-16be", nil
	case n >= 2 && p[0] == 0xFF && p[1] == 0xFE:
		return "utf-16le", nil
	}
	return "", nil
}

// SniffXMLDeclaration extracts the encoding label from an XML declaration at
// the very start of the source, or "" when the source does not begin with
// one. The check works byte-wise, before any decoding choice has been made,
// and the source is always reset to its starting position regardless of
// outcome.
func SniffXMLDeclaration(src MarkResetReader) (string, error) {
	src.Mark(SniffWindow)
	p := make([]byte, SniffWindow)
	n, err := io.ReadFull(src, p)
	if rerr := src.ResetToMark(); rerr != nil {
		return "", rerr
	}
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	p = p[:n]

	// A UTF-8 BOM may precede the declaration.
	p = bytes.TrimPrefix(p, []byte{0xEF, 0xBB, 0xBF})
	if !bytes.HasPrefix(p, []byte("<?xml")) {
		return "", nil
	}
	decl := p
	if end := bytes.Index(p, []byte("?>")); end >= 0 {
		decl = p[:end]
	}
	if m := xmlEncodingPattern.FindSubmatch(decl); m != nil {
		return string(m[1]), nil
	}
	return "", nil
}
