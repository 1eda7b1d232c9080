package source

import (
	"errors"
	"io"
)

// ErrResetExceeded indicates a reset requested after more bytes were
// consumed than the mark's guaranteed lookback window. It signals a
// misconfigured window, not malformed input.
var ErrResetExceeded = errors.New("source: reset past the guaranteed lookback window")

var errNoMark = errors.New("source: reset without a preceding mark")

// DefaultLookback is the lookback window used for a full document restart.
const DefaultLookback = 64 << 10

// Buffered wraps a byte stream with mark/reset capability. After Mark,
// at least the configured number of consumed bytes can be replayed by
// ResetToMark without touching the underlying stream again. Buffered is not
// safe for concurrent use; it is owned by a single in-flight parse.
type Buffered struct {
	rc io.ReadCloser

	buf    []byte // bytes retained since the last mark
	off    int    // read position within buf; len(buf) means caught up
	limit  int    // retention limit for this mark
	marked bool
	burst  bool // consumed past the limit; the mark is spent
	closed bool
}

// NewBuffered wraps rc. Close releases rc exactly once.
func NewBuffered(rc io.ReadCloser) *Buffered {
	return &Buffered{rc: rc}
}

// Mark records the current position and guarantees that at least capacity
// bytes consumed from here on can be replayed by ResetToMark. Bytes already
// buffered but not yet consumed carry over and do not count against the
// capacity. A new mark replaces any previous one.
func (b *Buffered) Mark(capacity int) {
	tail := b.buf[b.off:]
	b.buf = append([]byte(nil), tail...)
	b.off = 0
	b.limit = len(tail) + capacity
	b.marked = true
	b.burst = false
}

// ResetToMark rewinds the stream to the position recorded by the last Mark.
// It fails with ErrResetExceeded when reads went past the guaranteed window.
func (b *Buffered) ResetToMark() error {
	if !b.marked {
		return errNoMark
	}
	if b.burst {
		return ErrResetExceeded
	}
	b.off = 0
	return nil
}

func (b *Buffered) Read(p []byte) (int, error) {
	if b.off < len(b.buf) {
		n := copy(p, b.buf[b.off:])
		b.off += n
		return n, nil
	}
	n, err := b.rc.Read(p)
	if n > 0 && b.marked && !b.burst {
		if len(b.buf)+n <= b.limit {
			b.buf = append(b.buf, p[:n]...)
			b.off = len(b.buf)
		} else {
			b.burst = true
			b.buf = nil
			b.off = 0
		}
	}
	return n, err
}

// Close releases the underlying stream. It is idempotent: only the first
// call reaches the stream.
func (b *Buffered) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.buf = nil
	return b.rc.Close()
}
