package arbor

import (
	"errors"
	"io"
	"os"

	"github.com/tsawler/arbor/charset"
	"github.com/tsawler/arbor/format"
	"github.com/tsawler/arbor/markup"
	"github.com/tsawler/arbor/source"
	"github.com/tsawler/arbor/tree"
)

// ErrRestartLoop indicates that a second encoding restart was requested
// within a single parse call. One restart is the budget; a second
// contradiction means the document's declarations cannot stabilize.
var ErrRestartLoop = errors.New("arbor: charset correction requested twice in one parse")

// parseBuffered is the reparse coordinator: it resolves the initial
// encoding, marks the buffered source, and drives up to two decode attempts.
// The restart signal never escapes this function.
func parseBuffered(buf *source.Buffered, hint string, o parseOptions) (*tree.Node, error) {
	label := o.defaultEncoding
	if hint != "" {
		if e, _ := charset.Lookup(hint); e != nil {
			label = hint
		}
	}
	if o.xmlMode {
		declared, err := charset.SniffXMLDeclaration(buf)
		if err != nil {
			return nil, err
		}
		if declared != "" {
			if e, _ := charset.Lookup(declared); e != nil {
				label = declared
			}
		}
	}
	bom, err := charset.SniffBOM(buf)
	if err != nil {
		return nil, err
	}
	if bom != "" {
		label = bom
	}

	buf.Mark(source.DefaultLookback)

	restarted := false
	for {
		root, found, err := runAttempt(buf, label, hint, o)
		if err != nil {
			return nil, err
		}
		if found == "" {
			return root, nil
		}
		if restarted {
			return nil, ErrRestartLoop
		}
		restarted = true
		if err := buf.ResetToMark(); err != nil {
			return nil, err
		}
		label = found
	}
}

// runAttempt feeds one decoded pass of the source through a scanner into a
// fresh builder. It returns either the completed root, or the meta-declared
// charset label that asks for a restart, or a scanner error verbatim.
func runAttempt(r io.Reader, label, hint string, o parseOptions) (*tree.Node, string, error) {
	decoded := charset.NewReader(r, label)
	var sc markup.Scanner
	if o.xmlMode {
		sc = markup.NewXMLScanner(decoded)
	} else {
		sc = markup.NewHTMLScanner(decoded)
	}

	b := tree.NewBuilder(tree.Config{
		StripWhitespace: o.stripWhitespace,
		CharsetChanged: func(found string) bool {
			if hint != "" && o.preferTransport {
				return false
			}
			e, name := charset.Lookup(found)
			if e == nil {
				// An unresolvable label cannot improve the decode.
				return false
			}
			_, current := charset.Lookup(label)
			return name != current
		},
	})

	for {
		ev, err := sc.Next()
		if errors.Is(err, io.EOF) {
			root, ferr := b.Finish()
			if ferr != nil {
				return nil, "", ferr
			}
			return root, "", nil
		}
		if err != nil {
			return nil, "", err
		}
		switch b.Consume(ev) {
		case tree.ActionRestart:
			return nil, b.PendingCharset(), nil
		case tree.ActionDone:
			root, ferr := b.Finish()
			if ferr != nil {
				return nil, "", ferr
			}
			return root, "", nil
		}
	}
}

// sniffFileFlavor reads a short prefix of the file to classify its markup
// flavor when the extension is inconclusive.
func sniffFileFlavor(path string) (format.Flavor, error) {
	f, err := os.Open(path)
	if err != nil {
		return format.Unknown, err
	}
	defer f.Close()

	prefix := make([]byte, 512)
	n, err := f.Read(prefix)
	if err != nil && err != io.EOF {
		return format.Unknown, err
	}
	return format.DetectFromBytes(prefix[:n]), nil
}
