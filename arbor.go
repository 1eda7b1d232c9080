// Package arbor parses markup from arbitrary byte-bearing sources into a
// document tree, resolving the character encoding along the way — even when
// the encoding is only discoverable inside the document itself, after
// decoding has already begun.
//
// Basic usage:
//
//	root, err := arbor.Parse(source.FromFile("page.html"))
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(root.Find("title").Text())
//
// With options:
//
//	root, err := arbor.Parse(source.FromURL("https://example.com/feed.xml"),
//	    arbor.XMLMode(),
//	    arbor.KeepWhitespace())
//
// # Encoding resolution
//
// Up to three signals can name the document's encoding: a transport hint
// (for example a Content-Type header), a self-declared XML encoding at the
// head of the document, and a meta-declared charset discovered mid-stream.
// A byte-order mark outranks all of them. When a meta declaration
// contradicts the encoding already in use, the parse restarts exactly once
// from a buffered mark with the corrected encoding; a second contradiction
// within one call fails with [ErrRestartLoop]. The
// [PreferTransportEncoding] option makes a transport hint win over meta
// declarations instead.
//
// For lower-level control, the source, charset, markup, and tree packages
// are also available.
package arbor

import (
	"github.com/tsawler/arbor/format"
	"github.com/tsawler/arbor/source"
	"github.com/tsawler/arbor/tree"
)

// Parse opens the source, resolves its encoding, and returns the completed
// document tree. One call produces one tree; the returned root is owned by
// the caller.
func Parse(src source.Source, opts ...Option) (*tree.Node, error) {
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rc, hint, err := source.Resolve(src)
	if err != nil {
		return nil, err
	}
	buf := source.NewBuffered(rc)
	defer buf.Close()
	return parseBuffered(buf, hint, o)
}

// ParseText parses in-memory text. The text is encoded to UTF-8 bytes and
// delegates to Parse.
func ParseText(text string, opts ...Option) (*tree.Node, error) {
	return Parse(source.FromString(text), opts...)
}

// ParseFile parses a local file, choosing XML or HTML mode from the
// filename and, when the extension is inconclusive, from the content.
func ParseFile(path string, opts ...Option) (*tree.Node, error) {
	flavor := format.Detect(path)
	if flavor == format.Unknown {
		f, err := sniffFileFlavor(path)
		if err != nil {
			return nil, err
		}
		flavor = f
	}
	if flavor == format.XML {
		opts = append([]Option{XMLMode()}, opts...)
	}
	return Parse(source.FromFile(path), opts...)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	root := arbor.Must(arbor.ParseText("<p>hello</p>"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
