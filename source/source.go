package source

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/tsawler/arbor/charset"
)

// ErrUnsupportedSource indicates a descriptor that does not match any known
// source kind.
var ErrUnsupportedSource = errors.New("source: unsupported source kind")

// Source is a descriptor for a byte-bearing input. The set of
// implementations is closed; use the From* constructors.
type Source interface {
	source()
}

type readerSource struct{ r io.Reader }
type fileSource struct{ path string }
type urlSource struct{ loc string }
type textSource struct{ text string }
type connSource struct{ conn net.Conn }
type responseSource struct {
	r           io.Reader
	contentType string
}

func (readerSource) source()   {}
func (fileSource) source()     {}
func (urlSource) source()      {}
func (textSource) source()     {}
func (connSource) source()     {}
func (responseSource) source() {}

// FromReader describes an already-open byte stream. The caller retains
// ownership of the reader and is responsible for closing it.
func FromReader(r io.Reader) Source { return readerSource{r: r} }

// FromFile describes a local file path. The file is opened by Resolve and
// closed by the consumer of the resolved stream.
func FromFile(path string) Source { return fileSource{path: path} }

// FromURL describes a remote resource. Resolve fetches it over HTTP and
// surfaces the response Content-Type charset as the transport hint.
func FromURL(loc string) Source { return urlSource{loc: loc} }

// FromString describes in-memory text. The text is encoded to UTF-8 bytes
// and behaves as a stream source from then on.
func FromString(text string) Source { return textSource{text: text} }

// FromConn describes a connected network socket. The caller retains
// ownership of the connection.
func FromConn(c net.Conn) Source { return connSource{conn: c} }

// FromResponse describes a byte stream delivered with transport metadata,
// such as a response body whose Content-Type header is already in hand. The
// charset parameter of the content type becomes the transport hint. The
// caller retains ownership of the reader.
func FromResponse(r io.Reader, contentType string) Source {
	return responseSource{r: r, contentType: contentType}
}

// Resolve opens a descriptor into a byte stream and an optional
// transport-supplied encoding hint. The hint is "" when the transport
// carries no usable charset. Streams opened by Resolve itself (files, URLs)
// are released by closing the returned ReadCloser; caller-owned streams are
// wrapped so that Close is a no-op on them.
func Resolve(src Source) (io.ReadCloser, string, error) {
	switch s := src.(type) {
	case readerSource:
		return io.NopCloser(s.r), "", nil

	case fileSource:
		f, err := os.Open(s.path)
		if err != nil {
			return nil, "", fmt.Errorf("opening file: %w", err)
		}
		return f, "", nil

	case urlSource:
		resp, err := http.Get(s.loc)
		if err != nil {
			return nil, "", fmt.Errorf("fetching %s: %w", s.loc, err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, "", fmt.Errorf("fetching %s: unexpected status %s", s.loc, resp.Status)
		}
		hint := charset.FromContentType(resp.Header.Get("Content-Type"))
		return resp.Body, hint, nil

	case textSource:
		return io.NopCloser(strings.NewReader(s.text)), "", nil

	case connSource:
		return io.NopCloser(s.conn), "", nil

	case responseSource:
		return io.NopCloser(s.r), charset.FromContentType(s.contentType), nil

	default:
		return nil, "", ErrUnsupportedSource
	}
}
