// Package format provides markup flavor detection for the arbor library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Flavor represents a supported markup flavor.
type Flavor int

const (
	// Unknown indicates an unrecognized flavor.
	Unknown Flavor = iota
	// HTML indicates forgiving, HTML-shaped markup.
	HTML
	// XML indicates strictly-formatted, XML-shaped markup.
	XML
)

// String returns the string representation of the flavor.
func (f Flavor) String() string {
	switch f {
	case HTML:
		return "HTML"
	case XML:
		return "XML"
	default:
		return "Unknown"
	}
}

// Detect determines markup flavor from filename extension.
func Detect(filename string) Flavor {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".html", ".htm":
		return HTML
	case ".xml", ".xhtml", ".svg", ".rss", ".atom", ".opml":
		return XML
	default:
		return Unknown
	}
}

// DetectFromBytes checks a content prefix to determine flavor. This is more
// reliable than extension-based detection. It returns Unknown when the
// prefix matches no known signature.
func DetectFromBytes(data []byte) Flavor {
	// Skip a UTF-8 BOM and leading whitespace.
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}

	upper := strings.ToUpper(string(data))
	if strings.HasPrefix(upper, "<?XML") {
		// An XML declaration followed by html-like content is XHTML, which
		// still parses best in XML mode.
		return XML
	}
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return HTML
	}
	if strings.HasPrefix(upper, "<HTML") {
		return HTML
	}
	if strings.HasPrefix(upper, "<!DOCTYPE") {
		return XML
	}
	return Unknown
}
