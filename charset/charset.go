// Package charset resolves character-encoding labels and decodes byte
// streams to UTF-8. It also extracts charset tokens from Content-Type-shaped
// strings and sniffs encodings declared at the head of a document.
package charset

import (
	"io"
	"strings"

	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// FromContentType extracts the charset token from a Content-Type-shaped
// string, as found in a transport header or a <meta> content attribute.
// It returns "" when no charset fragment is present; absence is not an
// error. The key is matched case-insensitively and the token may be quoted.
func FromContentType(v string) string {
	lower := strings.ToLower(v)
	for i := 0; ; {
		j := strings.Index(lower[i:], "charset")
		if j < 0 {
			return ""
		}
		j += i
		k := j + len("charset")
		for k < len(v) && (v[k] == ' ' || v[k] == '\t') {
			k++
		}
		if k >= len(v) || v[k] != '=' {
			i = j + 1
			continue
		}
		k++
		for k < len(v) && (v[k] == ' ' || v[k] == '\t') {
			k++
		}
		var quote byte
		if k < len(v) && (v[k] == '"' || v[k] == '\'') {
			quote = v[k]
			k++
		}
		start := k
		for k < len(v) {
			c := v[k]
			if quote != 0 {
				if c == quote {
					break
				}
			} else if c == ';' || c == ' ' || c == '\t' || c == '"' || c == '\'' {
				break
			}
			k++
		}
		return v[start:k]
	}
}

// Lookup resolves an encoding label to an encoding and its canonical name,
// following the WHATWG alias table. It returns (nil, "") for labels the
// registry does not know.
func Lookup(label string) (encoding.Encoding, string) {
	return htmlcharset.Lookup(label)
}

// Equivalent reports whether two labels resolve to the same encoding. An
// unresolvable label is never equivalent to a resolvable one.
func Equivalent(a, b string) bool {
	_, na := Lookup(a)
	_, nb := Lookup(b)
	return na == nb
}

// NewReader returns a reader that decodes r from the named encoding to
// UTF-8. UTF-8 input and unresolvable labels pass through untouched.
func NewReader(r io.Reader, label string) io.Reader {
	e, name := Lookup(label)
	if e == nil || name == "utf-8" {
		return r
	}
	return transform.NewReader(r, e.NewDecoder())
}
