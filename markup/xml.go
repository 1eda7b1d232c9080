package markup

import (
	"encoding/xml"
	"io"
)

type xmlScanner struct {
	d *xml.Decoder
}

// NewXMLScanner returns a Scanner over encoding/xml running in non-strict
// mode. The decoder's CharsetReader passes input through untouched: by the
// time a scanner sees the stream, charset resolution has already happened,
// so a declared encoding label must not trigger a second conversion.
func NewXMLScanner(r io.Reader) Scanner {
	d := xml.NewDecoder(r)
	d.Strict = false
	d.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	return &xmlScanner{d: d}
}

func (s *xmlScanner) Next() (Event, error) {
	for {
		tok, err := s.d.Token()
		if err != nil {
			return Event{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var attrs map[string]string
			if len(t.Attr) > 0 {
				attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					if _, dup := attrs[a.Name.Local]; !dup {
						attrs[a.Name.Local] = a.Value
					}
				}
			}
			return Event{Kind: EventStart, Name: t.Name.Local, Attributes: attrs}, nil

		case xml.EndElement:
			return Event{Kind: EventEnd, Name: t.Name.Local}, nil

		case xml.CharData:
			if len(t) == 0 {
				continue
			}
			return Event{Kind: EventText, Text: string(t)}, nil

		default:
			// Comments, directives, and processing instructions carry no
			// structure.
			continue
		}
	}
}
