package markup

import (
	"io"

	"golang.org/x/net/html"
)

// voidElements lists HTML elements that never have closing tags. The scanner
// synthesizes an End event for them so the stream stays balanced.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

type htmlScanner struct {
	z       *html.Tokenizer
	pending []Event
}

// NewHTMLScanner returns a Scanner over the error-correcting HTML tokenizer.
// Comments and doctype declarations are dropped; self-closing and void
// elements produce a Start event immediately followed by an End event.
func NewHTMLScanner(r io.Reader) Scanner {
	return &htmlScanner{z: html.NewTokenizer(r)}
}

func (s *htmlScanner) Next() (Event, error) {
	if len(s.pending) > 0 {
		ev := s.pending[0]
		s.pending = s.pending[1:]
		return ev, nil
	}

	for {
		switch s.z.Next() {
		case html.ErrorToken:
			return Event{}, s.z.Err()

		case html.StartTagToken:
			t := s.z.Token()
			if voidElements[t.Data] {
				s.pending = append(s.pending, Event{Kind: EventEnd, Name: t.Data})
			}
			return Event{Kind: EventStart, Name: t.Data, Attributes: attrMap(t)}, nil

		case html.SelfClosingTagToken:
			t := s.z.Token()
			s.pending = append(s.pending, Event{Kind: EventEnd, Name: t.Data})
			return Event{Kind: EventStart, Name: t.Data, Attributes: attrMap(t)}, nil

		case html.EndTagToken:
			t := s.z.Token()
			if voidElements[t.Data] {
				// Stray </br> and friends; the start already closed itself.
				continue
			}
			return Event{Kind: EventEnd, Name: t.Data}, nil

		case html.TextToken:
			text := string(s.z.Text())
			if text == "" {
				continue
			}
			return Event{Kind: EventText, Text: text}, nil

		default:
			// Comments and doctypes carry no structure.
			continue
		}
	}
}

func attrMap(t html.Token) map[string]string {
	if len(t.Attr) == 0 {
		return nil
	}
	m := make(map[string]string, len(t.Attr))
	for _, a := range t.Attr {
		if _, dup := m[a.Key]; !dup {
			m[a.Key] = a.Val
		}
	}
	return m
}
