package markup

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// collect drains a scanner into a slice, failing the test on any error other
// than io.EOF.
func collect(t *testing.T, s Scanner) []Event {
	t.Helper()
	var events []Event
	for {
		ev, err := s.Next()
		if errors.Is(err, io.EOF) {
			return events
		}
		if err != nil {
			t.Fatalf("scanner error: %v", err)
		}
		events = append(events, ev)
	}
}

func TestHTMLScannerBasic(t *testing.T) {
	events := collect(t, NewHTMLScanner(strings.NewReader("<p>café</p>")))

	expected := []Event{
		{Kind: EventStart, Name: "p"},
		{Kind: EventText, Text: "café"},
		{Kind: EventEnd, Name: "p"},
	}
	if len(events) != len(expected) {
		t.Fatalf("got %d events, want %d: %+v", len(events), len(expected), events)
	}
	for i, want := range expected {
		got := events[i]
		if got.Kind != want.Kind || got.Name != want.Name || got.Text != want.Text {
			t.Errorf("event %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestHTMLScannerAttributes(t *testing.T) {
	events := collect(t, NewHTMLScanner(strings.NewReader(`<a href="/x" class='y'>link</a>`)))

	if len(events) == 0 || events[0].Kind != EventStart {
		t.Fatalf("expected Start event first, got %+v", events)
	}
	attrs := events[0].Attributes
	if attrs["href"] != "/x" || attrs["class"] != "y" {
		t.Errorf("attributes = %v, want href=/x class=y", attrs)
	}
}

func TestHTMLScannerVoidElements(t *testing.T) {
	events := collect(t, NewHTMLScanner(strings.NewReader(`<head><meta charset="utf-8"><br></head>`)))

	var kinds []string
	for _, ev := range events {
		kinds = append(kinds, ev.Kind.String()+":"+ev.Name)
	}
	expected := []string{
		"Start:head", "Start:meta", "End:meta", "Start:br", "End:br", "End:head",
	}
	if strings.Join(kinds, " ") != strings.Join(expected, " ") {
		t.Errorf("event sequence = %v, want %v", kinds, expected)
	}
}

func TestHTMLScannerSelfClosing(t *testing.T) {
	events := collect(t, NewHTMLScanner(strings.NewReader(`<div><img src="x"/></div>`)))

	var kinds []string
	for _, ev := range events {
		kinds = append(kinds, ev.Kind.String()+":"+ev.Name)
	}
	expected := []string{"Start:div", "Start:img", "End:img", "End:div"}
	if strings.Join(kinds, " ") != strings.Join(expected, " ") {
		t.Errorf("event sequence = %v, want %v", kinds, expected)
	}
}

func TestHTMLScannerSkipsCommentsAndDoctype(t *testing.T) {
	input := "<!DOCTYPE html><!-- note --><p>x</p>"
	events := collect(t, NewHTMLScanner(strings.NewReader(input)))

	if len(events) != 3 {
		t.Fatalf("got %d events, want 3: %+v", len(events), events)
	}
	if events[0].Kind != EventStart || events[0].Name != "p" {
		t.Errorf("first event = %+v, want Start p", events[0])
	}
}

func TestHTMLScannerMalformedInput(t *testing.T) {
	// The tokenizer is error-correcting: malformed markup still produces a
	// clean event stream terminated by io.EOF.
	events := collect(t, NewHTMLScanner(strings.NewReader("<p><b>unclosed")))

	var kinds []string
	for _, ev := range events {
		kinds = append(kinds, ev.Kind.String())
	}
	expected := []string{"Start", "Start", "Text"}
	if strings.Join(kinds, " ") != strings.Join(expected, " ") {
		t.Errorf("event kinds = %v, want %v", kinds, expected)
	}
}
