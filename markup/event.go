package markup

// EventKind represents the kind of a markup event.
type EventKind int

const (
	// EventStart marks the opening of an element.
	EventStart EventKind = iota
	// EventText carries a chunk of character data.
	EventText
	// EventEnd marks the closing of an element.
	EventEnd
)

func (ek EventKind) String() string {
	switch ek {
	case EventStart:
		return "Start"
	case EventText:
		return "Text"
	case EventEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Event is one structural event emitted by a scanner. Name is set for Start
// and End events, Attributes for Start events (nil when the element has
// none), and Text for Text events.
type Event struct {
	Kind       EventKind
	Name       string
	Attributes map[string]string
	Text       string
}

// Scanner is the tolerant-parser contract. Next returns events strictly in
// document order and io.EOF once the input is exhausted. Any other error is
// a scanner failure and is not retried by callers.
type Scanner interface {
	Next() (Event, error)
}
