package tree

import (
	"errors"
	"strings"

	"github.com/tsawler/arbor/charset"
	"github.com/tsawler/arbor/markup"
)

// ErrNoRootElement indicates input that finished without a single completed
// element.
var ErrNoRootElement = errors.New("tree: document contains no root element")

// Action is the three-way outcome of consuming one event. Restart is control
// flow, not failure: it asks the coordinator to redo the parse with a
// corrected encoding.
type Action int

const (
	// ActionContinue means the builder is ready for the next event.
	ActionContinue Action = iota
	// ActionRestart means a meta-declared charset contradicts the encoding
	// currently decoding the stream; no further events from this pass may be
	// consumed. The label is available from PendingCharset.
	ActionRestart
	// ActionDone means the document root is complete.
	ActionDone
)

func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "Continue"
	case ActionRestart:
		return "Restart"
	case ActionDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Config configures a Builder.
type Config struct {
	// StripWhitespace drops text leaves that consist solely of whitespace
	// between two element boundaries. Whitespace inside mixed content is
	// always preserved verbatim.
	StripWhitespace bool

	// CharsetChanged reports whether a charset label found in a meta
	// declaration names an encoding other than the one currently decoding
	// the stream. A nil func disables meta-driven restarts.
	CharsetChanged func(label string) bool
}

// frame is one stack entry per open element.
type frame struct {
	tag      string
	attrs    map[string]string
	children []Child
}

// Builder assembles a document tree from a stream of markup events. A
// Builder is owned by a single parse attempt; on restart it is discarded
// wholesale, never reset.
type Builder struct {
	cfg     Config
	stack   []frame
	pending strings.Builder
	root    *Node
	found   string
	done    bool
}

// NewBuilder returns a Builder ready to consume events.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Consume processes one event and reports how to proceed.
func (b *Builder) Consume(ev markup.Event) Action {
	if b.done {
		return ActionDone
	}
	switch ev.Kind {
	case markup.EventText:
		b.pending.WriteString(ev.Text)

	case markup.EventStart:
		b.flushText()
		if label := metaCharset(ev); label != "" {
			if b.cfg.CharsetChanged != nil && b.cfg.CharsetChanged(label) {
				b.found = label
				return ActionRestart
			}
		}
		b.stack = append(b.stack, frame{tag: ev.Name, attrs: ev.Attributes})

	case markup.EventEnd:
		b.flushText()
		idx := b.openFrame(ev.Name)
		if idx < 0 {
			// Stray end tag; nothing to close.
			return ActionContinue
		}
		for len(b.stack) > idx {
			b.closeTop()
		}
		if b.done {
			return ActionDone
		}
	}
	return ActionContinue
}

// PendingCharset returns the meta-declared charset label that triggered the
// last ActionRestart.
func (b *Builder) PendingCharset() string { return b.found }

// Finish flushes pending text, unwinds any still-open frames, and returns
// the completed root. It fails with ErrNoRootElement when the input held no
// element at all.
func (b *Builder) Finish() (*Node, error) {
	b.flushText()
	for len(b.stack) > 0 {
		b.closeTop()
	}
	if b.root == nil {
		return nil, ErrNoRootElement
	}
	return b.root, nil
}

// openFrame returns the index of the nearest open frame with the given tag,
// or -1 when the tag is not open.
func (b *Builder) openFrame(tag string) int {
	for i := len(b.stack) - 1; i >= 0; i-- {
		if b.stack[i].tag == tag {
			return i
		}
	}
	return -1
}

func (b *Builder) closeTop() {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	n := &Node{Tag: top.tag, Attributes: top.attrs, Children: top.children}
	if len(b.stack) > 0 {
		parent := &b.stack[len(b.stack)-1]
		parent.children = append(parent.children, n)
		return
	}
	if b.root == nil {
		b.root = n
		b.done = true
	}
}

func (b *Builder) flushText() {
	if b.pending.Len() == 0 {
		return
	}
	text := b.pending.String()
	b.pending.Reset()
	if len(b.stack) == 0 {
		// Stray top-level text; a well-formed document has exactly one
		// root element.
		return
	}
	if b.cfg.StripWhitespace && strings.TrimSpace(text) == "" {
		return
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, Text(text))
}

// metaCharset extracts a charset label from a metadata-declaration element:
// either the HTML5 <meta charset="..."> shorthand or a
// <meta http-equiv="Content-Type" content="...; charset=..."> pair.
func metaCharset(ev markup.Event) string {
	if !strings.EqualFold(ev.Name, "meta") {
		return ""
	}
	var equiv, content, direct string
	for k, v := range ev.Attributes {
		switch {
		case strings.EqualFold(k, "charset"):
			direct = v
		case strings.EqualFold(k, "http-equiv"):
			equiv = v
		case strings.EqualFold(k, "content"):
			content = v
		}
	}
	if direct != "" {
		return direct
	}
	if strings.EqualFold(equiv, "content-type") {
		return charset.FromContentType(content)
	}
	return ""
}
