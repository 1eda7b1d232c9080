package tree

import "strings"

// ChildKind represents the kind of a tree child.
type ChildKind int

const (
	ChildKindElement ChildKind = iota
	ChildKindText
)

func (ck ChildKind) String() string {
	switch ck {
	case ChildKindElement:
		return "Element"
	case ChildKindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Child is the interface for members of a Node's children sequence.
// The only implementations are *Node and Text.
type Child interface {
	Kind() ChildKind
}

// Node represents one markup element: a tag identifier, its attributes,
// and its children in document order.
type Node struct {
	Tag        string
	Attributes map[string]string
	Children   []Child
}

func (n *Node) Kind() ChildKind { return ChildKindElement }

// Text is a leaf of decoded character data. Leaves produced by the builder
// are never empty and never split across two nodes.
type Text string

func (t Text) Kind() ChildKind { return ChildKindText }

// Attr returns the value of the named attribute and whether it was present.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.Attributes[key]
	return v, ok
}

// Text returns the concatenated text content of the node and all of its
// descendants, in document order.
func (n *Node) Text() string {
	var sb strings.Builder
	n.appendText(&sb)
	return sb.String()
}

func (n *Node) appendText(sb *strings.Builder) {
	for _, c := range n.Children {
		switch v := c.(type) {
		case Text:
			sb.WriteString(string(v))
		case *Node:
			v.appendText(sb)
		}
	}
}

// Find returns the first element with the given tag, searching the node
// itself and then its descendants depth-first. It returns nil when no such
// element exists.
func (n *Node) Find(tag string) *Node {
	if n.Tag == tag {
		return n
	}
	for _, c := range n.Children {
		if child, ok := c.(*Node); ok {
			if found := child.Find(tag); found != nil {
				return found
			}
		}
	}
	return nil
}

// FindAll returns every element with the given tag in document order,
// searching the node itself and its descendants.
func (n *Node) FindAll(tag string) []*Node {
	var found []*Node
	n.findAll(tag, &found)
	return found
}

func (n *Node) findAll(tag string, found *[]*Node) {
	if n.Tag == tag {
		*found = append(*found, n)
	}
	for _, c := range n.Children {
		if child, ok := c.(*Node); ok {
			child.findAll(tag, found)
		}
	}
}
