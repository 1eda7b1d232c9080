// Package tree provides the document tree data model and the streaming
// builder that constructs it from markup events.
//
// # Nodes
//
// A parsed document is a tree of [Node] values. Each Node carries a tag
// identifier, an attribute map, and an ordered sequence of children. A child
// is either a nested *Node or a [Text] leaf of decoded character data; both
// satisfy the [Child] interface. The tree is immutable once returned by the
// builder and is owned entirely by the caller.
//
// # Building
//
// The [Builder] consumes [markup.Event] values one at a time and maintains a
// stack of open elements. Consecutive text chunks are coalesced into a single
// Text leaf; whitespace-only leaves between element boundaries can be
// stripped. Consume returns an [Action] rather than an error for control
// flow: ActionRestart reports that a meta-declared charset contradicts the
// encoding currently decoding the stream, and ActionDone reports that the
// document root has been completed.
package tree
