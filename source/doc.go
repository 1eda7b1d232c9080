// Package source opens byte-bearing inputs for parsing.
//
// A [Source] is a closed descriptor over the supported input kinds: an
// already-open reader, a local file path, a remote URL, an in-memory string,
// a connected network socket, or a response body paired with its
// Content-Type. [Resolve] opens a descriptor into a byte stream plus an
// optional transport-supplied encoding hint; descriptors it cannot classify
// fail with [ErrUnsupportedSource].
//
// [Buffered] wraps the resolved stream with mark/reset capability: a mark
// guarantees that a bounded window of subsequently consumed bytes can be
// replayed after a reset, without re-fetching from the transport. Resetting
// past the guaranteed window fails with [ErrResetExceeded].
package source
