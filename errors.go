package hufftree

import (
	"errors"
)

// Errors reported by tree construction, serialization, and coding.  Call
// sites wrap these with positional context; match them with errors.Is.
var (
	// ErrInsufficientAlphabet indicates that input text contains fewer than
	// two distinct symbols, so no prefix code exists for it.
	ErrInsufficientAlphabet = errors.New("hufftree: need at least two distinct symbols")

	// ErrMalformedTree indicates an inconsistent flattened tree description
	// or a tree that violates the two-children invariant.
	ErrMalformedTree = errors.New("hufftree: malformed encoding tree")

	// ErrMalformedBitstream indicates a bit sequence that is not a valid
	// encoding against the tree it was decoded with.
	ErrMalformedBitstream = errors.New("hufftree: malformed bit sequence")

	// ErrUnknownSymbol indicates text containing a symbol that has no leaf
	// in the encoding tree.
	ErrUnknownSymbol = errors.New("hufftree: symbol not present in encoding tree")
)
