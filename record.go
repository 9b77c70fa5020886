package hufftree

import (
	"fmt"
)

// EncodedData is a complete, self-describing compressed payload: the
// flattened encoding tree (Shape plus Leaves) followed by the encoded
// message bits.  The triple is the entire persisted layout; framing, length
// prefixes, and checksums are a container format's concern.
type EncodedData struct {
	// Shape holds the flattened tree's pre-order shape sequence.
	Shape BitSeq

	// Leaves holds the flattened tree's leaf symbols in traversal order.
	Leaves SymbolSeq

	// MessageBits holds the encoded message.
	MessageBits BitSeq
}

// String returns a one-line summary of this EncodedData.
func (d EncodedData) String() string {
	return fmt.Sprintf("(encoded data with %d shape bits, %d leaves, %d message bits)", len(d.Shape), len(d.Leaves), len(d.MessageBits))
}

var _ fmt.Stringer = EncodedData{}
