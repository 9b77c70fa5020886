package hufftree

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// DecodeText decodes a bit sequence into text using the given encoding tree.
// A cursor walks from the root, descending the zero branch on Zero and the
// one branch on One; each leaf reached appends its symbol to the output and
// resets the cursor to the root.  The sequence must end exactly at a leaf
// boundary.  A bit that is neither Zero nor One, a descent into an absent
// child, and a trailing partial code all fail with ErrMalformedBitstream.
// An empty sequence decodes to the empty string.
func DecodeText(root *Node, bits BitSeq) (string, error) {
	assert.Assertf(root != nil, "root is nil")
	var sb strings.Builder
	n := root
	start := 0
	for pos, b := range bits {
		switch b {
		case Zero:
			n = n.Zero
		case One:
			n = n.One
		default:
			return "", fmt.Errorf("bit %d is %s: %w", pos, b, ErrMalformedBitstream)
		}
		if n == nil {
			return "", fmt.Errorf("no branch for bit %d: %w", pos, ErrMalformedBitstream)
		}
		if n.IsLeaf() {
			sb.WriteRune(rune(n.Symbol))
			n = root
			start = pos + 1
		}
	}
	if n != root {
		return "", fmt.Errorf("trailing partial code at bit %d: %w", start, ErrMalformedBitstream)
	}
	return sb.String(), nil
}
