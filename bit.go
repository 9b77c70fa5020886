package hufftree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Bit represents a single bit.  The only valid values are Zero and One; any
// other value is malformed wherever bits are consumed.
type Bit byte

const (
	// Zero marks a leaf in a flattened tree shape and selects the zero
	// branch of an internal node.
	Zero Bit = iota

	// One marks an internal node in a flattened tree shape and selects the
	// one branch of an internal node.
	One
)

// String returns "0" or "1".
func (b Bit) String() string {
	switch b {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return fmt.Sprintf("Bit(%d)", byte(b))
	}
}

var _ fmt.Stringer = Bit(0)

// BitSeq represents an ordered sequence of bits.
type BitSeq []Bit

// MakeBits is a convenience function that constructs a BitSeq from a string
// consisting entirely of '0' and '1' characters.
func MakeBits(s string) BitSeq {
	out := make(BitSeq, 0, len(s))
	for _, ch := range s {
		assert.Assertf(ch == '0' || ch == '1', "character %q is not a bit", ch)
		out = append(out, Bit(ch-'0'))
	}
	return out
}

// String returns the string representation of this BitSeq, as a quoted
// string of '0' and '1' characters.
func (bs BitSeq) String() string {
	var sb strings.Builder
	sb.Grow(len(bs))
	for _, b := range bs {
		sb.WriteString(b.String())
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = BitSeq(nil)
