package hufftree

import (
	"fmt"
	"strconv"
)

// Symbol represents a symbol in an arbitrary alphabet.  Each Symbol holds a
// single Unicode code point, so text converts to and from SymbolSeq without
// loss.
type Symbol rune

// String returns the single-quoted representation of this Symbol.
func (s Symbol) String() string {
	return strconv.QuoteRune(rune(s))
}

var _ fmt.Stringer = Symbol(0)

// SymbolSeq represents an ordered sequence of symbols.
type SymbolSeq []Symbol

// String returns the string representation of this SymbolSeq, as a quoted
// string of its symbols in order.
func (ss SymbolSeq) String() string {
	return strconv.Quote(string(ss))
}

var _ fmt.Stringer = SymbolSeq(nil)
