package hufftree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman encoding tree.  A leaf holds one Symbol and
// has no children; an internal node has exactly two children and no Symbol.
// A node with exactly one child is not part of any well-formed tree.
type Node struct {
	// Symbol holds the leaf's symbol.  It is meaningful only when both
	// children are nil.
	Symbol Symbol

	// Zero holds the subtree selected by a Zero bit.
	Zero *Node

	// One holds the subtree selected by a One bit.
	One *Node
}

// NewLeaf constructs a leaf holding the given symbol.
func NewLeaf(symbol Symbol) *Node {
	return &Node{Symbol: symbol}
}

// NewInternal constructs an internal node with the given zero and one
// subtrees.  Both children are mandatory.
func NewInternal(zero, one *Node) *Node {
	assert.Assertf(zero != nil, "zero child is nil")
	assert.Assertf(one != nil, "one child is nil")
	return &Node{Zero: zero, One: one}
}

// IsLeaf reports whether this Node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Zero == nil && n.One == nil
}

// String returns a compact structural rendering of the tree rooted at this
// Node: leaves as quoted symbols, internal nodes as "{zero one}".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsLeaf() {
		return n.Symbol.String()
	}
	return "{" + n.Zero.String() + " " + n.One.String() + "}"
}

// GoString returns a Go expression that constructs the tree rooted at this
// Node.
func (n *Node) GoString() string {
	if n == nil {
		return "(*hufftree.Node)(nil)"
	}
	if n.IsLeaf() {
		return fmt.Sprintf("NewLeaf(%s)", n.Symbol)
	}
	return fmt.Sprintf("NewInternal(%s, %s)", n.Zero.GoString(), n.One.GoString())
}

var _ fmt.Stringer = (*Node)(nil)
var _ fmt.GoStringer = (*Node)(nil)

// Dump writes a programmer-readable debugging dump of the tree rooted at
// this Node to the given writer, one line per leaf in traversal order.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	n.dumpCodes(&buf, nil)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (n *Node) dumpCodes(buf *bytes.Buffer, path BitSeq) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		fmt.Fprintf(buf, "\tEncode(%s) = %s\n", n.Symbol, path)
		return
	}
	n.Zero.dumpCodes(buf, append(path, Zero))
	n.One.dumpCodes(buf, append(path, One))
}
