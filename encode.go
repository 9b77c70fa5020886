package hufftree

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol in an encoding tree to its root-to-leaf path.
type CodeTable map[Symbol]BitSeq

// NewCodeTable builds the CodeTable of the given encoding tree with a single
// traversal, recording a Zero for each descent into a zero branch and a One
// for each descent into a one branch, zero branch first.  A tree containing
// a node with exactly one child fails with ErrMalformedTree.
func NewCodeTable(root *Node) (CodeTable, error) {
	assert.Assertf(root != nil, "root is nil")
	table := make(CodeTable)
	if err := fillCodes(table, root, nil); err != nil {
		return nil, err
	}
	return table, nil
}

func fillCodes(table CodeTable, n *Node, path BitSeq) error {
	if n.IsLeaf() {
		code := make(BitSeq, len(path))
		copy(code, path)
		table[n.Symbol] = code
		return nil
	}
	if n.Zero == nil || n.One == nil {
		return fmt.Errorf("internal node with one child at depth %d: %w", len(path), ErrMalformedTree)
	}
	if err := fillCodes(table, n.Zero, append(path, Zero)); err != nil {
		return err
	}
	return fillCodes(table, n.One, append(path, One))
}

// EncodeText encodes text into a bit sequence using the given encoding tree,
// appending each symbol's root-to-leaf path in order.  A symbol with no leaf
// in the tree fails with ErrUnknownSymbol; a bare-leaf root fails with
// ErrMalformedTree, since its zero-length code could never decode.  Empty
// text encodes to an empty sequence.
func EncodeText(root *Node, text string) (BitSeq, error) {
	table, err := NewCodeTable(root)
	if err != nil {
		return nil, err
	}
	var out BitSeq
	for pos, ch := range text {
		code, found := table[Symbol(ch)]
		if !found {
			return nil, fmt.Errorf("symbol %s at byte %d: %w", Symbol(ch), pos, ErrUnknownSymbol)
		}
		if len(code) == 0 {
			return nil, fmt.Errorf("zero-length code for symbol %s: %w", Symbol(ch), ErrMalformedTree)
		}
		out = append(out, code...)
	}
	return out, nil
}
