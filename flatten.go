package hufftree

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Flatten serializes an encoding tree into its flattened form: a shape
// sequence describing a pre-order traversal, plus the leaf symbols in
// traversal order.  In the shape, One means "internal node, descend" and
// Zero means "leaf, consume the next symbol".  The zero branch is always
// traversed before the one branch.
func Flatten(root *Node) (shape BitSeq, leaves SymbolSeq) {
	assert.Assertf(root != nil, "root is nil")
	return flattenInto(root, nil, nil)
}

func flattenInto(n *Node, shape BitSeq, leaves SymbolSeq) (BitSeq, SymbolSeq) {
	if n.IsLeaf() {
		return append(shape, Zero), append(leaves, n.Symbol)
	}
	shape = append(shape, One)
	shape, leaves = flattenInto(n.Zero, shape, leaves)
	return flattenInto(n.One, shape, leaves)
}

// Unflatten reconstructs an encoding tree from its flattened form.  It is
// the inverse of Flatten: Equal(reconstructed, original) holds for every
// well-formed tree.  Inconsistent input fails with ErrMalformedTree: a shape
// or leaf sequence that runs out mid-traversal, a shape bit that is neither
// Zero nor One, or leftover bits or symbols after the first complete
// subtree.
func Unflatten(shape BitSeq, leaves SymbolSeq) (*Node, error) {
	u := unflattener{shape: shape, leaves: leaves}
	root, err := u.next()
	if err != nil {
		return nil, err
	}
	if u.si != len(u.shape) {
		return nil, fmt.Errorf("%d leftover shape bits: %w", len(u.shape)-u.si, ErrMalformedTree)
	}
	if u.li != len(u.leaves) {
		return nil, fmt.Errorf("%d leftover leaf symbols: %w", len(u.leaves)-u.li, ErrMalformedTree)
	}
	return root, nil
}

// type unflattener {{{

type unflattener struct {
	shape  BitSeq
	leaves SymbolSeq
	si     int
	li     int
}

func (u *unflattener) next() (*Node, error) {
	if u.si == len(u.shape) {
		return nil, fmt.Errorf("shape exhausted after %d bits: %w", u.si, ErrMalformedTree)
	}
	b := u.shape[u.si]
	u.si++
	switch b {
	case Zero:
		if u.li == len(u.leaves) {
			return nil, fmt.Errorf("leaf symbols exhausted at shape bit %d: %w", u.si-1, ErrMalformedTree)
		}
		leaf := NewLeaf(u.leaves[u.li])
		u.li++
		return leaf, nil
	case One:
		zero, err := u.next()
		if err != nil {
			return nil, err
		}
		one, err := u.next()
		if err != nil {
			return nil, err
		}
		return NewInternal(zero, one), nil
	default:
		return nil, fmt.Errorf("shape bit %d is %s: %w", u.si-1, b, ErrMalformedTree)
	}
}

// }}}
