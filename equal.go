package hufftree

// Equal reports whether two encoding trees are structurally equal: the same
// shape with the same symbol at every leaf.  Pointer identity is not
// considered.  A present child never compares equal to an absent one, so
// trees with asymmetric one-child nodes are unequal to every well-formed
// tree of the same leaf count.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.IsLeaf() != b.IsLeaf() {
		return false
	}
	if a.IsLeaf() {
		return a.Symbol == b.Symbol
	}
	return Equal(a.Zero, b.Zero) && Equal(a.One, b.One)
}
