package hufftree

import (
	"container/heap"
	"fmt"
	"sort"
)

// BuildTree constructs an optimal Huffman encoding tree for the given text.
// Text with fewer than two distinct symbols fails with
// ErrInsufficientAlphabet.
func BuildTree(text string) (*Node, error) {
	return BuildTreeFromTable(CountSymbols(text))
}

// BuildTreeFromTable constructs an optimal Huffman encoding tree for the
// given frequency table.  Entries with non-positive counts are ignored; a
// table with fewer than two remaining symbols fails with
// ErrInsufficientAlphabet.
//
// The construction is the classic greedy merge: every symbol starts out as a
// leaf weighted by its count, and the two lightest entries are repeatedly
// merged under a new internal node (first out becomes the zero child, second
// out the one child) until a single root remains.  The result minimizes the
// weighted path length over all binary prefix codes for the table.
//
// Construction is deterministic: leaves are enqueued in ascending symbol
// order, and among equal weights the most recently enqueued entry dequeues
// first, so a merged subtree always beats an equal-weight entry that was
// already waiting.
//
func BuildTreeFromTable(table FrequencyTable) (*Node, error) {
	symbols := make(bySymbol, 0, len(table))
	for symbol, count := range table {
		if count <= 0 {
			continue
		}
		symbols = append(symbols, symbol)
	}
	if len(symbols) < 2 {
		return nil, fmt.Errorf("alphabet has %d symbols: %w", len(symbols), ErrInsufficientAlphabet)
	}
	symbols.Sort()

	q := newBuildQueue(len(symbols))
	for _, symbol := range symbols {
		q.push(NewLeaf(symbol), table[symbol])
	}
	for q.Len() > 1 {
		zero := q.pop()
		one := q.pop()
		q.push(NewInternal(zero.node, one.node), zero.weight+one.weight)
	}
	return q.pop().node, nil
}

// type weightedNode + type buildQueue {{{

type weightedNode struct {
	node   *Node
	weight int
	seq    int
}

type buildQueue struct {
	list    []weightedNode
	nextSeq int
}

func newBuildQueue(capacity int) *buildQueue {
	return &buildQueue{list: make([]weightedNode, 0, capacity)}
}

func (q *buildQueue) push(node *Node, weight int) {
	heap.Push(q, weightedNode{node: node, weight: weight, seq: q.nextSeq})
	q.nextSeq++
}

func (q *buildQueue) pop() weightedNode {
	return heap.Pop(q).(weightedNode)
}

func (q *buildQueue) Len() int {
	return len(q.list)
}

func (q *buildQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *buildQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	// Among equal weights, the most recently enqueued entry wins.
	return a.seq > b.seq
}

func (q *buildQueue) Push(x any) {
	q.list = append(q.list, x.(weightedNode))
}

func (q *buildQueue) Pop() any {
	last := len(q.list) - 1
	x := q.list[last]
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*buildQueue)(nil)

// }}}

// type bySymbol {{{

type bySymbol SymbolSeq

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

func (list bySymbol) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySymbol(nil)

// }}}
