// Package node is the algebra of suffix-link-tree nodes over a BWT.
//
// A node stands for a right-maximal substring W. It is never stored as
// characters: it is the BWT interval of W split into six consecutive
// sub-intervals, one per symbol that follows W, in the order
// TERM < A < C < G < N < T. Nodes are plain values; children are computed
// from a parent and a rank index and nothing links them together.
package node

import (
	"fmt"

	"github.com/rskv-p/sltree/bwt"
)

// Node holds the boundaries
//
//	FirstTerm <= FirstA <= FirstC <= FirstG <= FirstN <= FirstT <= Last
//
// where [FirstX, next) is the BWT range of the rows prefixed by W·X.
// When the BWT has no N, FirstN == FirstT for every node.
type Node struct {
	FirstTerm uint64
	FirstA    uint64
	FirstC    uint64
	FirstG    uint64
	FirstN    uint64
	FirstT    uint64
	Last      uint64

	// Depth is |W|.
	Depth uint64
}

// Bounds are the seven boundaries of a node in symbol order, Last included.
type Bounds [bwt.Sigma + 1]uint64

// FromBounds builds a node from its boundaries.
func FromBounds(b Bounds, depth uint64) Node {
	return Node{
		FirstTerm: b[bwt.Term],
		FirstA:    b[bwt.A],
		FirstC:    b[bwt.C],
		FirstG:    b[bwt.G],
		FirstN:    b[bwt.N],
		FirstT:    b[bwt.T],
		Last:      b[bwt.Sigma],
		Depth:     depth,
	}
}

// Uniform returns a node whose seven boundaries all equal v. Merged into a
// rank node it shifts every boundary by v.
func Uniform(v, depth uint64) Node {
	return Node{v, v, v, v, v, v, v, depth}
}

func (n Node) Bounds() Bounds {
	return Bounds{n.FirstTerm, n.FirstA, n.FirstC, n.FirstG, n.FirstN, n.FirstT, n.Last}
}

// Size is the number of occurrences of W.
func (n Node) Size() uint64 { return n.Last - n.FirstTerm }

// IsEmpty reports a degenerate node that must never be descended into.
func (n Node) IsEmpty() bool { return n.Last == n.FirstTerm }

// SubRange returns the BWT range of W·s.
func (n Node) SubRange(s bwt.Symbol) Range {
	b := n.Bounds()
	return Range{Lo: b[s], Hi: b[s+1]}
}

// HasRightExt reports whether W·s occurs.
func (n Node) HasRightExt(s bwt.Symbol) bool {
	return !n.SubRange(s).Empty()
}

// RightExts returns the set of symbols that extend W on the right.
func (n Node) RightExts() Flags {
	var f Flags
	for s := bwt.Symbol(0); s < bwt.Sigma; s++ {
		if n.HasRightExt(s) {
			f = f.With(s)
		}
	}
	return f
}

// NumberOfRightExts is the out-degree of W in the suffix tree.
func (n Node) NumberOfRightExts() int {
	return n.RightExts().Count()
}

// IsRightMaximal reports whether at least two symbols follow W.
func (n Node) IsRightMaximal() bool {
	return n.NumberOfRightExts() >= 2
}

// Check panics with an InvariantError if the boundaries are out of order.
func (n Node) Check() {
	b := n.Bounds()
	for i := 1; i < len(b); i++ {
		if b[i] < b[i-1] {
			Violate("check", "boundaries out of order: %s", n)
		}
	}
}

// Merge sums two nodes of equal depth field by field.
func Merge(a, b Node) Node {
	if a.Depth != b.Depth {
		Violate("merge", "depth mismatch %d != %d", a.Depth, b.Depth)
	}
	return Node{
		FirstTerm: a.FirstTerm + b.FirstTerm,
		FirstA:    a.FirstA + b.FirstA,
		FirstC:    a.FirstC + b.FirstC,
		FirstG:    a.FirstG + b.FirstG,
		FirstN:    a.FirstN + b.FirstN,
		FirstT:    a.FirstT + b.FirstT,
		Last:      a.Last + b.Last,
		Depth:     a.Depth,
	}
}

func (n Node) String() string {
	return fmt.Sprintf("[%d, %d, %d, %d, %d, %d, %d] depth=%d",
		n.FirstTerm, n.FirstA, n.FirstC, n.FirstG, n.FirstN, n.FirstT, n.Last, n.Depth)
}
