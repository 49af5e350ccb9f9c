// Package slt navigates the suffix-link tree of a BWT without building it.
//
// The children of a right-maximal substring W are the right-maximal
// substrings aW reached through a Weiner link. Both child operations compute
// them with rank queries on the boundaries of W and return them ordered by
// size, largest last.
package slt

import (
	"github.com/rskv-p/sltree/bwt"
	"github.com/rskv-p/sltree/node"
)

// MaxChildren bounds the number of Weiner children of a node.
const MaxChildren = len(bwt.Extensions)

// Leaves accumulates suffix-link-tree leaves met by NextNodes.
type Leaves struct {
	Count uint64 // leaves
	Exts  uint64 // sum of their right-extensions
}

// Record adds x as a leaf. The root is never a leaf.
func (l *Leaves) Record(x node.Node) {
	if x.Depth == 0 {
		return
	}
	l.Count++
	l.Exts += uint64(x.NumberOfRightExts())
}

// Navigator derives children of nodes from a rank index. It holds no
// per-traversal state and may be shared.
type Navigator struct {
	idx  bwt.RankIndex
	exts []bwt.Symbol
}

func New(idx bwt.RankIndex) *Navigator {
	exts := make([]bwt.Symbol, 0, MaxChildren)
	for _, s := range bwt.Extensions {
		if s == bwt.N && !idx.HasN() {
			continue
		}
		exts = append(exts, s)
	}
	return &Navigator{idx: idx, exts: exts}
}

// Len is the BWT length.
func (nv *Navigator) Len() uint64 { return nv.idx.Len() }

// HasN reports whether nodes use the N sub-range.
func (nv *Navigator) HasN() bool { return nv.idx.HasN() }

// Root is the node of the empty string: the whole BWT split by first symbol.
func (nv *Navigator) Root() node.Node {
	return node.Node{
		FirstTerm: nv.idx.C(bwt.Term),
		FirstA:    nv.idx.C(bwt.A),
		FirstC:    nv.idx.C(bwt.C),
		FirstG:    nv.idx.C(bwt.G),
		FirstN:    nv.idx.C(bwt.N),
		FirstT:    nv.idx.C(bwt.T),
		Last:      nv.idx.Len(),
		Depth:     0,
	}
}

// NextNodes appends the right-maximal children of x to out and records x
// in leaves when it has none.
//
// Ranks are taken once per boundary for all symbols; the two outer rank
// tuples are folded first so that symbols a with fewer than two occurrences
// of aW are skipped before their inner boundaries are computed.
func (nv *Navigator) NextNodes(x node.Node, out []node.Node, leaves *Leaves) []node.Node {
	mustDescend("next_nodes", x)

	first := len(out)
	lo := node.RanksAt(nv.idx, x.FirstTerm)
	hi := node.RanksAt(nv.idx, x.Last)
	spans := node.FoldRanks(lo, hi)

	var inner [bwt.Sigma - 1]node.Ranks
	innerDone := false
	b := x.Bounds()

	for _, a := range nv.exts {
		if spans[a].Len() < 2 {
			continue
		}
		if !innerDone {
			for i := 1; i < bwt.Sigma; i++ {
				inner[i-1] = node.RanksAt(nv.idx, b[i])
			}
			innerDone = true
		}
		rk := node.Bounds{lo[a]}
		for i := 1; i < bwt.Sigma; i++ {
			rk[i] = inner[i-1][a]
		}
		rk[bwt.Sigma] = hi[a]

		child := node.Merge(node.Uniform(nv.idx.C(a), x.Depth+1), node.FromBounds(rk, x.Depth+1))
		child.Check()
		if child.IsRightMaximal() {
			out = append(out, child)
		}
	}

	if len(out) == first {
		leaves.Record(x)
	}
	sortBySize(out[first:])
	return out
}

// WeinerChildren appends the right-maximal nodes aW of x to out. Each
// candidate is one backward-search step applied to all seven boundaries.
func (nv *Navigator) WeinerChildren(x node.Node, out []node.Node) []node.Node {
	mustDescend("weiner_children", x)

	first := len(out)
	for _, a := range nv.exts {
		child, ok := nv.extend(x, a)
		if ok {
			out = append(out, child)
		}
	}
	sortBySize(out[first:])
	return out
}

// extend computes aW. ok is false when aW is not right-maximal.
func (nv *Navigator) extend(x node.Node, a bwt.Symbol) (node.Node, bool) {
	offset := nv.idx.C(a)
	lo := offset + nv.idx.Rank(x.FirstTerm, a)
	hi := offset + nv.idx.Rank(x.Last, a)
	if hi-lo < 2 {
		return node.Node{}, false
	}

	b := x.Bounds()
	var nb node.Bounds
	nb[0] = lo
	for i := 1; i < bwt.Sigma; i++ {
		nb[i] = offset + nv.idx.Rank(b[i], a)
	}
	nb[bwt.Sigma] = hi

	child := node.FromBounds(nb, x.Depth+1)
	child.Check()
	return child, child.IsRightMaximal()
}

func mustDescend(op string, x node.Node) {
	if x.IsEmpty() {
		node.Violate(op, "cannot descend into empty node %s", x)
	}
}

// sortBySize orders nodes by non-decreasing size, keeping symbol order on
// ties. There are at most MaxChildren of them.
func sortBySize(nodes []node.Node) {
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && nodes[j].Size() < nodes[j-1].Size(); j-- {
			nodes[j], nodes[j-1] = nodes[j-1], nodes[j]
		}
	}
}
