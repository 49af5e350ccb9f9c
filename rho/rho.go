// Package rho walks the implicit suffix-link tree of a BWT and measures it.
//
// Three walks share one navigator:
//
//   - Enumerate visits every node with an explicit stack and counts the
//     suffix-link-tree leaves and their right-extensions (the size of the
//     SLT factorization).
//   - NaiveRho computes the rho measure by plain recursion. Its depth equals
//     the longest right-maximal substring; it serves as a reference.
//   - Rho computes the same value recursing only into the non-largest
//     children and looping into the largest one, so the call depth stays
//     within log2(n)+1.
//
// The root (empty string) is visited but neither charged nor counted as a
// leaf.
package rho

import (
	"github.com/rskv-p/sltree/node"
	"github.com/rskv-p/sltree/slt"
)

// Stats accumulates the counters of one traversal.
type Stats struct {
	Nodes    uint64 // visited nodes, root included
	MaxStack uint64 // largest explicit stack (Enumerate)
	MaxDepth uint64 // deepest call frame (NaiveRho, Rho)
	Leaves   uint64 // suffix-link-tree leaves
	LeafExts uint64 // right-extensions of the leaves
	Rho      uint64
}

// Option configures a traversal.
type Option func(*walker)

// WithProgress reports the percentage of visited nodes relative to the BWT
// length each time it grows.
func WithProgress(fn func(percent int)) Option {
	return func(w *walker) {
		w.progress = newProgress(w.nav.Len(), fn)
	}
}

type walker struct {
	nav      *slt.Navigator
	stats    Stats
	leaves   slt.Leaves
	progress *progress
}

func newWalker(nav *slt.Navigator, opts []Option) *walker {
	w := &walker{nav: nav}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *walker) visit(depth uint64) {
	w.stats.Nodes++
	if depth > w.stats.MaxDepth {
		w.stats.MaxDepth = depth
	}
	w.progress.visit(w.stats.Nodes)
}

func (w *walker) leaf(x node.Node) {
	w.leaves.Record(x)
}

func (w *walker) finish() Stats {
	w.stats.Leaves = w.leaves.Count
	w.stats.LeafExts = w.leaves.Exts
	return w.stats
}

// ownExts are the right-extensions a node is charged for.
func ownExts(x node.Node) node.Flags {
	if x.Depth == 0 {
		return 0
	}
	return x.RightExts()
}

// Enumerate visits the whole tree depth first with an explicit stack.
func Enumerate(nav *slt.Navigator, opts ...Option) Stats {
	w := newWalker(nav, opts)

	stack := []node.Node{nav.Root()}
	children := make([]node.Node, 0, slt.MaxChildren)

	for len(stack) > 0 {
		if size := uint64(len(stack)); size > w.stats.MaxStack {
			w.stats.MaxStack = size
		}
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		w.visit(0)

		children = nav.NextNodes(x, children[:0], &w.leaves)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return w.finish()
}

// NaiveRho computes rho recursing into every Weiner child.
func NaiveRho(nav *slt.Navigator, opts ...Option) Stats {
	w := newWalker(nav, opts)
	w.naive(nav.Root(), 1)
	return w.finish()
}

// naive returns the right-extensions of x together with those of its
// subtree, and charges the ones of x no child carries.
func (w *walker) naive(x node.Node, depth uint64) node.Flags {
	w.visit(depth)

	var buf [slt.MaxChildren]node.Node
	children := w.nav.WeinerChildren(x, buf[:0])

	var covered node.Flags
	for _, c := range children {
		covered |= w.naive(c, depth+1)
	}
	if len(children) == 0 {
		w.leaf(x)
	}

	own := ownExts(x)
	w.stats.Rho += uint64((own &^ covered).Count())
	return covered | own
}

// Rho computes rho with call depth O(log n).
func Rho(nav *slt.Navigator, opts ...Option) Stats {
	w := newWalker(nav, opts)
	w.cover(nav.Root(), 0, 1)
	return w.finish()
}

// cover charges the subtree of x. pending holds extensions owed by
// ancestors that nothing below them carries. It returns the extensions the
// subtree accounts for.
func (w *walker) cover(x node.Node, pending node.Flags, depth uint64) node.Flags {
	var covered node.Flags
	var buf [slt.MaxChildren]node.Node

	for {
		w.visit(depth)
		pending |= ownExts(x)

		children := w.nav.WeinerChildren(x, buf[:0])
		if len(children) == 0 {
			w.leaf(x)
			w.stats.Rho += uint64(pending.Count())
			return covered | pending
		}

		last := len(children) - 1
		var level node.Flags
		for _, c := range children[:last] {
			level |= w.cover(c, 0, depth+1)
		}
		pending &^= level
		covered |= level

		// children[last] is the largest; continue with it in this frame.
		x = children[last]
	}
}
