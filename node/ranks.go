package node

import "github.com/rskv-p/sltree/bwt"

// Ranks holds per-symbol occurrence counts up to one BWT position.
type Ranks [bwt.Sigma]uint64

// RanksAt queries idx once per symbol at pos. The N component is only
// queried when the index contains N.
func RanksAt(idx bwt.RankIndex, pos uint64) Ranks {
	var r Ranks
	r[bwt.Term] = idx.Rank(pos, bwt.Term)
	for _, s := range bwt.Extensions {
		if s == bwt.N && !idx.HasN() {
			continue
		}
		r[s] = idx.Rank(pos, s)
	}
	return r
}

// Add concatenates counts of two adjacent ranges.
func (r Ranks) Add(o Ranks) Ranks {
	for s := range r {
		r[s] += o[s]
	}
	return r
}

// LessEq reports whether every component of r is <= the one of o.
func (r Ranks) LessEq(o Ranks) bool {
	for s := range r {
		if r[s] > o[s] {
			return false
		}
	}
	return true
}

// Range is a half-open BWT interval.
type Range struct {
	Lo, Hi uint64
}

func (r Range) Len() uint64 { return r.Hi - r.Lo }

func (r Range) Empty() bool { return r.Hi <= r.Lo }

// RangeSet holds one range per symbol.
type RangeSet [bwt.Sigma]Range

// FoldRanks pairs the ranks at both ends of an interval. Component s is the
// span of s-occurrences inside the interval, i.e. the rank-space range of s·W
// before the C offset is applied. lo must be dominated by hi.
func FoldRanks(lo, hi Ranks) RangeSet {
	if !lo.LessEq(hi) {
		Violate("fold_ranks", "ranks %v not dominated by %v", lo, hi)
	}
	var rs RangeSet
	for s := range rs {
		rs[s] = Range{Lo: lo[s], Hi: hi[s]}
	}
	return rs
}
