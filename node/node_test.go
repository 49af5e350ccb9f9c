package node_test

import (
	"testing"

	"github.com/rskv-p/sltree/bwt"
	"github.com/rskv-p/sltree/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// W followed by # once, A twice, nothing by C, G three times, no N, T once.
var sample = node.Node{
	FirstTerm: 10, FirstA: 11, FirstC: 13, FirstG: 13, FirstN: 16, FirstT: 16, Last: 17,
	Depth: 4,
}

func catchInvariant(t *testing.T, fn func()) *node.InvariantError {
	t.Helper()
	var got *node.InvariantError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a panic")
			ie, ok := r.(*node.InvariantError)
			require.True(t, ok, "unexpected panic value %v", r)
			got = ie
		}()
		fn()
	}()
	return got
}

func TestSizeAndEmptiness(t *testing.T) {
	assert.Equal(t, uint64(7), sample.Size())
	assert.False(t, sample.IsEmpty())
	assert.True(t, node.Uniform(5, 0).IsEmpty())
}

func TestRightExtensions(t *testing.T) {
	assert.True(t, sample.HasRightExt(bwt.Term))
	assert.True(t, sample.HasRightExt(bwt.A))
	assert.False(t, sample.HasRightExt(bwt.C))
	assert.True(t, sample.HasRightExt(bwt.G))
	assert.False(t, sample.HasRightExt(bwt.N))
	assert.True(t, sample.HasRightExt(bwt.T))

	assert.Equal(t, 4, sample.NumberOfRightExts())
	assert.True(t, sample.IsRightMaximal())
	assert.Equal(t, "{#,A,G,T}", sample.RightExts().String())

	single := node.Node{FirstTerm: 3, FirstA: 3, FirstC: 5, FirstG: 5, FirstN: 5, FirstT: 5, Last: 5}
	assert.Equal(t, 1, single.NumberOfRightExts())
	assert.False(t, single.IsRightMaximal())
}

func TestSizeIsSumOfSubRanges(t *testing.T) {
	var total uint64
	for s := bwt.Symbol(0); s < bwt.Sigma; s++ {
		total += sample.SubRange(s).Len()
	}
	assert.Equal(t, sample.Size(), total)
	assert.Equal(t, node.Range{Lo: 13, Hi: 16}, sample.SubRange(bwt.G))
	assert.True(t, sample.SubRange(bwt.C).Empty())
}

func TestBoundsRoundTrip(t *testing.T) {
	assert.Equal(t, sample, node.FromBounds(sample.Bounds(), sample.Depth))
}

func TestMerge(t *testing.T) {
	a := node.Node{1, 2, 3, 4, 5, 6, 7, 2}
	b := node.Node{0, 0, 1, 1, 1, 2, 9, 2}
	c := node.Node{3, 3, 3, 3, 3, 3, 3, 2}

	assert.Equal(t, node.Merge(a, b), node.Merge(b, a))
	assert.Equal(t, node.Merge(node.Merge(a, b), c), node.Merge(a, node.Merge(b, c)))

	m := node.Merge(a, b)
	assert.Equal(t, node.Node{1, 2, 4, 5, 6, 8, 16, 2}, m)
	assert.Equal(t, a.Size()+b.Size(), m.Size())

	shifted := node.Merge(node.Uniform(100, 2), a)
	assert.Equal(t, a.Size(), shifted.Size())
	assert.Equal(t, uint64(101), shifted.FirstTerm)
}

func TestMerge_DepthMismatchPanics(t *testing.T) {
	ie := catchInvariant(t, func() {
		node.Merge(node.Uniform(0, 1), node.Uniform(0, 2))
	})
	assert.Equal(t, "merge", ie.Op)
	assert.Contains(t, ie.Error(), "depth mismatch")
}

func TestCheck(t *testing.T) {
	assert.NotPanics(t, sample.Check)

	bad := sample
	bad.FirstC = 9
	ie := catchInvariant(t, bad.Check)
	assert.Equal(t, "check", ie.Op)
}

func TestFlags(t *testing.T) {
	var f node.Flags
	f = f.With(bwt.A).With(bwt.T)
	assert.True(t, f.Has(bwt.A))
	assert.False(t, f.Has(bwt.C))
	assert.Equal(t, 2, f.Count())

	g := node.FlagOf(bwt.T) | node.FlagOf(bwt.Term)
	assert.Equal(t, "{A}", (f &^ g).String())
	assert.Equal(t, 3, (f | g).Count())
	assert.Equal(t, "{}", node.Flags(0).String())
}

func TestRanks(t *testing.T) {
	a := node.Ranks{0, 1, 2, 3, 0, 4}
	b := node.Ranks{1, 1, 0, 2, 0, 1}

	assert.Equal(t, node.Ranks{1, 2, 2, 5, 0, 5}, a.Add(b))
	assert.True(t, a.LessEq(a.Add(b)))
	assert.False(t, a.LessEq(b))
	assert.False(t, b.LessEq(a))
}

func TestFoldRanks(t *testing.T) {
	lo := node.Ranks{0, 1, 2, 3, 0, 4}
	hi := node.Ranks{1, 3, 2, 6, 0, 4}
	rs := node.FoldRanks(lo, hi)

	assert.Equal(t, uint64(2), rs[bwt.A].Len())
	assert.True(t, rs[bwt.C].Empty())
	assert.Equal(t, node.Range{Lo: 3, Hi: 6}, rs[bwt.G])

	ie := catchInvariant(t, func() { node.FoldRanks(hi, lo) })
	assert.Equal(t, "fold_ranks", ie.Op)
}

func TestRanksAt(t *testing.T) {
	idx, err := bwt.New([]byte("ANN#AA"), '#')
	require.NoError(t, err)

	r := node.RanksAt(idx, 4)
	assert.Equal(t, node.Ranks{1, 1, 0, 0, 2, 0}, r)

	noN, err := bwt.New([]byte("T#ACG"), '#')
	require.NoError(t, err)
	assert.Equal(t, node.Ranks{1, 1, 1, 1, 0, 1}, node.RanksAt(noN, 5))
}
