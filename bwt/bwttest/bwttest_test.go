package bwttest_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/rskv-p/sltree/bwt/bwttest"
	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	assert.Equal(t, "T#ACG", bwttest.Transform("ACGT#"))
	assert.Equal(t, "AAA#", bwttest.Transform("AAA#"))
	assert.Equal(t, "ANN#AA", bwttest.Transform("ANANA#"))
}

func TestOracle(t *testing.T) {
	cases := []struct {
		text string
		want bwttest.Summary
	}{
		{"ACGT#", bwttest.Summary{Nodes: 1}},
		{"AAA#", bwttest.Summary{Nodes: 3, Leaves: 1, LeafExts: 2, Rho: 2}},
		{"ACAC#", bwttest.Summary{Nodes: 3, Leaves: 1, LeafExts: 2, Rho: 2}},
		{"CACAGAT#", bwttest.Summary{Nodes: 3, Leaves: 1, LeafExts: 2, Rho: 3}},
		{"ANANA#", bwttest.Summary{Nodes: 4, Leaves: 1, LeafExts: 2, Rho: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, bwttest.Oracle(tc.text, '#'))
		})
	}
}

func TestRandomDNA(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	text := bwttest.RandomDNA(r, 50, "ACG", '#')

	assert.Len(t, text, 51)
	assert.True(t, strings.HasSuffix(text, "#"))
	assert.Empty(t, strings.Trim(text[:50], "ACG"))
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, "ACACAC$", bwttest.Repeat("AC", 3, '$'))
}
