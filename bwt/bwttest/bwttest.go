// Package bwttest builds small BWTs from texts and computes, by brute force
// over all substrings of the text, the suffix-link-tree statistics the
// traversal engine is expected to report.
package bwttest

import (
	"math/bits"
	"math/rand"
	"sort"
	"strings"
)

// Transform returns the BWT of text, which must end with its terminator and
// the terminator must sort before every other byte of text.
func Transform(text string) string {
	n := len(text)
	rot := make([]int, n)
	for i := range rot {
		rot[i] = i
	}
	doubled := text + text
	sort.Slice(rot, func(i, j int) bool {
		return doubled[rot[i]:rot[i]+n] < doubled[rot[j]:rot[j]+n]
	})

	var b strings.Builder
	b.Grow(n)
	for _, r := range rot {
		b.WriteByte(text[(r+n-1)%n])
	}
	return b.String()
}

// Summary holds the statistics computed from the text.
type Summary struct {
	Nodes    uint64 // root plus every non-empty right-maximal substring
	Leaves   uint64
	LeafExts uint64
	Rho      uint64
}

// Oracle enumerates every substring of text free of the terminator,
// collects the symbols following each of them and derives the summary
// from the Weiner links between right-maximal substrings.
func Oracle(text string, term byte) Summary {
	bit := func(b byte) uint8 {
		switch b {
		case term:
			return 1 << 0
		case 'A':
			return 1 << 1
		case 'C':
			return 1 << 2
		case 'G':
			return 1 << 3
		case 'N':
			return 1 << 4
		case 'T':
			return 1 << 5
		}
		panic("bwttest: unexpected byte " + string(b))
	}

	follow := make(map[string]uint8)
	for i := 0; i < len(text); i++ {
		for l := 1; i+l < len(text) && text[i+l-1] != term; l++ {
			follow[text[i:i+l]] |= bit(text[i+l])
		}
	}
	rightMaximal := func(w string) bool {
		return bits.OnesCount8(follow[w]) >= 2
	}

	s := Summary{Nodes: 1}
	for w, exts := range follow {
		if !rightMaximal(w) {
			continue
		}
		s.Nodes++

		var covered uint8
		children := 0
		for _, a := range "ACGNT" {
			aw := string(a) + w
			if rightMaximal(aw) {
				children++
				covered |= follow[aw]
			}
		}
		s.Rho += uint64(bits.OnesCount8(exts &^ covered))
		if children == 0 {
			s.Leaves++
			s.LeafExts += uint64(bits.OnesCount8(exts))
		}
	}
	return s
}

// RandomDNA returns n symbols drawn uniformly from alphabet followed by term.
func RandomDNA(r *rand.Rand, n int, alphabet string, term byte) string {
	b := make([]byte, n+1)
	for i := 0; i < n; i++ {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	b[n] = term
	return string(b)
}

// Repeat returns unit repeated k times followed by term.
func Repeat(unit string, k int, term byte) string {
	return strings.Repeat(unit, k) + string(term)
}
