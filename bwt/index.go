// Package bwt implements the rank index over the Burrows-Wheeler Transform
// of a DNA collection. The index answers rank queries for the six symbols
// of the alphabet and exposes the first-occurrence offsets of each symbol
// (the C array of an FM index). It never keeps a suffix array.
package bwt

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rskv-p/sltree/constant"
)

// RankIndex is the narrow view of the index used by the navigator.
type RankIndex interface {
	// Len returns the BWT length, terminator rows included.
	Len() uint64
	// Rank returns the number of occurrences of s in BWT[0,pos).
	Rank(pos uint64, s Symbol) uint64
	// C returns the number of BWT symbols smaller than s.
	C(s Symbol) uint64
	// HasN reports whether N occurs in the BWT.
	HasN() bool
}

var _ RankIndex = (*Index)(nil)

// Index is an occurrence table sampled every rate positions.
type Index struct {
	codes  []Symbol
	rate   uint64
	occ    []uint64 // occ[k*Sigma+s] = rank(k*rate, s)
	counts [Sigma]uint64
	c      [Sigma]uint64
	term   byte
	hasN   bool
}

// Option configures index construction.
type Option func(*Index)

// WithSampleRate sets the distance between occurrence checkpoints.
// Non-positive values are ignored.
func WithSampleRate(rate int) Option {
	return func(x *Index) {
		if rate > 0 {
			x.rate = uint64(rate)
		}
	}
}

// ValidateTerminator rejects terminators that collide with a sequence symbol.
func ValidateTerminator(term byte) error {
	if constant.IsDNASymbol(term) {
		return fmt.Errorf("%w: '%c'", constant.ErrInvalidTerminator, term)
	}
	return nil
}

// Load reads a BWT file and indexes it. The terminator is validated before
// the file is opened.
func Load(path string, term byte, opts ...Option) (*Index, error) {
	if err := ValidateTerminator(term); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bwt: read %s: %w", path, err)
	}
	return New(data, term, opts...)
}

// New indexes an in-memory BWT. A single trailing newline is ignored.
func New(data []byte, term byte, opts ...Option) (*Index, error) {
	if err := ValidateTerminator(term); err != nil {
		return nil, err
	}
	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))
	if len(data) == 0 {
		return nil, constant.ErrEmptyBWT
	}

	x := &Index{
		rate: constant.DefaultSampleRate,
		term: term,
	}
	for _, opt := range opts {
		opt(x)
	}

	x.codes = make([]Symbol, len(data))
	for i, b := range data {
		s, ok := symbolOf(b, term)
		if !ok {
			return nil, fmt.Errorf("%w: byte 0x%02x at offset %d", constant.ErrInvalidSymbol, b, i)
		}
		x.codes[i] = s
		x.counts[s]++
	}
	if x.counts[Term] == 0 {
		return nil, fmt.Errorf("%w: '%c'", constant.ErrMissingTerminator, term)
	}
	x.hasN = x.counts[N] > 0

	for s := 1; s < Sigma; s++ {
		x.c[s] = x.c[s-1] + x.counts[s-1]
	}
	x.buildCheckpoints()
	return x, nil
}

func (x *Index) buildCheckpoints() {
	n := uint64(len(x.codes))
	blocks := n/x.rate + 1
	x.occ = make([]uint64, blocks*Sigma)

	var running [Sigma]uint64
	for i := uint64(0); i < n; i++ {
		if i%x.rate == 0 {
			copy(x.occ[(i/x.rate)*Sigma:], running[:])
		}
		running[x.codes[i]]++
	}
	if n%x.rate == 0 {
		copy(x.occ[(n/x.rate)*Sigma:], running[:])
	}
}

func (x *Index) Len() uint64 { return uint64(len(x.codes)) }

func (x *Index) C(s Symbol) uint64 { return x.c[s] }

func (x *Index) HasN() bool { return x.hasN }

// Terminator returns the raw terminator byte.
func (x *Index) Terminator() byte { return x.term }

// Count returns the total number of occurrences of s.
func (x *Index) Count(s Symbol) uint64 { return x.counts[s] }

func (x *Index) Rank(pos uint64, s Symbol) uint64 {
	if pos > uint64(len(x.codes)) {
		panic(fmt.Sprintf("bwt: rank position %d beyond length %d", pos, len(x.codes)))
	}
	k := pos / x.rate
	r := x.occ[k*Sigma+uint64(s)]
	for i := k * x.rate; i < pos; i++ {
		if x.codes[i] == s {
			r++
		}
	}
	return r
}
