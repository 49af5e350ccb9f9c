package node

import (
	"math/bits"
	"strings"

	"github.com/rskv-p/sltree/bwt"
)

// Flags is a set of symbols, one bit per symbol.
type Flags uint8

// FlagOf returns the singleton set {s}.
func FlagOf(s bwt.Symbol) Flags { return 1 << s }

func (f Flags) With(s bwt.Symbol) Flags { return f | FlagOf(s) }

func (f Flags) Has(s bwt.Symbol) bool { return f&FlagOf(s) != 0 }

func (f Flags) Count() int { return bits.OnesCount8(uint8(f)) }

func (f Flags) String() string {
	parts := make([]string, 0, bwt.Sigma)
	for s := bwt.Symbol(0); s < bwt.Sigma; s++ {
		if f.Has(s) {
			parts = append(parts, s.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}
