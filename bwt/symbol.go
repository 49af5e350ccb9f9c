package bwt

import "github.com/rskv-p/sltree/constant"

// Symbol is the rank of a BWT byte in the fixed order TERM < A < C < G < N < T.
type Symbol uint8

const (
	Term Symbol = iota
	A
	C
	G
	N
	T
)

// Sigma is the alphabet size, terminator included.
const Sigma = 6

// Extensions lists the symbols that can be prepended to a substring.
// The terminator never extends on the left.
var Extensions = [...]Symbol{A, C, G, N, T}

var symbolNames = [Sigma]string{"#", "A", "C", "G", "N", "T"}

func (s Symbol) String() string {
	if int(s) < Sigma {
		return symbolNames[s]
	}
	return "?"
}

// symbolOf maps a raw byte to its Symbol. ok is false for bytes outside
// the alphabet.
func symbolOf(b, term byte) (Symbol, bool) {
	switch b {
	case term:
		return Term, true
	case constant.SymbolA:
		return A, true
	case constant.SymbolC:
		return C, true
	case constant.SymbolG:
		return G, true
	case constant.SymbolN:
		return N, true
	case constant.SymbolT:
		return T, true
	}
	return 0, false
}
