// file: sltree/constant/constant.go
package constant

import "errors"

// ----------------------------------------------------
// Standard errors
// ----------------------------------------------------

var (
	ErrMissingInput       = errors.New("input BWT path is required")
	ErrInvalidTerminator  = errors.New("terminator cannot be one of A, C, G, T, N")
	ErrInvalidSampleRate  = errors.New("sample rate must be positive")
	ErrInvalidSymbol      = errors.New("symbol outside alphabet {A,C,G,T,N,terminator}")
	ErrEmptyBWT           = errors.New("BWT is empty")
	ErrMissingTerminator  = errors.New("BWT does not contain the terminator")
	ErrRhoMismatch        = errors.New("bounded and naive rho disagree")
	ErrUnknownBatchAction = errors.New("unknown batch action")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidLogFormat   = errors.New("log format must be console or json")
	ErrUnknownConfigKey   = errors.New("unknown config key")
)

// ----------------------------------------------------
// Alphabet
// ----------------------------------------------------

const (
	SymbolA byte = 'A'
	SymbolC byte = 'C'
	SymbolG byte = 'G'
	SymbolN byte = 'N'
	SymbolT byte = 'T'
)

// ----------------------------------------------------
// Defaults
// ----------------------------------------------------

const (
	DefaultTerminator = '#' // 35
	DefaultSampleRate = 64
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "console"
	EnvPrefix         = "SLT_"
	EnvConfigPath     = "SLT_CONFIG"
)

// ----------------------------------------------------
// Config keys
// ----------------------------------------------------

const (
	KeyInput      = "input"
	KeyTerminator = "terminator"
	KeyLogLevel   = "log_level"
	KeyLogFormat  = "log_format"
	KeyLogFile    = "log_file"
	KeyProgress   = "progress"
	KeySampleRate = "sample_rate"
	KeyCheck      = "check"
)

// IsDNASymbol reports whether b is one of the five sequence symbols.
func IsDNASymbol(b byte) bool {
	switch b {
	case SymbolA, SymbolC, SymbolG, SymbolN, SymbolT:
		return true
	}
	return false
}
