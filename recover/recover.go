// file: sltree/recover/recover.go
package recover

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/rskv-p/sltree/logger"
)

const (
	tagService  = "service"
	tagFunction = "function"
	tagStack    = "stack"
)

// ----------------------------------------------------
// Panic reporting
// ----------------------------------------------------

// RecoverExplicit logs a recovered panic with its origin and stack.
func RecoverExplicit(service, function string, recovered any) {
	if recovered == nil {
		return
	}
	l := logger.New("recover")
	l.Error().
		Str(tagService, service).
		Str(tagFunction, function).
		Str(tagStack, string(debug.Stack())).
		Msgf("panic: %v", recovered)
}

// ----------------------------------------------------
// Universal wrapper
// ----------------------------------------------------

// RecoverableFunc is a context-aware function that may panic.
type RecoverableFunc func(ctx context.Context) error

// ErrPanic marks errors produced from a recovered panic.
var ErrPanic = errors.New("panic recovered")

// WrapRecover wraps a context-aware function with panic protection. A
// recovered error value stays reachable through errors.As.
func WrapRecover(service, function string, f RecoverableFunc) RecoverableFunc {
	return func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				RecoverExplicit(service, function, r)
				if e, ok := r.(error); ok {
					err = fmt.Errorf("%w in %s.%s: %w", ErrPanic, service, function, e)
					return
				}
				err = fmt.Errorf("%w in %s.%s: %v", ErrPanic, service, function, r)
			}
		}()
		return f(ctx)
	}
}
