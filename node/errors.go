package node

import "fmt"

// InvariantError is raised, as a panic, when the node algebra or the
// navigator is used against its contract. It signals a programming error.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("node invariant violated in %s: %s", e.Op, e.Msg)
}

// Violate panics with an InvariantError.
func Violate(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
