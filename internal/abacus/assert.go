package abacus

import "fmt"

// InvariantError is the panic value raised when a caller breaks an input
// contract in a build with the sorobandebug tag.
type InvariantError struct {
	Op    string
	Value int
	Want  string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("abacus: %s: value %d outside %s", e.Op, e.Value, e.Want)
}

func assertRange(op string, v, lo, hi int) {
	if debugAsserts && (v < lo || v > hi) {
		panic(&InvariantError{Op: op, Value: v, Want: fmt.Sprintf("[%d,%d]", lo, hi)})
	}
}
