package scene2d

import "fmt"

// Error is the single error kind reported by the scene model.
// It carries a human-readable message and is returned for structural
// queries that find no matching element and for geometric preconditions
// violated by the caller. Numerical degeneracies (duplicate points,
// over-sharp miters, empty paths) are absorbed by fallback policy and
// never surface as errors.
type Error struct {
	msg string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.msg
}

// errorf builds an *Error from a format string.
func errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}
