package oerror

import "fmt"

// PawnError is the error type returned by the controller packages.
type PawnError struct {
	Err string
}

// New returns a PawnError formatted from the message and arguments passed.
func New(message string, args ...interface{}) *PawnError {
	if len(args) == 0 {
		return &PawnError{Err: message}
	}
	return &PawnError{Err: fmt.Sprintf(message, args...)}
}

func (e *PawnError) Error() string {
	return e.Err
}
