package assert

import "github.com/oomph-ac/pawn/oerror"

// IsTrue panics with an error built from message and args if ok is false. It guards invariants whose
// violation is an integration error rather than something the caller could recover from.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
