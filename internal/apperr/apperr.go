// Package apperr carries failures across each tool's orchestration
// boundary. A panic recovered there is wrapped in a DetailedError so the
// caller can print the message and keep the stack for diagnostics.
package apperr

import (
	"fmt"
	"runtime/debug"
)

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string { return e.Err.Error() }

func (e *DetailedError) Unwrap() error { return e.Err }

// RecoverTo converts an in-flight panic into a *DetailedError assigned to
// errp. Deferred at the top of a tool's run function:
//
//	func run(c *cfg) (err error) {
//		defer apperr.RecoverTo(&err)
//		...
//	}
//
// A clean return or an ordinary error passes through untouched.
func RecoverTo(errp *error) {
	if r := recover(); r != nil {
		*errp = &DetailedError{
			Err:   fmt.Errorf("internal panic: %v", r),
			Stack: debug.Stack(),
		}
	}
}
