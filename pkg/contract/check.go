//go:build !nocontract

package contract

import "election/pkg/serrors"

// Enabled reports whether contract checks are compiled in.
const Enabled = true

// Assert panics with an ErrAssertion violation when cond is false.
func Assert(cond bool, expr string) {
	if !cond {
		raise(ErrAssertion, expr)
	}
}

// Require panics with an ErrPrecondition violation when cond is false.
func Require(cond bool, expr string) {
	if !cond {
		raise(ErrPrecondition, expr)
	}
}

// Ensure panics with an ErrPostcondition violation when cond is false.
func Ensure(cond bool, expr string) {
	if !cond {
		raise(ErrPostcondition, expr)
	}
}

// Invariant panics with an ErrInvariant violation when cond is false.
func Invariant(cond bool, expr string) {
	if !cond {
		raise(ErrInvariant, expr)
	}
}

// Invariants runs the invariant check of v.
func Invariants(v SelfValidating) {
	v.CheckInvariant()
}

// raise is always called from one of the check functions above, so the
// check site sits two frames up.
func raise(k serrors.Kind, expr string) {
	panic(newViolation(k, expr, 2))
}
