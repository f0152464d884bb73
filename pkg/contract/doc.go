// Package contract implements design-by-contract checks for the election
// entities.
//
// Four violation kinds are provided, each a serrors.Kind sentinel:
//   - ErrAssertion: an internal assertion failed
//   - ErrPrecondition: a caller-supplied argument broke the operation contract
//   - ErrPostcondition: the operation did not leave the state it promised
//   - ErrInvariant: an object is no longer self-consistent
//
// Assert, Require, Ensure and Invariant panic with a *Violation when their
// condition is false. Public operations defer Capture so the violation comes
// back to their caller as an ordinary error and no partial state escapes.
//
// # Build modes
//
// Checks are enabled by default. Building with the nocontract tag
//
//	go build -tags nocontract ./...
//
// turns Enabled into the constant false and every check into an empty
// function. Call sites wrap non-trivial predicates in `if contract.Enabled`
// so the compiler drops them along with the location and expression capture.
package contract
