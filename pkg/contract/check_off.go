//go:build nocontract

package contract

// Enabled reports whether contract checks are compiled in.
const Enabled = false

// Assert is a no-op in unchecked builds.
func Assert(bool, string) {}

// Require is a no-op in unchecked builds.
func Require(bool, string) {}

// Ensure is a no-op in unchecked builds.
func Ensure(bool, string) {}

// Invariant is a no-op in unchecked builds.
func Invariant(bool, string) {}

// Invariants is a no-op in unchecked builds.
func Invariants(SelfValidating) {}
