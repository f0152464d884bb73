// Package domain contains the election entities: Person, the base identity
// record, and Candidate, a Person running for a political party.
//
// Entities are created fully formed through NewPerson and NewCandidate and
// guard themselves with contract checks. Preconditions are verified on
// construction and on SetAddress, postconditions confirm the stored state,
// and the entity invariant runs at the end of every mutating operation.
// Contract failures come back as errors matching contract.ErrPrecondition,
// contract.ErrPostcondition or contract.ErrInvariant.
package domain
