package domain

import (
	"election/pkg/contract"
	"election/pkg/date"
	"strings"
)

const (
	candidateHeader    = "Candidat"
	candidateSeparator = "------------------------------------"
)

// Candidate is a Person running under a party label. The party is fixed at
// creation.
type Candidate struct {
	Person

	party Party
}

// NewCandidate creates a Candidate. The person fields are checked exactly as
// in NewPerson; party must be one of Parties().
func NewCandidate(
	id, firstName, lastName, address string,
	birthDate date.Date,
	party Party) (c *Candidate, err error) {
	defer contract.Capture(&err)

	p := newPerson(id, firstName, lastName, address, birthDate)

	if contract.Enabled {
		contract.Require(party.Valid(), "party.Valid()")
	}

	cand := &Candidate{Person: *p, party: party}

	if contract.Enabled {
		contract.Ensure(cand.party == party, "cand.party == party")
	}
	contract.Invariants(cand)

	return cand, nil
}

// MustCandidate is like NewCandidate but panics on a contract violation.
func MustCandidate(id, firstName, lastName, address string, birthDate date.Date, party Party) *Candidate {
	c, err := NewCandidate(id, firstName, lastName, address, birthDate, party)
	if err != nil {
		panic(err)
	}

	return c
}

// Party returns the party the candidate runs for.
func (c *Candidate) Party() Party { return c.party }

// SetAddress replaces the address and re-checks the candidate invariant. On
// any violation the previous address is kept.
func (c *Candidate) SetAddress(address string) (err error) {
	defer c.keepAddressOnError(c.address, &err)
	defer contract.Capture(&err)

	c.setAddress(address)
	contract.Invariants(c)

	return nil
}

// Equal reports whether c and other hold the same person fields and party.
func (c *Candidate) Equal(other *Candidate) bool {
	if c == nil || other == nil {
		return c == other
	}

	return c.Person.Equal(&other.Person) && c.party == other.party
}

// Format renders a "Candidat" header and separator, the person block, then
// the party line.
func (c *Candidate) Format() string {
	var b strings.Builder
	b.WriteString(candidateHeader + "\n")
	b.WriteString(candidateSeparator + "\n")
	b.WriteString(c.Person.Format())
	writeField(&b, "Parti politique", c.party.Label())

	return b.String()
}

// CheckInvariant implements contract.SelfValidating. It checks the person
// invariant first.
func (c *Candidate) CheckInvariant() {
	c.Person.CheckInvariant()
	contract.Invariant(c.party.Valid(), "c.party.Valid()")
}
