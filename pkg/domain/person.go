package domain

import (
	"election/pkg/contract"
	"election/pkg/date"
	"election/pkg/nas"
	"fmt"
	"strings"
)

// Record is the behaviour shared by Person and Candidate.
type Record interface {
	contract.SelfValidating

	ID() string
	FirstName() string
	LastName() string
	Address() string
	BirthDate() date.Date
	SetAddress(address string) error
	Format() string
}

var (
	_ Record = (*Person)(nil)
	_ Record = (*Candidate)(nil)
)

// Person is an identity record. Only the address may change once the person
// is created.
type Person struct {
	id        string
	firstName string
	lastName  string
	address   string
	birthDate date.Date
}

// NewPerson creates a Person. It fails with contract.ErrPrecondition when id
// is empty or not a valid NAS, when firstName or address is empty, or when
// birthDate is not a valid date. An empty lastName is caught by the
// invariant and fails with contract.ErrInvariant.
func NewPerson(id, firstName, lastName, address string, birthDate date.Date) (p *Person, err error) {
	defer contract.Capture(&err)

	return newPerson(id, firstName, lastName, address, birthDate), nil
}

// MustPerson is like NewPerson but panics on a contract violation.
func MustPerson(id, firstName, lastName, address string, birthDate date.Date) *Person {
	p, err := NewPerson(id, firstName, lastName, address, birthDate)
	if err != nil {
		panic(err)
	}

	return p
}

func newPerson(id, firstName, lastName, address string, birthDate date.Date) *Person {
	if contract.Enabled {
		contract.Require(id != "", `id != ""`)
		contract.Require(ValidateNAS(id), "ValidateNAS(id)")
		contract.Require(firstName != "", `firstName != ""`)
		contract.Require(address != "", `address != ""`)
		contract.Require(birthDate.Valid(), "birthDate.Valid()")
	}

	p := &Person{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		address:   address,
		birthDate: birthDate,
	}

	if contract.Enabled {
		contract.Ensure(p.id == id, "p.id == id")
		contract.Ensure(p.firstName == firstName, "p.firstName == firstName")
		contract.Ensure(p.lastName == lastName, "p.lastName == lastName")
		contract.Ensure(p.address == address, "p.address == address")
		contract.Ensure(p.birthDate.Equal(birthDate), "p.birthDate.Equal(birthDate)")
	}
	contract.Invariants(p)

	return p
}

// ValidateNAS reports whether id is a well-formed, checksum-valid NAS.
func ValidateNAS(id string) bool {
	return nas.Validate(id)
}

// ID returns the NAS of the person.
func (p *Person) ID() string { return p.id }

// FirstName returns the first name.
func (p *Person) FirstName() string { return p.firstName }

// LastName returns the last name.
func (p *Person) LastName() string { return p.lastName }

// Address returns the current address.
func (p *Person) Address() string { return p.address }

// BirthDate returns the date of birth.
func (p *Person) BirthDate() date.Date { return p.birthDate }

// SetAddress replaces the address. It fails with contract.ErrPrecondition
// when address is empty. On any violation the previous address is kept.
func (p *Person) SetAddress(address string) (err error) {
	defer p.keepAddressOnError(p.address, &err)
	defer contract.Capture(&err)

	p.setAddress(address)
	contract.Invariants(p)

	return nil
}

// setAddress assigns the address under its pre and postcondition. The
// caller runs its own invariant afterwards.
func (p *Person) setAddress(address string) {
	if contract.Enabled {
		contract.Require(address != "", `address != ""`)
	}

	p.address = address

	if contract.Enabled {
		contract.Ensure(p.address == address, "p.address == address")
	}
}

// keepAddressOnError restores previous once *err is set. It must be deferred
// before contract.Capture so that it runs after it.
func (p *Person) keepAddressOnError(previous string, err *error) {
	if *err != nil {
		p.address = previous
	}
}

// Equal reports whether p and other hold the same five fields.
func (p *Person) Equal(other *Person) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.id == other.id &&
		p.firstName == other.firstName &&
		p.lastName == other.lastName &&
		p.address == other.address &&
		p.birthDate.Equal(other.birthDate)
}

// Format renders the person as a labelled multi-line block.
func (p *Person) Format() string {
	var b strings.Builder
	writeField(&b, "NAS", p.id)
	writeField(&b, "Prenom", p.firstName)
	writeField(&b, "Nom", p.lastName)
	writeField(&b, "Date de naissance", p.birthDate.Formatted())
	writeField(&b, "Adresse", p.address)

	return b.String()
}

// CheckInvariant implements contract.SelfValidating.
func (p *Person) CheckInvariant() {
	contract.Invariant(ValidateNAS(p.id), "ValidateNAS(p.id)")
	contract.Invariant(p.id != "", `p.id != ""`)
	contract.Invariant(p.firstName != "", `p.firstName != ""`)
	contract.Invariant(p.lastName != "", `p.lastName != ""`)
	contract.Invariant(p.address != "", `p.address != ""`)
	contract.Invariant(p.birthDate.Valid(), "p.birthDate.Valid()")
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-17s : %s\n", label, value)
}
