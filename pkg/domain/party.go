package domain

import (
	"election/pkg/serrors"
	"strings"
)

// Party is the political affiliation of a Candidate.
type Party string

const (
	// PartyBlocQuebecois is the Bloc Quebecois.
	PartyBlocQuebecois Party = "BLOC_QUEBECOIS"
	// PartyConservative is the Conservative party.
	PartyConservative Party = "CONSERVATIVE"
	// PartyIndependent marks a candidate without a party.
	PartyIndependent Party = "INDEPENDENT"
	// PartyLiberal is the Liberal party.
	PartyLiberal Party = "LIBERAL"
	// PartyNewDemocratic is the New Democratic Party.
	PartyNewDemocratic Party = "NEW_DEMOCRATIC_PARTY"
)

// Parties lists every valid party in declaration order.
func Parties() []Party {
	return []Party{
		PartyBlocQuebecois,
		PartyConservative,
		PartyIndependent,
		PartyLiberal,
		PartyNewDemocratic,
	}
}

// Valid reports whether p is one of the known parties.
func (p Party) Valid() bool {
	switch p {
	case PartyBlocQuebecois, PartyConservative, PartyIndependent, PartyLiberal, PartyNewDemocratic:
		return true
	default:
		return false
	}
}

// Label returns the display name of p as printed on a candidate record.
func (p Party) Label() string {
	switch p {
	case PartyBlocQuebecois:
		return "Bloc Quebecois"
	case PartyConservative:
		return "Parti conservateur"
	case PartyIndependent:
		return "Independant"
	case PartyLiberal:
		return "Parti liberal"
	case PartyNewDemocratic:
		return "Nouveau Parti democratique"
	default:
		return string(p)
	}
}

// ParseParty converts s to a Party. Matching ignores case and accepts dashes
// in place of underscores, so "new-democratic-party" is accepted.
func ParseParty(s string) (Party, error) {
	p := Party(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	if !p.Valid() {
		return "", serrors.With(serrors.ErrInvalidArgument, "unknown party %q", s)
	}

	return p, nil
}
