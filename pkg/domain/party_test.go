package domain_test

import (
	"election/pkg/domain"
	"election/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseParty(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Party
		ok   bool
	}{
		{in: "LIBERAL", want: domain.PartyLiberal, ok: true},
		{in: "liberal", want: domain.PartyLiberal, ok: true},
		{in: "bloc-quebecois", want: domain.PartyBlocQuebecois, ok: true},
		{in: " new_democratic_party ", want: domain.PartyNewDemocratic, ok: true},
		{in: "Conservative", want: domain.PartyConservative, ok: true},
		{in: "independent", want: domain.PartyIndependent, ok: true},
		{in: "green", ok: false},
		{in: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := domain.ParseParty(tc.in)
			if !tc.ok {
				require.ErrorIs(t, err, serrors.ErrInvalidArgument)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestPartiesAreValidAndLabelled(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range domain.Parties() {
		require.True(t, p.Valid())
		require.NotEqual(t, string(p), p.Label(), "party %s has no display label", p)
		require.False(t, seen[p.Label()])
		seen[p.Label()] = true
	}
	require.Len(t, seen, 5)

	require.False(t, domain.Party("").Valid())
}
