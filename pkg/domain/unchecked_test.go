//go:build nocontract

package domain_test

import (
	"election/pkg/date"
	"election/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUncheckedBuildAcceptsViolations(t *testing.T) {
	birth := date.Must(10, 1, 1972)

	p, err := domain.NewPerson("123 456 789", "", "", "", date.Date{})
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Empty(t, p.FirstName())

	p, err = domain.NewPerson("046 454 286", "Jean", "Tremblay", "1 rue Principale", birth)
	require.NoError(t, err)
	require.NoError(t, p.SetAddress(""))
	require.Empty(t, p.Address())

	c, err := domain.NewCandidate("", "", "", "", date.Date{}, domain.Party("GREEN"))
	require.NoError(t, err)
	require.Equal(t, domain.Party("GREEN"), c.Party())
}
