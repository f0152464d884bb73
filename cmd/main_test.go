package main

import (
	"bytes"
	"context"
	"election/pkg/contract"
	"election/pkg/date"
	"election/pkg/domain"
	"election/pkg/serrors"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("OUTPUT_COLOR", "never")

	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func personArgs(extra ...string) []string {
	return append([]string{
		"--nas", "046 454 286",
		"--first-name", "Jean",
		"--last-name", "Tremblay",
		"--address", "1 rue Principale",
		"--birth-date", "1972-01-10",
	}, extra...)
}

func TestNASValidate(t *testing.T) {
	out, err := execute(t, "nas", "validate", "046 454 286", "130 692 544")
	require.NoError(t, err)
	require.Equal(t, "046 454 286: valid\n130 692 544: valid\n", out)
}

func TestNASValidateWithNoColorSet(t *testing.T) {
	t.Setenv("NO_COLOR", "yes")

	out, err := execute(t, "nas", "validate", "046 454 286")
	require.NoError(t, err)
	require.Equal(t, "046 454 286: valid\n", out)
}

func TestNASValidateReportsInvalid(t *testing.T) {
	out, err := execute(t, "nas", "validate", "046 454 286", "123 456 789")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
	require.Contains(t, out, "123 456 789: invalid")
}

func TestNASValidateRequiresArgs(t *testing.T) {
	_, err := execute(t, "nas", "validate")
	require.Error(t, err)
}

func TestPersonText(t *testing.T) {
	out, err := execute(t, append([]string{"person"}, personArgs()...)...)
	require.NoError(t, err)

	want := domain.MustPerson("046 454 286", "Jean", "Tremblay", "1 rue Principale", date.Must(10, 1, 1972))
	require.Equal(t, want.Format(), out)
}

func TestPersonNewAddress(t *testing.T) {
	out, err := execute(t, append([]string{"person", "--format", "json"}, personArgs("--new-address", "123 New St")...)...)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "123 New St", got["address"])
}

func TestPersonBadBirthDate(t *testing.T) {
	_, err := execute(t, "person",
		"--nas", "046 454 286", "--first-name", "Jean", "--last-name", "Tremblay",
		"--address", "1 rue Principale", "--birth-date", "1972-02-30")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
}

func TestPersonContractViolation(t *testing.T) {
	if !contract.Enabled {
		t.Skip("contract checks are compiled out")
	}

	out, err := execute(t, "person",
		"--nas", "123 456 789", "--first-name", "Jean", "--last-name", "Tremblay",
		"--address", "1 rue Principale", "--birth-date", "1972-01-10")
	require.ErrorIs(t, err, contract.ErrPrecondition)
	require.Contains(t, out, "Message    : PRECONDITION ERROR\n")
	require.Contains(t, out, "Expression : ValidateNAS(id)\n")
}

func TestCandidateJSON(t *testing.T) {
	out, err := execute(t, append([]string{"candidate", "--format", "json", "--party", "liberal"}, personArgs()...)...)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "candidate", got["kind"])
	require.Equal(t, "LIBERAL", got["party"])
}

func TestCandidateUnknownParty(t *testing.T) {
	_, err := execute(t, append([]string{"candidate", "--party", "green"}, personArgs()...)...)
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
}

func TestUnknownFormat(t *testing.T) {
	_, err := execute(t, append([]string{"person", "--format", "xml"}, personArgs()...)...)
	require.Error(t, err)
}
