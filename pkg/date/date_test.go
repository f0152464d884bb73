package date_test

import (
	"election/pkg/date"
	"election/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	cases := []struct {
		name             string
		day, month, year int
		ok               bool
	}{
		{name: "ordinary day", day: 10, month: 1, year: 1972, ok: true},
		{name: "thirty first of april", day: 31, month: 4, year: 2000, ok: false},
		{name: "leap day in leap year", day: 29, month: 2, year: 2024, ok: true},
		{name: "leap day in common year", day: 29, month: 2, year: 2023, ok: false},
		{name: "leap day in century year", day: 29, month: 2, year: 1900, ok: false},
		{name: "leap day in quadricentennial", day: 29, month: 2, year: 2000, ok: true},
		{name: "month zero", day: 1, month: 0, year: 2000, ok: false},
		{name: "month thirteen", day: 1, month: 13, year: 2000, ok: false},
		{name: "day zero", day: 0, month: 5, year: 2000, ok: false},
		{name: "year zero", day: 1, month: 1, year: 0, ok: false},
		{name: "last supported day", day: 31, month: 12, year: 9999, ok: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.ok, date.Valid(tc.day, tc.month, tc.year))

			_, err := date.New(tc.day, tc.month, tc.year)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, date.ErrInvalidDate)
				require.ErrorIs(t, err, serrors.ErrInvalidArgument)
			}
		})
	}
}

func TestZeroDateIsInvalid(t *testing.T) {
	var d date.Date
	require.False(t, d.Valid())
}

func TestAccessorsAndEquality(t *testing.T) {
	d := date.Must(10, 1, 1972)
	require.Equal(t, 10, d.Day())
	require.Equal(t, 1, d.Month())
	require.Equal(t, 1972, d.Year())

	require.True(t, d.Equal(date.Must(10, 1, 1972)))
	require.False(t, d.Equal(date.Must(11, 1, 1972)))
}

func TestFormatted(t *testing.T) {
	require.Equal(t, "Lundi le 10 janvier 1972", date.Must(10, 1, 1972).Formatted())
	require.Equal(t, "Jeudi le 29 fevrier 2024", date.Must(29, 2, 2024).Formatted())
	require.Equal(t, "Samedi le 15 aout 1987", date.Must(15, 8, 1987).Formatted())
	require.Equal(t, "1972-01-10", date.Must(10, 1, 1972).String())
}

func TestParse(t *testing.T) {
	d, err := date.Parse("1987-08-15")
	require.NoError(t, err)
	require.True(t, d.Equal(date.Must(15, 8, 1987)))

	_, err = date.Parse("15/08/1987")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)

	_, err = date.Parse("2023-02-29")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
}

func TestMustPanicsOnInvalidDate(t *testing.T) {
	require.Panics(t, func() { date.Must(31, 2, 2020) })
}
