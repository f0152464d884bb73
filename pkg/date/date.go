// Package date provides the calendar date value used for birth dates. A Date
// is immutable and compared by value; its zero value is not a valid date.
package date

import (
	"election/pkg/serrors"
	"fmt"
	"time"
)

const (
	// MinYear is the first supported year.
	MinYear = 1
	// MaxYear is the last supported year.
	MaxYear = 9999

	isoLayout = "2006-01-02"
)

// ErrInvalidDate is returned when day, month and year do not name a real day.
var ErrInvalidDate = serrors.NewKind("INVALID_DATE")

var weekdays = [...]string{"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"} //nolint:gochecknoglobals

var months = [...]string{ //nolint:gochecknoglobals
	"janvier", "fevrier", "mars", "avril", "mai", "juin",
	"juillet", "aout", "septembre", "octobre", "novembre", "decembre",
}

// Date is a day of the Gregorian calendar.
type Date struct {
	day   int
	month int
	year  int
}

// Valid reports whether day, month and year form an existing date between
// MinYear and MaxYear.
func Valid(day, month, year int) bool {
	if year < MinYear || year > MaxYear || month < 1 || month > 12 || day < 1 {
		return false
	}

	return day <= daysIn(month, year)
}

func daysIn(month, year int) int {
	switch month {
	case 2:
		if isLeap(year) {
			return 29
		}

		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// New returns the date for day, month and year, or an error wrapping both
// ErrInvalidDate and serrors.ErrInvalidArgument.
func New(day, month, year int) (Date, error) {
	if !Valid(day, month, year) {
		return Date{}, serrors.Wrap(serrors.ErrInvalidArgument, ErrInvalidDate,
			"%04d-%02d-%02d is not a calendar date", year, month, day)
	}

	return Date{day: day, month: month, year: year}, nil
}

// Must is like New but panics on an invalid date. Use it for literals.
func Must(day, month, year int) Date {
	d, err := New(day, month, year)
	if err != nil {
		panic(err)
	}

	return d
}

// Parse reads a date in YYYY-MM-DD form.
func Parse(s string) (Date, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Date{}, serrors.Wrap(serrors.ErrInvalidArgument, err, "could not parse date %q", s)
	}

	return New(t.Day(), int(t.Month()), t.Year())
}

// Day returns the day of month, 1 based.
func (d Date) Day() int { return d.day }

// Month returns the month, 1 based.
func (d Date) Month() int { return d.month }

// Year returns the year.
func (d Date) Year() int { return d.year }

// Valid reports whether d is a real date. The zero Date is not.
func (d Date) Valid() bool { return Valid(d.day, d.month, d.year) }

// Equal reports whether d and other name the same day.
func (d Date) Equal(other Date) bool { return d == other }

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC).Weekday()
}

// Formatted renders d in long French form, e.g. "Lundi le 10 janvier 1972".
// An invalid date renders as its ISO form.
func (d Date) Formatted() string {
	if !d.Valid() {
		return d.String()
	}

	return fmt.Sprintf("%s le %d %s %d", weekdays[d.Weekday()], d.day, months[d.month-1], d.year)
}

// String renders d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}
