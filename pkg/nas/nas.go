// Package nas validates social insurance numbers (NAS) written in the grouped
// "DDD DDD DDD" form.
package nas

import (
	"regexp"
	"strings"
)

// Length is the number of digits in a NAS.
const Length = 9

var pattern = regexp.MustCompile(`^[0-9]{3} [0-9]{3} [0-9]{3}$`)

// weights are applied position by position; products of 10 or more are
// reduced by 9, which equals summing their two digits.
var weights = [Length]int{1, 2, 1, 2, 1, 2, 1, 2, 1} //nolint: gochecknoglobals

// Validate reports whether s is a well-formed, checksum-valid NAS. It accepts
// any input and never panics.
func Validate(s string) bool {
	digits, ok := Digits(s)
	if !ok {
		return false
	}

	sum := 0
	for i := 0; i < Length; i++ {
		p := int(digits[i]-'0') * weights[i]
		if p >= 10 {
			p -= 9
		}
		sum += p
	}

	return sum%10 == 0
}

// Digits returns the nine digits of s with the group separators removed. The
// second result is false when s is not in the grouped form; the checksum is
// not verified.
func Digits(s string) (string, bool) {
	if !pattern.MatchString(s) {
		return "", false
	}

	return strings.ReplaceAll(s, " ", ""), true
}
