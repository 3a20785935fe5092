package utils

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrNotNumeric = errors.New("value has no leading integer")
	ErrOutOfRange = errors.New("value out of range")
)

// ParseLeadingInt reads an optionally signed integer prefix of s, ignoring
// surrounding whitespace, and truncates at the first non-digit: "12.7" is 12,
// " 42kcal" is 42. Product calorie/protein fields arrive as raw form strings
// and are totalled with exactly this parse. Digit runs that would overflow
// int are rejected rather than wrapped.
func ParseLeadingInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 {
			return 0, ErrOutOfRange
		}
		n = n*10 + d
		i++
	}
	if i == start {
		return 0, ErrNotNumeric
	}
	if neg {
		n = -n
	}
	return n, nil
}
