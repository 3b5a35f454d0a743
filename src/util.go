package aprsobj

import (
	"math"
	"strconv"
	"strings"
)

// Because sometimes it's really convenient to have C's ternary ?:
func IfThenElse[T any](x bool, a T, b T) T { //nolint:ireturn
	if x {
		return a
	}

	return b
}

func D2R(d float64) float64 {
	return d * math.Pi / 180
}

func R2D(r float64) float64 {
	return r * 180 / math.Pi
}

func FeetToMeters(x float64) float64 {
	return x * 0.3048
}

func KnotsToKmh(x float64) float64 {
	return x * 1.852
}

// atoiPrefix behaves like C atoi: leading blanks are skipped, an optional sign
// and leading digits are converted, anything after them is ignored.
// ok is false when no digits were found at all.
func atoiPrefix(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t")

	var end = 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}

	var digitsStart = end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, false
	}

	var n, err = strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}

	return n, true
}

// atofPrefix is the floating point counterpart of atoiPrefix.
func atofPrefix(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t")

	var end = 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}

	var sawDigit = false
	for end < len(s) && ((s[end] >= '0' && s[end] <= '9') || s[end] == '.') {
		if s[end] != '.' {
			sawDigit = true
		}
		end++
	}

	if !sawDigit {
		return 0, false
	}

	var f, err = strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
