package compare

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Currency formats an amount as whole dollars with comma grouping,
// e.g. 1234567.8 -> "$1,234,568".
func Currency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + group(strconv.FormatInt(int64(math.Round(v)), 10))
}

// SignedCurrency is Currency with an explicit leading sign for deltas.
func SignedCurrency(v float64) string {
	if v >= 0 {
		return "+" + Currency(v)
	}
	return Currency(v)
}

// Hours formats a capacity or effort value, trimming a trailing ".0".
func Hours(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s + " h"
}

// SignedHours is Hours with an explicit leading sign for deltas.
func SignedHours(v float64) string {
	if v >= 0 {
		return "+" + Hours(v)
	}
	return "-" + Hours(-v)
}

// Date formats a timestamp as an ISO calendar date.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// group inserts thousands separators into a string of digits.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
