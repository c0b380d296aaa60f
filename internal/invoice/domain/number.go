package domain

import (
	"math"
	"strconv"
	"strings"
)

// Number is a tolerant numeric field. Stored records written by older
// clients may carry numbers as strings ("12", "$1,200.50") or garbage;
// decoding never fails and never produces NaN, it coerces to 0 instead.
type Number float64

func (n Number) Float() float64 { return float64(n) }

func (n Number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return []byte(strconv.FormatFloat(v, 'f', -1, 64)), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		*n = 0
		return nil
	}
	raw = strings.Trim(raw, `"`)
	*n = Number(CoerceNumeric(raw))
	return nil
}

// CoerceNumeric strips non-numeric characters and parses the remainder.
// Unparsable input yields 0.
func CoerceNumeric(raw string) float64 {
	var b strings.Builder
	seenDot := false
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		case r == '-' && i == 0:
			b.WriteRune(r)
		}
	}
	parsed, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return parsed
}
