package catalog

import (
	"strconv"
	"strings"
)

// ParsePrice derives the numeric value of a display price such as "Rp 2.500.000"
// by dropping every non-digit character. Text without digits parses as 0.
func ParsePrice(display string) int64 {
	var b strings.Builder
	for _, r := range display {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}

	v, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
