package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// dimensionPattern matches "<number> cm x <number> cm" anywhere in the text, so a
// decorative prefix like "Dimension:" is skipped.
var dimensionPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*cm\s*[x×]\s*(\d+(?:[.,]\d+)?)\s*cm`)

// Dimension is the physical size extracted from display text.
// A nil field means the text could not be parsed.
type Dimension struct {
	Height *float64 `json:"height"`
	Width  *float64 `json:"width"`
}

// Parsed reports whether both axes were extracted.
func (d Dimension) Parsed() bool {
	return d.Height != nil && d.Width != nil
}

// ParseDimension extracts height and width (in cm) from free text such as
// "Dimension: 60 cm x 90 cm". Unparseable text yields an empty Dimension.
func ParseDimension(text string) Dimension {
	m := dimensionPattern.FindStringSubmatch(text)
	if m == nil {
		return Dimension{}
	}

	h, errH := parseDecimal(m[1])
	w, errW := parseDecimal(m[2])
	if errH != nil || errW != nil {
		return Dimension{}
	}
	return Dimension{Height: &h, Width: &w}
}

func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}
