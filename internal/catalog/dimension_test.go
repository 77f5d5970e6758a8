package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		height float64
		width  float64
		ok     bool
	}{
		{"with_prefix", "Dimension: 60 cm x 90 cm", 60, 90, true},
		{"bare", "50 cm x 50 cm", 50, 50, true},
		{"upper_case", "Dimension: 100 CM X 150 CM", 100, 150, true},
		{"decimals", "Dimension: 45.5 cm x 30.25 cm", 45.5, 30.25, true},
		{"comma_decimal", "45,5 cm x 30 cm", 45.5, 30, true},
		{"no_spaces", "120cmx80cm", 120, 80, true},
		{"not_available", "N/A", 0, 0, false},
		{"empty", "", 0, 0, false},
		{"missing_unit", "60 x 90", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseDimension(tt.text)
			if !tt.ok {
				assert.Nil(t, d.Height)
				assert.Nil(t, d.Width)
				assert.False(t, d.Parsed())
				return
			}
			require.True(t, d.Parsed())
			assert.InDelta(t, tt.height, *d.Height, 0.0001)
			assert.InDelta(t, tt.width, *d.Width, 0.0001)
		})
	}
}
