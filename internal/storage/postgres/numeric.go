package postgres

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// parseNumeric converts a NUMERIC column read as text. NULL becomes NaN,
// which the table engine treats as a missing value.
func parseNumeric(value *string) (float64, error) {
	if value == nil {
		return math.NaN(), nil
	}
	d, err := decimal.NewFromString(*value)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric %q: %w", *value, err)
	}
	return d.InexactFloat64(), nil
}

// formatNumeric renders a float for a NUMERIC parameter without exponent
// notation. Non-finite values are written as NULL.
func formatNumeric(value float64) *string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	text := decimal.NewFromFloat(value).String()
	return &text
}
