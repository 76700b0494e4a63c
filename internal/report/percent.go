package report

import "math"

// Percent converts a part/whole pair into a percentage rounded to one decimal
// place. A whole of zero or less yields 0 so degenerate inputs (empty pools,
// missing totals) never divide by zero.
func Percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return math.Round(part/whole*1000) / 10
}
