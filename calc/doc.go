// Package calc contains the stateless formulas behind every calculator:
// annuity payments and amortization, compound growth, ROI, progressive
// banding, symmetric score tables, BMI and EPF projections.
//
// Every function returns ok == false instead of a number when an input is
// missing, zero where zero is meaningless, non-finite, or out of domain.
// Callers render that as "no result", never as zero.
package calc

import "math"

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Clamp caps value at ceiling. A non-positive ceiling means no cap.
func Clamp(value, ceiling float64) float64 {
	if ceiling > 0 && value > ceiling {
		return ceiling
	}
	return value
}
