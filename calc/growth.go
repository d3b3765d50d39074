package calc

import "math"

// GrowthResult is the outcome of compounding a lump sum plus monthly
// contributions.
type GrowthResult struct {
	FutureValue      float64
	TotalContributed float64
	TotalGrowth      float64
}

// FutureValue compounds principal annually and monthlyContribution monthly:
//
//	FV = P(1+r)^t + C * ((1+r/12)^(12t) - 1) / (r/12)
//
// With a zero rate it is P + C*12t. Either principal or contribution must
// be positive.
func FutureValue(principal, annualRate, years, monthlyContribution float64) (GrowthResult, bool) {
	if !finite(principal, annualRate, years, monthlyContribution) {
		return GrowthResult{}, false
	}
	if principal < 0 || monthlyContribution < 0 || principal+monthlyContribution <= 0 {
		return GrowthResult{}, false
	}
	if years <= 0 || annualRate < 0 {
		return GrowthResult{}, false
	}

	months := years * 12
	contributed := principal + monthlyContribution*months

	var fv float64
	if annualRate == 0 {
		fv = contributed
	} else {
		rm := annualRate / 12
		fv = principal*math.Pow(1+annualRate, years) +
			monthlyContribution*((math.Pow(1+rm, months)-1)/rm)
	}
	if !finite(fv) {
		return GrowthResult{}, false
	}

	return GrowthResult{
		FutureValue:      fv,
		TotalContributed: contributed,
		TotalGrowth:      fv - contributed,
	}, true
}
