package calc

import "math"

// ROIResult holds ratios, not percentages: 0.2 is a 20% return.
type ROIResult struct {
	Gain          float64
	ROI           float64
	Annualized    float64
	HasAnnualized bool
}

// ROI compares what came back with what went in. The annualized figure
// (R/I)^(1/years) - 1 is only produced for a positive holding period.
func ROI(totalInvestment, totalReturn, years float64) (ROIResult, bool) {
	if !finite(totalInvestment, totalReturn, years) || totalInvestment <= 0 || totalReturn < 0 {
		return ROIResult{}, false
	}

	res := ROIResult{
		Gain: totalReturn - totalInvestment,
		ROI:  (totalReturn - totalInvestment) / totalInvestment,
	}
	if years > 0 {
		annualized := math.Pow(totalReturn/totalInvestment, 1/years) - 1
		if finite(annualized) {
			res.Annualized = annualized
			res.HasAnnualized = true
		}
	}
	return res, true
}
