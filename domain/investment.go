package domain

type InvestmentInput struct {
	Principal           float64 `json:"principal"`
	AnnualRate          float64 `json:"annual_rate"` // percent
	Years               float64 `json:"years"`
	MonthlyContribution float64 `json:"monthly_contribution,omitempty"`
	Locale              string  `json:"locale,omitempty"`
}

type InvestmentResult struct {
	FutureValue      float64 `json:"future_value"`
	TotalContributed float64 `json:"total_contributed"`
	TotalGrowth      float64 `json:"total_growth"`

	Locale   string  `json:"locale"`
	Display  Display `json:"display"`
	RecordID string  `json:"record_id,omitempty"`
}

type ROIInput struct {
	TotalInvestment float64 `json:"total_investment"`
	TotalReturn     float64 `json:"total_return"`
	Dividends       float64 `json:"dividends,omitempty"`
	YearsHeld       float64 `json:"years_held,omitempty"`
	Locale          string  `json:"locale,omitempty"`
}

// ROIResult percentages are on a 0-100 scale. AnnualizedROI is nil when no
// positive holding period was given.
type ROIResult struct {
	Gain          float64  `json:"gain"`
	ROI           float64  `json:"roi"`
	AnnualizedROI *float64 `json:"annualized_roi,omitempty"`

	Locale   string  `json:"locale"`
	Display  Display `json:"display"`
	RecordID string  `json:"record_id,omitempty"`
}
