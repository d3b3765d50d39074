package domain

type LoanInput struct {
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"` // annual, percent
	TermMonths   int     `json:"term_months"`

	IncludeSchedule bool `json:"include_schedule,omitempty"`

	// Mortgage interest deduction: the yearly interest (capped by
	// DeductibleInterestCap when positive) is multiplied by MarginalTaxRate
	// (percent). Zero disables it.
	MarginalTaxRate       float64 `json:"marginal_tax_rate,omitempty"`
	DeductibleInterestCap float64 `json:"deductible_interest_cap,omitempty"`

	Locale string `json:"locale,omitempty"`
}

type LoanResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`

	Schedule          []LoanYear `json:"schedule,omitempty"`
	TotalTaxSavings   float64    `json:"total_tax_savings,omitempty"`
	EffectiveInterest float64    `json:"effective_interest,omitempty"`

	Locale   string  `json:"locale"`
	Display  Display `json:"display"`
	RecordID string  `json:"record_id,omitempty"`
}

type LoanYear struct {
	Year          int     `json:"year"`
	Payment       float64 `json:"payment"`
	Interest      float64 `json:"interest"`
	Principal     float64 `json:"principal"`
	EndingBalance float64 `json:"ending_balance"`
	TaxSavings    float64 `json:"tax_savings,omitempty"`
}
