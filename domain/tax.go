package domain

// Stamp duty buyer types.
const (
	BuyerStandard   = "standard"
	BuyerFirstTime  = "first_time"
	BuyerAdditional = "additional"
)

type StampDutyInput struct {
	Price     float64 `json:"price"`
	BuyerType string  `json:"buyer_type,omitempty"`
	Locale    string  `json:"locale,omitempty"`
}

type IncomeTaxInput struct {
	Income float64 `json:"income"`
	Table  string  `json:"table"`
	Locale string  `json:"locale,omitempty"`
}

type BandBreakdown struct {
	From    float64  `json:"from"`
	To      *float64 `json:"to,omitempty"`
	Rate    float64  `json:"rate"` // percent
	Taxable float64  `json:"taxable"`
	Charge  float64  `json:"charge"`
}

type BandedResult struct {
	Table         string          `json:"table"`
	Value         float64         `json:"value"`
	Total         float64         `json:"total"`
	EffectiveRate float64         `json:"effective_rate"` // percent
	Breakdown     []BandBreakdown `json:"breakdown"`
	Note          string          `json:"note,omitempty"`

	Locale   string  `json:"locale"`
	Display  Display `json:"display"`
	RecordID string  `json:"record_id,omitempty"`
}

// EPFInput rates are percentages; zero selects the statutory default.
type EPFInput struct {
	MonthlyBasic    float64 `json:"monthly_basic"`
	Years           int     `json:"years"`
	InterestRate    float64 `json:"interest_rate,omitempty"`
	AnnualIncrement float64 `json:"annual_increment,omitempty"`
	EmployeeRate    float64 `json:"employee_rate,omitempty"`
	CurrentBalance  float64 `json:"current_balance,omitempty"`
	Locale          string  `json:"locale,omitempty"`
}

type EPFYear struct {
	Year                 int     `json:"year"`
	MonthlyBasic         float64 `json:"monthly_basic"`
	EmployeeContribution float64 `json:"employee_contribution"`
	EmployerContribution float64 `json:"employer_contribution"`
	PensionContribution  float64 `json:"pension_contribution"`
	Interest             float64 `json:"interest"`
	ClosingBalance       float64 `json:"closing_balance"`
}

type EPFResult struct {
	Corpus        float64   `json:"corpus"`
	TotalEmployee float64   `json:"total_employee"`
	TotalEmployer float64   `json:"total_employer"`
	TotalPension  float64   `json:"total_pension"`
	TotalInterest float64   `json:"total_interest"`
	Years         []EPFYear `json:"years"`

	Locale   string  `json:"locale"`
	Display  Display `json:"display"`
	RecordID string  `json:"record_id,omitempty"`
}
