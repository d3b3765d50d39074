package service

const (
	MaxLoanAmount        = 1_000_000_000.0
	MaxInterestRate      = 1000.0 // percent per year
	MaxTermMonths        = 600    // 50 years
	MinTermMonths        = 1
	MaxDebtAmount        = 100_000_000.0
	MaxDebtsPerRequest   = 50
	MaxDebtPayoffMonths  = 600
	DebtBalanceTolerance = 0.01 // a balance at or below this counts as repaid

	// Widest term range the recommender scans.
	MaxTermRangeMonths = 120

	MaxInvestmentYears = 100
	MaxEPFYears        = 60
	MaxTaxableValue    = 1_000_000_000_000.0

	// Statutory EPF defaults, in percent and rupees.
	DefaultEPFInterestRate     = 8.25
	DefaultEPFEmployeeRate     = 12.0
	DefaultEPFEmployerRate     = 12.0
	DefaultEPFPensionRate      = 8.33
	DefaultEPFPensionableLimit = 15_000.0

	birthDateLayout = "2006-01-02"
)
