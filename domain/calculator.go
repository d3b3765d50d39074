package domain

// Calculator names, used as record and cache namespaces.
const (
	CalculatorLoan               = "loan"
	CalculatorTermRecommendation = "term-recommendation"
	CalculatorDebtExit           = "debt-exit"
	CalculatorFutureValue        = "future-value"
	CalculatorROI                = "roi"
	CalculatorStampDuty          = "stamp-duty"
	CalculatorIncomeTax          = "income-tax"
	CalculatorEPF                = "epf"
	CalculatorBMI                = "bmi"
	CalculatorCompatibility      = "compatibility"
)

// Display maps result field names to locale-formatted strings.
type Display map[string]string
