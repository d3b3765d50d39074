package calc

import "math"

// LoanSummary is the outcome of an amortizing loan.
type LoanSummary struct {
	Payment       float64
	TotalPayment  float64
	TotalInterest float64
	Periods       int
}

// AmortizingPayment returns the level monthly payment that repays principal
// over periods months at annualRate (0.065 for 6.5%):
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1),  r = annualRate / 12
//
// With a zero rate the payment is P / n.
func AmortizingPayment(principal, annualRate float64, periods int) (float64, bool) {
	if !finite(principal, annualRate) || principal <= 0 || annualRate < 0 || periods <= 0 {
		return 0, false
	}

	r := annualRate / 12
	if r == 0 {
		return principal / float64(periods), true
	}

	growth := math.Pow(1+r, float64(periods))
	payment := principal * r * growth / (growth - 1)
	if !finite(payment) {
		return 0, false
	}
	return payment, true
}

// SummarizeLoan adds totals to AmortizingPayment. TotalInterest is
// payment*n - principal.
func SummarizeLoan(principal, annualRate float64, periods int) (LoanSummary, bool) {
	payment, ok := AmortizingPayment(principal, annualRate, periods)
	if !ok {
		return LoanSummary{}, false
	}
	total := payment * float64(periods)
	return LoanSummary{
		Payment:       payment,
		TotalPayment:  total,
		TotalInterest: total - principal,
		Periods:       periods,
	}, true
}
