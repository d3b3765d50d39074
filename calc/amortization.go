package calc

// YearSummary aggregates twelve monthly periods of an amortization schedule.
// The final year may hold fewer periods.
type YearSummary struct {
	Year          int
	Payment       float64
	Interest      float64
	Principal     float64
	EndingBalance float64
}

// AmortizationSchedule walks the loan one month at a time: interest accrues
// on the remaining balance, the rest of the payment retires principal, and
// the last period clears whatever balance rounding left behind.
func AmortizationSchedule(principal, annualRate float64, periods int) ([]YearSummary, bool) {
	payment, ok := AmortizingPayment(principal, annualRate, periods)
	if !ok {
		return nil, false
	}

	r := annualRate / 12
	balance := principal
	years := make([]YearSummary, 0, (periods+11)/12)

	for p := 1; p <= periods; p++ {
		interest := balance * r
		principalPart := payment - interest
		if p == periods || principalPart > balance {
			principalPart = balance
		}
		balance -= principalPart

		idx := (p - 1) / 12
		if idx == len(years) {
			years = append(years, YearSummary{Year: idx + 1})
		}
		y := &years[idx]
		y.Interest += interest
		y.Principal += principalPart
		y.Payment += interest + principalPart
		y.EndingBalance = balance
	}
	return years, true
}
