package service

import (
	"context"
	"math"

	"calcdesk/calc"
	"calcdesk/domain"
	"calcdesk/locale"
)

type LoanService struct {
	store *Store
}

// NewLoanService creates a new LoanService backed by store.
func NewLoanService(store *Store) *LoanService {
	return &LoanService{store: store}
}

func validateLoan(input domain.LoanInput) error {
	if input.Amount <= 0 || math.IsNaN(input.Amount) {
		return noResult("invalid amount")
	}
	if input.Amount > MaxLoanAmount {
		return noResult("amount exceeds the maximum of %.2f", MaxLoanAmount)
	}
	if input.InterestRate < 0 || math.IsNaN(input.InterestRate) {
		return noResult("invalid interest rate")
	}
	if input.InterestRate > MaxInterestRate {
		return noResult("interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if input.TermMonths < MinTermMonths {
		return noResult("invalid term")
	}
	if input.TermMonths > MaxTermMonths {
		return noResult("term exceeds the maximum of %d months", MaxTermMonths)
	}
	if input.MarginalTaxRate < 0 || input.MarginalTaxRate > 100 {
		return noResult("marginal tax rate must be between 0 and 100")
	}
	if input.DeductibleInterestCap < 0 {
		return noResult("deductible interest cap cannot be negative")
	}
	return nil
}

// Quote computes payment and totals only. It neither formats, caches nor
// records anything.
func (s *LoanService) Quote(input domain.LoanInput) (domain.LoanResult, error) {
	if err := validateLoan(input); err != nil {
		return domain.LoanResult{}, err
	}

	summary, ok := calc.SummarizeLoan(input.Amount, input.InterestRate/100, input.TermMonths)
	if !ok {
		return domain.LoanResult{}, noResult("loan cannot be computed")
	}

	return domain.LoanResult{
		MonthlyPayment: roundTo2Decimals(summary.Payment),
		TotalPayment:   roundTo2Decimals(summary.TotalPayment),
		TotalInterest:  roundTo2Decimals(summary.TotalInterest),
	}, nil
}

// CalculateLoan calculates the loan details based on the input parameters.
func (s *LoanService) CalculateLoan(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanResult, error) {
	input.Locale = s.store.resolveLocale(input.Locale, "")

	return run(ctx, s.store, domain.CalculatorLoan, input.Locale, input,
		func() (domain.LoanResult, error) { return s.calculate(input) },
		func(r *domain.LoanResult, id string) { r.RecordID = id })
}

func (s *LoanService) calculate(input domain.LoanInput) (domain.LoanResult, error) {
	result, err := s.Quote(input)
	if err != nil {
		return domain.LoanResult{}, err
	}
	result.Locale = input.Locale

	deducting := input.MarginalTaxRate > 0
	if input.IncludeSchedule || deducting {
		years, ok := calc.AmortizationSchedule(input.Amount, input.InterestRate/100, input.TermMonths)
		if !ok {
			return domain.LoanResult{}, noResult("schedule cannot be computed")
		}

		schedule := make([]domain.LoanYear, 0, len(years))
		savings := 0.0
		for _, y := range years {
			row := domain.LoanYear{
				Year:          y.Year,
				Payment:       roundTo2Decimals(y.Payment),
				Interest:      roundTo2Decimals(y.Interest),
				Principal:     roundTo2Decimals(y.Principal),
				EndingBalance: roundTo2Decimals(y.EndingBalance),
			}
			if deducting {
				deductible := y.Interest
				if input.DeductibleInterestCap > 0 {
					deductible = calc.Clamp(deductible, input.DeductibleInterestCap)
				}
				yearSavings := deductible * input.MarginalTaxRate / 100
				savings += yearSavings
				row.TaxSavings = roundTo2Decimals(yearSavings)
			}
			schedule = append(schedule, row)
		}

		if input.IncludeSchedule {
			result.Schedule = schedule
		}
		if deducting {
			result.TotalTaxSavings = roundTo2Decimals(savings)
			result.EffectiveInterest = roundTo2Decimals(result.TotalInterest - savings)
		}
	}

	tag := input.Locale
	result.Display = domain.Display{
		"monthly_payment": locale.FormatCurrency(result.MonthlyPayment, tag),
		"total_payment":   locale.FormatCurrency(result.TotalPayment, tag),
		"total_interest":  locale.FormatCurrency(result.TotalInterest, tag),
		"interest_rate":   locale.FormatPercentage(input.InterestRate, tag),
		"amount":          locale.FormatCompactCurrency(input.Amount, tag),
	}
	if deducting {
		result.Display["total_tax_savings"] = locale.FormatCurrency(result.TotalTaxSavings, tag)
		result.Display["effective_interest"] = locale.FormatCurrency(result.EffectiveInterest, tag)
	}
	return result, nil
}
