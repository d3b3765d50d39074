package service

import (
	"context"

	"calcdesk/calc"
	"calcdesk/domain"
	"calcdesk/locale"
)

type EPFService struct {
	store *Store
}

func NewEPFService(store *Store) *EPFService {
	return &EPFService{store: store}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// Project estimates an Employees' Provident Fund corpus. Zero rates select
// the statutory defaults.
func (s *EPFService) Project(ctx context.Context, input domain.EPFInput) (domain.EPFResult, error) {
	input.Locale = s.store.resolveLocale(input.Locale, "INR")
	input.InterestRate = orDefault(input.InterestRate, DefaultEPFInterestRate)
	input.EmployeeRate = orDefault(input.EmployeeRate, DefaultEPFEmployeeRate)

	return run(ctx, s.store, domain.CalculatorEPF, input.Locale, input,
		func() (domain.EPFResult, error) {
			if input.Years > MaxEPFYears {
				return domain.EPFResult{}, noResult("years exceed the maximum of %d", MaxEPFYears)
			}
			if input.EmployeeRate > 100 || input.InterestRate > 100 || input.AnnualIncrement > 100 {
				return domain.EPFResult{}, noResult("rates must not exceed 100%%")
			}

			projection, ok := calc.EPFProjection(calc.EPFParams{
				MonthlyBasic:       input.MonthlyBasic,
				Years:              input.Years,
				AnnualInterestRate: input.InterestRate / 100,
				AnnualIncrement:    input.AnnualIncrement / 100,
				EmployeeRate:       input.EmployeeRate / 100,
				EmployerRate:       DefaultEPFEmployerRate / 100,
				PensionRate:        DefaultEPFPensionRate / 100,
				PensionableCeiling: DefaultEPFPensionableLimit,
				OpeningBalance:     input.CurrentBalance,
			})
			if !ok {
				return domain.EPFResult{}, noResult("projection cannot be computed")
			}

			tag := input.Locale
			result := domain.EPFResult{
				Corpus:        roundTo2Decimals(projection.Corpus),
				TotalEmployee: roundTo2Decimals(projection.TotalEmployee),
				TotalEmployer: roundTo2Decimals(projection.TotalEmployer),
				TotalPension:  roundTo2Decimals(projection.TotalPension),
				TotalInterest: roundTo2Decimals(projection.TotalInterest),
				Years:         make([]domain.EPFYear, 0, len(projection.Years)),
				Locale:        tag,
			}
			for _, y := range projection.Years {
				result.Years = append(result.Years, domain.EPFYear{
					Year:                 y.Year,
					MonthlyBasic:         roundTo2Decimals(y.MonthlyBasic),
					EmployeeContribution: roundTo2Decimals(y.EmployeeContribution),
					EmployerContribution: roundTo2Decimals(y.EmployerContribution),
					PensionContribution:  roundTo2Decimals(y.PensionContribution),
					Interest:             roundTo2Decimals(y.Interest),
					ClosingBalance:       roundTo2Decimals(y.ClosingBalance),
				})
			}
			result.Display = domain.Display{
				"corpus":         locale.FormatCurrency(result.Corpus, tag),
				"corpus_compact": locale.FormatCompactCurrency(result.Corpus, tag),
				"total_employee": locale.FormatCurrency(result.TotalEmployee, tag),
				"total_employer": locale.FormatCurrency(result.TotalEmployer, tag),
				"total_pension":  locale.FormatCurrency(result.TotalPension, tag),
				"total_interest": locale.FormatCurrency(result.TotalInterest, tag),
				"interest_rate":  locale.FormatPercentage(input.InterestRate, tag),
			}
			return result, nil
		},
		func(r *domain.EPFResult, id string) { r.RecordID = id })
}
