package service

import (
	"context"

	"calcdesk/calc"
	"calcdesk/domain"
	"calcdesk/locale"
)

type InvestmentService struct {
	store *Store
}

func NewInvestmentService(store *Store) *InvestmentService {
	return &InvestmentService{store: store}
}

// FutureValue compounds a lump sum yearly and monthly contributions monthly.
func (s *InvestmentService) FutureValue(
	ctx context.Context,
	input domain.InvestmentInput,
) (domain.InvestmentResult, error) {
	input.Locale = s.store.resolveLocale(input.Locale, "")

	return run(ctx, s.store, domain.CalculatorFutureValue, input.Locale, input,
		func() (domain.InvestmentResult, error) {
			if input.Years > MaxInvestmentYears {
				return domain.InvestmentResult{}, noResult("years exceed the maximum of %d", MaxInvestmentYears)
			}
			if input.AnnualRate > MaxInterestRate {
				return domain.InvestmentResult{}, noResult("rate exceeds the maximum of %.2f%%", MaxInterestRate)
			}

			growth, ok := calc.FutureValue(input.Principal, input.AnnualRate/100, input.Years, input.MonthlyContribution)
			if !ok {
				return domain.InvestmentResult{}, noResult("future value cannot be computed")
			}

			tag := input.Locale
			result := domain.InvestmentResult{
				FutureValue:      roundTo2Decimals(growth.FutureValue),
				TotalContributed: roundTo2Decimals(growth.TotalContributed),
				TotalGrowth:      roundTo2Decimals(growth.TotalGrowth),
				Locale:           tag,
			}
			result.Display = domain.Display{
				"future_value":         locale.FormatCurrency(result.FutureValue, tag),
				"future_value_compact": locale.FormatCompactCurrency(result.FutureValue, tag),
				"total_contributed":    locale.FormatCurrency(result.TotalContributed, tag),
				"total_growth":         locale.FormatCurrency(result.TotalGrowth, tag),
				"annual_rate":          locale.FormatPercentage(input.AnnualRate, tag),
			}
			return result, nil
		},
		func(r *domain.InvestmentResult, id string) { r.RecordID = id })
}

type ROIService struct {
	store *Store
}

func NewROIService(store *Store) *ROIService {
	return &ROIService{store: store}
}

// Calculate reports the return on an investment. Dividends are added to the
// total return; percentages in the result are on a 0-100 scale.
func (s *ROIService) Calculate(ctx context.Context, input domain.ROIInput) (domain.ROIResult, error) {
	input.Locale = s.store.resolveLocale(input.Locale, "")

	return run(ctx, s.store, domain.CalculatorROI, input.Locale, input,
		func() (domain.ROIResult, error) {
			if input.Dividends < 0 {
				return domain.ROIResult{}, noResult("dividends cannot be negative")
			}

			roi, ok := calc.ROI(input.TotalInvestment, input.TotalReturn+input.Dividends, input.YearsHeld)
			if !ok {
				return domain.ROIResult{}, noResult("return on investment cannot be computed")
			}

			tag := input.Locale
			result := domain.ROIResult{
				Gain:   roundTo2Decimals(roi.Gain),
				ROI:    roundTo2Decimals(roi.ROI * 100),
				Locale: tag,
			}
			result.Display = domain.Display{
				"gain": locale.FormatCurrency(result.Gain, tag),
				"roi":  locale.FormatPercentage(roi.ROI*100, tag),
			}
			if roi.HasAnnualized {
				annualized := roundTo2Decimals(roi.Annualized * 100)
				result.AnnualizedROI = &annualized
				result.Display["annualized_roi"] = locale.FormatPercentage(roi.Annualized*100, tag)
			}
			return result, nil
		},
		func(r *domain.ROIResult, id string) { r.RecordID = id })
}
