package service

import (
	"context"
	"errors"
	"fmt"

	"calcdesk/calc"
	"calcdesk/domain"
	"calcdesk/locale"
	"calcdesk/tables"
)

// Band tables by stamp duty buyer type.
var stampDutyTables = map[string]string{
	domain.BuyerStandard:   "uk-sdlt-standard",
	domain.BuyerFirstTime:  "uk-sdlt-first-time",
	domain.BuyerAdditional: "uk-sdlt-additional",
}

type TaxService struct {
	store *Store
}

func NewTaxService(store *Store) *TaxService {
	return &TaxService{store: store}
}

// StampDuty charges the property price against the buyer's band table.
// First-time buyer relief is unavailable above its ceiling, in which case
// the standard table applies and the result carries a note.
func (s *TaxService) StampDuty(ctx context.Context, input domain.StampDutyInput) (domain.BandedResult, error) {
	if input.BuyerType == "" {
		input.BuyerType = domain.BuyerStandard
	}
	key, ok := stampDutyTables[input.BuyerType]
	if !ok {
		return domain.BandedResult{}, noResult("invalid buyer type %q", input.BuyerType)
	}

	table, err := tables.Bands(key)
	if err != nil {
		return domain.BandedResult{}, err
	}
	input.Locale = s.store.resolveLocale(input.Locale, table.Currency)

	return run(ctx, s.store, domain.CalculatorStampDuty, input.Locale, input,
		func() (domain.BandedResult, error) {
			applied, note := table, ""
			if !table.Eligible(input.Price) {
				note = fmt.Sprintf("First-time buyer relief does not apply above %s; standard rates used.",
					locale.FormatCurrency(table.EligibleUpTo, input.Locale))
				standard, err := tables.Bands(stampDutyTables[domain.BuyerStandard])
				if err != nil {
					return domain.BandedResult{}, err
				}
				applied = standard
			}

			result, err := applyTable(applied, input.Price, input.Locale)
			if err != nil {
				return domain.BandedResult{}, err
			}
			result.Note = note
			return result, nil
		},
		func(r *domain.BandedResult, id string) { r.RecordID = id })
}

// IncomeTax charges income against a named band table.
func (s *TaxService) IncomeTax(ctx context.Context, input domain.IncomeTaxInput) (domain.BandedResult, error) {
	table, err := tables.Bands(input.Table)
	if errors.Is(err, tables.ErrUnknownTable) {
		return domain.BandedResult{}, fmt.Errorf("%w: %w", domain.ErrNoResult, err)
	}
	if err != nil {
		return domain.BandedResult{}, err
	}
	input.Locale = s.store.resolveLocale(input.Locale, table.Currency)

	return run(ctx, s.store, domain.CalculatorIncomeTax, input.Locale, input,
		func() (domain.BandedResult, error) { return applyTable(table, input.Income, input.Locale) },
		func(r *domain.BandedResult, id string) { r.RecordID = id })
}

func applyTable(table tables.BandTable, value float64, tag string) (domain.BandedResult, error) {
	if value > MaxTaxableValue {
		return domain.BandedResult{}, noResult("value exceeds the maximum of %.0f", MaxTaxableValue)
	}
	total, charges, ok := calc.ApplyBands(value, table.Bands)
	if !ok {
		return domain.BandedResult{}, noResult("invalid value")
	}

	result := domain.BandedResult{
		Table:         table.Key,
		Value:         roundTo2Decimals(value),
		Total:         roundTo2Decimals(total),
		EffectiveRate: roundTo2Decimals(total / value * 100),
		Breakdown:     make([]domain.BandBreakdown, 0, len(charges)),
		Locale:        tag,
	}
	for _, c := range charges {
		row := domain.BandBreakdown{
			From:    c.Band.Lower,
			Rate:    roundTo2Decimals(c.Band.Rate * 100),
			Taxable: roundTo2Decimals(c.Taxable),
			Charge:  roundTo2Decimals(c.Charge),
		}
		if !c.Band.Unbounded() {
			upper := c.Band.Upper
			row.To = &upper
		}
		result.Breakdown = append(result.Breakdown, row)
	}

	result.Display = domain.Display{
		"value":          locale.FormatCurrency(result.Value, tag),
		"total":          locale.FormatCurrency(result.Total, tag),
		"effective_rate": locale.FormatPercentage(total/value*100, tag),
		"net":            locale.FormatCurrency(result.Value-result.Total, tag),
	}
	return result, nil
}
