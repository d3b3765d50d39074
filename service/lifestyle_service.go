package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"calcdesk/calc"
	"calcdesk/domain"
	"calcdesk/locale"
	"calcdesk/tables"
)

type BMIService struct {
	store *Store
}

func NewBMIService(store *Store) *BMIService {
	return &BMIService{store: store}
}

var oneDecimal = locale.NumberOptions{MinFractionDigits: 1, MaxFractionDigits: 1}

// Calculate computes the body-mass index. A missing height or weight yields
// no result rather than a number.
func (s *BMIService) Calculate(ctx context.Context, input domain.BMIInput) (domain.BMIResult, error) {
	input.Locale = s.store.resolveLocale(input.Locale, "")

	return run(ctx, s.store, domain.CalculatorBMI, input.Locale, input,
		func() (domain.BMIResult, error) {
			bmi, ok := calc.BMI(input.WeightKg, input.HeightCm)
			if !ok {
				return domain.BMIResult{}, noResult("weight and height must be positive")
			}

			tag := input.Locale
			return domain.BMIResult{
				BMI:          roundTo2Decimals(bmi.BMI),
				Category:     bmi.Category,
				HealthyMinKg: roundTo2Decimals(bmi.HealthyMinKg),
				HealthyMaxKg: roundTo2Decimals(bmi.HealthyMaxKg),
				Locale:       tag,
				Display: domain.Display{
					"bmi":            locale.FormatNumber(bmi.BMI, tag, oneDecimal),
					"healthy_min_kg": locale.FormatNumber(bmi.HealthyMinKg, tag, oneDecimal) + " kg",
					"healthy_max_kg": locale.FormatNumber(bmi.HealthyMaxKg, tag, oneDecimal) + " kg",
				},
			}, nil
		},
		func(r *domain.BMIResult, id string) { r.RecordID = id })
}

type CompatibilityService struct {
	store *Store
}

func NewCompatibilityService(store *Store) *CompatibilityService {
	return &CompatibilityService{store: store}
}

// Score looks up the compatibility of two signs. Each person is given by
// sign name or by birth date.
func (s *CompatibilityService) Score(
	ctx context.Context,
	input domain.CompatibilityInput,
) (domain.CompatibilityResult, error) {
	input.Locale = s.store.resolveLocale(input.Locale, "")

	return run(ctx, s.store, domain.CalculatorCompatibility, input.Locale, input,
		func() (domain.CompatibilityResult, error) {
			tag := input.Locale
			display := domain.Display{}

			signA, err := resolveSign(input.SignA, input.BirthDateA, tag, "birth_date_a", display)
			if err != nil {
				return domain.CompatibilityResult{}, err
			}
			signB, err := resolveSign(input.SignB, input.BirthDateB, tag, "birth_date_b", display)
			if err != nil {
				return domain.CompatibilityResult{}, err
			}

			score, err := tables.Compatibility(signA, signB)
			if errors.Is(err, tables.ErrUnknownSign) {
				return domain.CompatibilityResult{}, fmt.Errorf("%w: %w", domain.ErrNoResult, err)
			}
			if err != nil {
				return domain.CompatibilityResult{}, err
			}

			display["score"] = locale.FormatPercentage(float64(score), tag)
			return domain.CompatibilityResult{
				SignA:   signA,
				SignB:   signB,
				Score:   score,
				Verdict: tables.Verdict(score),
				Locale:  tag,
				Display: display,
			}, nil
		},
		func(r *domain.CompatibilityResult, id string) { r.RecordID = id })
}

func resolveSign(sign, birthDate, tag, field string, display domain.Display) (string, error) {
	if sign = strings.ToLower(strings.TrimSpace(sign)); sign != "" {
		return sign, nil
	}
	if birthDate == "" {
		return "", noResult("a sign or birth date is required")
	}
	born, err := time.Parse(birthDateLayout, strings.TrimSpace(birthDate))
	if err != nil {
		return "", noResult("invalid birth date %q", birthDate)
	}
	display[field] = locale.FormatDate(born, tag)
	return tables.SignForDate(born), nil
}
