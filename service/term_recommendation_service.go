package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"calcdesk/domain"
	"calcdesk/locale"
)

const maxAlternatives = 3

type TermRecommendationService struct {
	loanService *LoanService
	insights    *InsightsService
	store       *Store
}

func NewTermRecommendationService(
	loanService *LoanService,
	insights *InsightsService,
	store *Store,
) *TermRecommendationService {
	return &TermRecommendationService{
		loanService: loanService,
		insights:    insights,
		store:       store,
	}
}

func validateTermRecommendation(input domain.TermRecommendationInput) error {
	if input.Amount <= 0 {
		return noResult("invalid amount")
	}
	if input.InterestRate < 0 {
		return noResult("invalid interest rate")
	}
	if input.MinTermMonths <= 0 || input.MaxTermMonths <= 0 {
		return noResult("invalid term range")
	}
	if input.MinTermMonths > input.MaxTermMonths {
		return noResult("minimum term is greater than maximum term")
	}
	if input.MaxTermMonths > MaxTermMonths {
		return noResult("maximum term exceeds the limit of %d months", MaxTermMonths)
	}
	if input.MaxTermMonths-input.MinTermMonths > MaxTermRangeMonths {
		return noResult("term range exceeds the maximum of %d months", MaxTermRangeMonths)
	}
	if input.MaxMonthlyPayment <= 0 {
		return noResult("invalid maximum monthly payment")
	}
	if _, ok := preferenceText[input.Preference]; !ok {
		return noResult("invalid preference %q", input.Preference)
	}
	return nil
}

// RecommendTerm scans every term in the requested range, drops those whose
// payment exceeds the budget and ranks the rest by preference.
func (s *TermRecommendationService) RecommendTerm(
	ctx context.Context,
	input domain.TermRecommendationInput,
) (domain.TermRecommendationResult, error) {
	input.Locale = s.store.resolveLocale(input.Locale, "")

	return run(ctx, s.store, domain.CalculatorTermRecommendation, input.Locale, input,
		func() (domain.TermRecommendationResult, error) { return s.recommend(ctx, input) },
		func(r *domain.TermRecommendationResult, id string) { r.RecordID = id })
}

func (s *TermRecommendationService) recommend(
	ctx context.Context,
	input domain.TermRecommendationInput,
) (domain.TermRecommendationResult, error) {
	if err := validateTermRecommendation(input); err != nil {
		return domain.TermRecommendationResult{}, err
	}

	recommendations := []domain.TermRecommendation{}
	for term := input.MinTermMonths; term <= input.MaxTermMonths; term++ {
		quote, err := s.loanService.Quote(domain.LoanInput{
			Amount:       input.Amount,
			InterestRate: input.InterestRate,
			TermMonths:   term,
		})
		if err != nil {
			s.store.log().Debug("skipping term", zap.Int("term", term), zap.Error(err))
			continue
		}
		if quote.MonthlyPayment > input.MaxMonthlyPayment {
			continue
		}

		recommendations = append(recommendations, domain.TermRecommendation{
			TermMonths:     term,
			MonthlyPayment: quote.MonthlyPayment,
			TotalInterest:  quote.TotalInterest,
			Score:          calculateScore(quote, input, term),
			Reason:         reasonFor(input.Preference),
		})
	}

	if len(recommendations) == 0 {
		return domain.TermRecommendationResult{}, noResult("no term fits the maximum monthly payment")
	}

	// Stable so that equal scores keep the shorter term first.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	top := recommendations[0]
	alternatives := recommendations[1:]
	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}

	tag := input.Locale
	explanation := s.insights.TermRecommendationExplanation(
		ctx, tag, input.Amount, input.InterestRate, input.Preference, top, alternatives)

	return domain.TermRecommendationResult{
		RecommendedTerm: top.TermMonths,
		Recommendations: recommendations,
		Explanation:     explanation,
		Locale:          tag,
		Display: domain.Display{
			"monthly_payment": locale.FormatCurrency(top.MonthlyPayment, tag),
			"total_interest":  locale.FormatCurrency(top.TotalInterest, tag),
			"max_payment":     locale.FormatCurrency(input.MaxMonthlyPayment, tag),
			"interest_rate":   locale.FormatPercentage(input.InterestRate, tag),
		},
	}, nil
}

// calculateScore rates a term from 0 to 10 on interest, payment and length,
// weighted by preference.
func calculateScore(
	result domain.LoanResult,
	input domain.TermRecommendationInput,
	term int,
) float64 {
	maxPossibleInterest := input.Amount * (input.InterestRate / 100) * float64(input.MaxTermMonths) / 12
	minPossibleInterest := input.Amount * (input.InterestRate / 100) * float64(input.MinTermMonths) / 12

	interestRange := maxPossibleInterest - minPossibleInterest
	floorPayment := input.Amount / float64(input.MaxTermMonths)
	paymentRange := input.MaxMonthlyPayment - floorPayment
	termRange := input.MaxTermMonths - input.MinTermMonths

	interestScore := 10.0
	paymentScore := 10.0
	termScore := 10.0

	if interestRange > 0 {
		interestScore = 10.0 * (1.0 - (result.TotalInterest-minPossibleInterest)/interestRange)
	}
	if paymentRange > 0 {
		paymentScore = 10.0 * (1.0 - (result.MonthlyPayment-floorPayment)/paymentRange)
	}
	if termRange > 0 {
		termScore = 10.0 * (1.0 - float64(term-input.MinTermMonths)/float64(termRange))
	}

	var score float64
	switch input.Preference {
	case domain.PreferenceMinimizeInterest:
		score = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
	case domain.PreferenceMinimizePayment:
		score = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
	default:
		score = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
	}
	return roundTo2Decimals(score)
}

func reasonFor(preference string) string {
	switch preference {
	case domain.PreferenceMinimizeInterest:
		return "Term chosen to minimise the total interest cost"
	case domain.PreferenceMinimizePayment:
		return "Term chosen to minimise the monthly payment"
	case domain.PreferenceBalanced:
		return "Best balance between monthly payment and total cost"
	}
	return "Recommendation based on the given parameters"
}
