package service

import (
	"context"
	"math"
	"slices"
	"sort"

	"go.uber.org/zap"

	"calcdesk/domain"
	"calcdesk/locale"
)

type DebtExitService struct {
	insights *InsightsService
	store    *Store
}

func NewDebtExitService(insights *InsightsService, store *Store) *DebtExitService {
	return &DebtExitService{insights: insights, store: store}
}

var strategies = map[string]bool{
	domain.StrategySnowball:  true,
	domain.StrategyAvalanche: true,
	domain.StrategyCompare:   true,
}

func validateDebtExit(input domain.DebtExitInput) error {
	if len(input.Debts) == 0 {
		return noResult("no debts given")
	}
	if len(input.Debts) > MaxDebtsPerRequest {
		return noResult("number of debts exceeds the maximum of %d", MaxDebtsPerRequest)
	}
	if input.AvailableMonthlyPayment <= 0 || math.IsNaN(input.AvailableMonthlyPayment) {
		return noResult("invalid available monthly payment")
	}
	if !strategies[input.Strategy] {
		return noResult("invalid strategy %q", input.Strategy)
	}

	names := make(map[string]bool, len(input.Debts))
	totalMinimumPayments := 0.0
	for _, debt := range input.Debts {
		if debt.Name == "" {
			return noResult("debt name cannot be empty")
		}
		if names[debt.Name] {
			return noResult("duplicate debt name %q", debt.Name)
		}
		names[debt.Name] = true

		if debt.Amount <= 0 || math.IsNaN(debt.Amount) {
			return noResult("invalid amount for %s", debt.Name)
		}
		if debt.Amount > MaxDebtAmount {
			return noResult("amount for %s exceeds the maximum of %.2f", debt.Name, MaxDebtAmount)
		}
		if debt.InterestRate < 0 || debt.InterestRate > MaxInterestRate {
			return noResult("invalid interest rate for %s", debt.Name)
		}
		if debt.MinimumPayment <= 0 {
			return noResult("invalid minimum payment for %s", debt.Name)
		}
		monthlyInterest := debt.Amount * (debt.InterestRate / 100) / 12
		if debt.MinimumPayment <= monthlyInterest {
			return noResult("minimum payment for %s (%.2f) does not exceed its monthly interest (%.2f)",
				debt.Name, debt.MinimumPayment, monthlyInterest)
		}
		totalMinimumPayments += debt.MinimumPayment
	}

	if totalMinimumPayments > input.AvailableMonthlyPayment {
		return noResult("available monthly payment does not cover the minimum payments")
	}
	return nil
}

// CalculateDebtExitPlan simulates paying off every debt with the snowball or
// avalanche strategy, or runs both and keeps the cheaper one.
func (s *DebtExitService) CalculateDebtExitPlan(
	ctx context.Context,
	input domain.DebtExitInput,
) (domain.DebtExitResult, error) {
	input.Locale = s.store.resolveLocale(input.Locale, "")

	return run(ctx, s.store, domain.CalculatorDebtExit, input.Locale, input,
		func() (domain.DebtExitResult, error) { return s.plan(ctx, input) },
		func(r *domain.DebtExitResult, id string) { r.RecordID = id })
}

func (s *DebtExitService) plan(ctx context.Context, input domain.DebtExitInput) (domain.DebtExitResult, error) {
	if err := validateDebtExit(input); err != nil {
		return domain.DebtExitResult{}, err
	}

	var result domain.DebtExitResult
	if input.Strategy == domain.StrategyCompare {
		snowball, ok := s.simulate(input, domain.StrategySnowball)
		if !ok {
			return domain.DebtExitResult{}, unpaidWithinLimit()
		}
		avalanche, ok := s.simulate(input, domain.StrategyAvalanche)
		if !ok {
			return domain.DebtExitResult{}, unpaidWithinLimit()
		}

		other := avalanche
		result = snowball
		if avalanche.TotalInterestPaid < snowball.TotalInterestPaid {
			result, other = avalanche, snowball
		}

		// Savings are relative to the strategy not chosen; MonthsSaved is
		// negative when the cheaper plan takes longer.
		result.Comparison = &domain.Comparison{
			Snowball: domain.StrategyResult{
				TotalInterestPaid: snowball.TotalInterestPaid,
				MonthsToPayoff:    snowball.MonthsToPayoff,
			},
			Avalanche: domain.StrategyResult{
				TotalInterestPaid: avalanche.TotalInterestPaid,
				MonthsToPayoff:    avalanche.MonthsToPayoff,
			},
			Savings: domain.Savings{
				InterestSaved: roundTo2Decimals(other.TotalInterestPaid - result.TotalInterestPaid),
				MonthsSaved:   other.MonthsToPayoff - result.MonthsToPayoff,
			},
		}
	} else {
		var ok bool
		result, ok = s.simulate(input, input.Strategy)
		if !ok {
			return domain.DebtExitResult{}, unpaidWithinLimit()
		}
	}

	tag := input.Locale
	result.Locale = tag
	result.Explanation = s.insights.DebtStrategyExplanation(ctx, tag, result, input.Debts)
	result.Display = domain.Display{
		"total_debt":          locale.FormatCurrency(result.TotalDebt, tag),
		"total_interest_paid": locale.FormatCurrency(result.TotalInterestPaid, tag),
		"months_to_payoff":    locale.FormatNumber(float64(result.MonthsToPayoff), tag),
		"debt_free_by":        locale.FormatDate(s.store.clock().AddDate(0, result.MonthsToPayoff, 0), tag),
	}
	if c := result.Comparison; c != nil {
		result.Display["interest_saved"] = locale.FormatCurrency(c.Savings.InterestSaved, tag)
	}
	return result, nil
}

func unpaidWithinLimit() error {
	return noResult("debts are not repaid within %d months", MaxDebtPayoffMonths)
}

// simulate runs the plan month by month. Interest accrues on every open
// balance, minimums are paid in priority order, and whatever is left of the
// monthly budget goes to the open debts in that order until it runs out.
// ok is false when balances remain after MaxDebtPayoffMonths.
func (s *DebtExitService) simulate(input domain.DebtExitInput, strategy string) (domain.DebtExitResult, bool) {
	debts := make([]domain.Debt, len(input.Debts))
	copy(debts, input.Debts)

	if strategy == domain.StrategySnowball {
		sort.SliceStable(debts, func(i, j int) bool {
			return debts[i].Amount < debts[j].Amount
		})
	} else {
		sort.SliceStable(debts, func(i, j int) bool {
			return debts[i].InterestRate > debts[j].InterestRate
		})
	}

	balances := make(map[string]float64, len(debts))
	totalDebt := 0.0
	for _, debt := range debts {
		balances[debt.Name] = debt.Amount
		totalDebt += debt.Amount
	}

	plan := []domain.MonthlyPlan{}
	totalInterestPaid := 0.0
	month := 0

	for {
		month++
		available := input.AvailableMonthlyPayment
		payments := []domain.MonthlyPayment{}
		totalPaid := 0.0

		interest := make(map[string]float64, len(debts))
		for _, debt := range debts {
			if balances[debt.Name] <= 0 {
				continue
			}
			interest[debt.Name] = balances[debt.Name] * (debt.InterestRate / 100) / 12
			totalInterestPaid += interest[debt.Name]
		}

		for _, debt := range debts {
			if balances[debt.Name] <= 0 {
				continue
			}

			owed := interest[debt.Name]
			payment := math.Max(debt.MinimumPayment, owed)
			payment = math.Min(payment, balances[debt.Name]+owed)
			payment = math.Min(payment, available)
			if payment <= 0 {
				continue
			}

			balances[debt.Name] = math.Max(0, balances[debt.Name]-math.Max(0, payment-owed))
			payments = append(payments, domain.MonthlyPayment{
				DebtName:         debt.Name,
				Payment:          roundTo2Decimals(payment),
				RemainingBalance: roundTo2Decimals(balances[debt.Name]),
			})
			available -= payment
			totalPaid += payment
		}

		for _, debt := range debts {
			if available <= 0 {
				break
			}
			if balances[debt.Name] <= 0 {
				continue
			}
			extra := math.Min(available, balances[debt.Name])
			balances[debt.Name] = math.Max(0, balances[debt.Name]-extra)
			totalPaid += extra
			available -= extra

			i := slices.IndexFunc(payments, func(p domain.MonthlyPayment) bool {
				return p.DebtName == debt.Name
			})
			if i < 0 {
				payments = append(payments, domain.MonthlyPayment{DebtName: debt.Name})
				i = len(payments) - 1
			}
			payments[i].Payment = roundTo2Decimals(payments[i].Payment + extra)
			payments[i].RemainingBalance = roundTo2Decimals(balances[debt.Name])
		}

		plan = append(plan, domain.MonthlyPlan{
			Month:     month,
			Payments:  payments,
			TotalPaid: roundTo2Decimals(totalPaid),
		})

		allPaid := true
		for _, debt := range debts {
			if balances[debt.Name] > DebtBalanceTolerance {
				allPaid = false
				break
			}
		}
		if allPaid {
			break
		}

		if month >= MaxDebtPayoffMonths {
			s.store.log().Warn("debt payoff simulation hit the month limit",
				zap.String("strategy", strategy),
				zap.Int("months", MaxDebtPayoffMonths))
			return domain.DebtExitResult{}, false
		}
	}

	return domain.DebtExitResult{
		Strategy:          strategy,
		TotalDebt:         roundTo2Decimals(totalDebt),
		TotalInterestPaid: roundTo2Decimals(totalInterestPaid),
		MonthsToPayoff:    month,
		MonthlyPlan:       plan,
	}, true
}
