package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"calcdesk/domain"
	"calcdesk/locale"
)

const (
	DefaultInsightsURL   = "https://api.openai.com/v1/chat/completions"
	DefaultInsightsModel = "gpt-4o-mini"
)

// InsightsConfig configures the optional explanation backend. Any
// OpenAI-compatible chat completions endpoint works; an empty APIKey
// disables the call and only template text is produced.
type InsightsConfig struct {
	APIKey    string
	URL       string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// InsightsService writes plain-language explanations of results. It never
// changes a number: every failure falls back to template text.
type InsightsService struct {
	cfg        InsightsConfig
	httpClient *http.Client
	logger     *zap.Logger
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewInsightsService(cfg InsightsConfig, logger *zap.Logger) *InsightsService {
	if cfg.URL == "" {
		cfg.URL = DefaultInsightsURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultInsightsModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 300
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightsService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Enabled reports whether a remote model will be asked.
func (s *InsightsService) Enabled() bool {
	return s != nil && s.cfg.APIKey != ""
}

var preferenceText = map[string]string{
	domain.PreferenceMinimizeInterest: "minimise the total interest paid",
	domain.PreferenceMinimizePayment:  "minimise the monthly payment",
	domain.PreferenceBalanced:         "balance the monthly payment against total cost",
}

// TermRecommendationExplanation explains why top was picked for a loan of
// amount at rate (percent per year).
func (s *InsightsService) TermRecommendationExplanation(
	ctx context.Context,
	tag string,
	amount, rate float64,
	preference string,
	top domain.TermRecommendation,
	alternatives []domain.TermRecommendation,
) string {
	fallback := termFallback(tag, preference, top)
	if !s.Enabled() {
		return fallback
	}

	goal := preferenceText[preference]
	if goal == "" {
		goal = preference
	}

	var alt strings.Builder
	for _, a := range alternatives {
		fmt.Fprintf(&alt, "- %d months: %s per month, %s total interest\n",
			a.TermMonths,
			locale.FormatCurrency(a.MonthlyPayment, tag),
			locale.FormatCurrency(a.TotalInterest, tag))
	}

	prompt := fmt.Sprintf(`Explain this loan term recommendation clearly.

LOAN:
- Amount: %s
- Annual interest rate: %s
- Recommended term: %d months (%.1f years)
- Monthly payment: %s
- Total interest: %s
- Borrower goal: %s

OTHER TERMS CONSIDERED:
%s
Write 3-4 sentences on why this term suits the goal and what the trade-off
between monthly payment and total interest is. Quote the amounts exactly as
given.`,
		locale.FormatCurrency(amount, tag),
		locale.FormatPercentage(rate, tag),
		top.TermMonths, float64(top.TermMonths)/12,
		locale.FormatCurrency(top.MonthlyPayment, tag),
		locale.FormatCurrency(top.TotalInterest, tag),
		goal,
		alt.String())

	explanation, err := s.complete(ctx, prompt)
	if err != nil {
		s.logger.Warn("insights call failed, using template",
			zap.String("calculator", domain.CalculatorTermRecommendation),
			zap.Error(err))
		return fallback
	}
	return explanation
}

// DebtStrategyExplanation explains a debt exit plan.
func (s *InsightsService) DebtStrategyExplanation(
	ctx context.Context,
	tag string,
	result domain.DebtExitResult,
	debts []domain.Debt,
) string {
	fallback := debtFallback(tag, result)
	if !s.Enabled() {
		return fallback
	}

	var list strings.Builder
	for _, d := range debts {
		fmt.Fprintf(&list, "- %s: %s at %s per year\n",
			d.Name, locale.FormatCurrency(d.Amount, tag), locale.FormatPercentage(d.InterestRate, tag))
	}

	comparison := ""
	if c := result.Comparison; c != nil {
		comparison = fmt.Sprintf(`
COMPARISON:
- Snowball: %s interest, %d months
- Avalanche: %s interest, %d months
- Saved with the chosen strategy: %s and %d months`,
			locale.FormatCurrency(c.Snowball.TotalInterestPaid, tag), c.Snowball.MonthsToPayoff,
			locale.FormatCurrency(c.Avalanche.TotalInterestPaid, tag), c.Avalanche.MonthsToPayoff,
			locale.FormatCurrency(c.Savings.InterestSaved, tag), c.Savings.MonthsSaved)
	}

	prompt := fmt.Sprintf(`Explain this debt payoff plan clearly and encouragingly.

STRATEGY: %s
%s

SUMMARY:
- Total debt: %s
- Total interest: %s
- Months to be debt free: %d (%.1f years)

DEBTS:
%s%s

Write 4-5 sentences covering how the strategy works, why it suits these
debts, and one practical tip for sticking to it. Quote the amounts exactly
as given.`,
		strategyName(result.Strategy), strategyDescription(result.Strategy),
		locale.FormatCurrency(result.TotalDebt, tag),
		locale.FormatCurrency(result.TotalInterestPaid, tag),
		result.MonthsToPayoff, float64(result.MonthsToPayoff)/12,
		list.String(), comparison)

	explanation, err := s.complete(ctx, prompt)
	if err != nil {
		s.logger.Warn("insights call failed, using template",
			zap.String("calculator", domain.CalculatorDebtExit),
			zap.Error(err))
		return fallback
	}
	return explanation
}

func (s *InsightsService) complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are a personal finance educator. You explain loan and debt calculations in plain English, you are precise with numbers, and you never invent figures that were not given to you.",
			},
			{Role: "user", Content: prompt},
		},
		MaxTokens: s.cfg.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty completion")
	}
	return text, nil
}

func termFallback(tag, preference string, top domain.TermRecommendation) string {
	payment := locale.FormatCurrency(top.MonthlyPayment, tag)
	interest := locale.FormatCurrency(top.TotalInterest, tag)

	switch preference {
	case domain.PreferenceMinimizeInterest:
		return fmt.Sprintf("A %d month term keeps total interest down to %s, with a monthly payment of %s. Choose it if lowering the overall cost of the loan matters most.",
			top.TermMonths, interest, payment)
	case domain.PreferenceMinimizePayment:
		return fmt.Sprintf("A %d month term brings the monthly payment down to %s, leaving more room in your monthly budget. Total interest over the loan is %s.",
			top.TermMonths, payment, interest)
	default:
		return fmt.Sprintf("A %d month term balances a monthly payment of %s against %s of total interest.",
			top.TermMonths, payment, interest)
	}
}

func debtFallback(tag string, result domain.DebtExitResult) string {
	return fmt.Sprintf("With the %s strategy you pay %s in interest and clear every debt in %d months (%.1f years). %s",
		strategyName(result.Strategy),
		locale.FormatCurrency(result.TotalInterestPaid, tag),
		result.MonthsToPayoff, float64(result.MonthsToPayoff)/12,
		strategyTip(result.Strategy))
}

func strategyName(strategy string) string {
	if strategy == domain.StrategyAvalanche {
		return "avalanche"
	}
	return "snowball"
}

func strategyDescription(strategy string) string {
	if strategy == domain.StrategyAvalanche {
		return "Debts with the highest interest rate are paid off first, which minimises total interest."
	}
	return "The smallest debts are paid off first, so progress shows early."
}

func strategyTip(strategy string) string {
	if strategy == domain.StrategyAvalanche {
		return "Keep sending every spare amount to the most expensive debt; the savings compound as each one closes."
	}
	return "Each debt you close frees its payment for the next one, so keep the total monthly amount the same until the end."
}
