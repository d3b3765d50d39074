package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"calcdesk/domain"
)

var topTerm = domain.TermRecommendation{TermMonths: 24, MonthlyPayment: 470.73, TotalInterest: 1297.63}

func TestInsights_Disabled(t *testing.T) {
	insights := NewInsightsService(InsightsConfig{}, nil)
	assert.False(t, insights.Enabled())

	text := insights.TermRecommendationExplanation(context.Background(), "en-GB", 10000, 12,
		domain.PreferenceMinimizeInterest, topTerm, nil)
	assert.Contains(t, text, "24 month term")
	assert.Contains(t, text, "£1,297.63")
}

func TestInsights_NilServiceFallsBack(t *testing.T) {
	var insights *InsightsService

	text := insights.DebtStrategyExplanation(context.Background(), "en-US", domain.DebtExitResult{
		Strategy:          domain.StrategyAvalanche,
		TotalInterestPaid: 769.51,
		MonthsToPayoff:    18,
	}, nil)
	assert.Contains(t, text, "avalanche")
	assert.Contains(t, text, "$769.51")
	assert.Contains(t, text, "18 months")
}

func TestInsights_RemoteCompletion(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Pick 24 months.  "}}]}`))
	}))
	defer server.Close()

	insights := NewInsightsService(InsightsConfig{APIKey: "test-key", URL: server.URL}, zap.NewNop())
	require.True(t, insights.Enabled())

	text := insights.TermRecommendationExplanation(context.Background(), "en-IN", 1000000, 9,
		domain.PreferenceBalanced, topTerm, []domain.TermRecommendation{{TermMonths: 36, MonthlyPayment: 332.14}})

	assert.Equal(t, "Pick 24 months.", text)
	assert.Equal(t, DefaultInsightsModel, got.Model)
	require.Len(t, got.Messages, 2)
	assert.Contains(t, got.Messages[1].Content, "₹10,00,000.00")
	assert.Contains(t, got.Messages[1].Content, "36 months")
}

func TestInsights_RemoteFailureFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	insights := NewInsightsService(InsightsConfig{APIKey: "k", URL: server.URL}, zap.NewNop())

	text := insights.DebtStrategyExplanation(context.Background(), "en-US", domain.DebtExitResult{
		Strategy:          domain.StrategySnowball,
		TotalInterestPaid: 975.95,
		MonthsToPayoff:    18,
	}, testDebts)
	assert.Contains(t, text, "snowball")
	assert.Contains(t, text, "$975.95")
}

func TestInsights_EmptyChoicesFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	insights := NewInsightsService(InsightsConfig{APIKey: "k", URL: server.URL}, nil)
	text := insights.TermRecommendationExplanation(context.Background(), "en-US", 10000, 12,
		domain.PreferenceMinimizePayment, topTerm, nil)
	assert.Contains(t, text, "brings the monthly payment down to $470.73")
}
