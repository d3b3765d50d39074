package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortizingPaymentThirtyYearMortgage(t *testing.T) {
	payment, ok := AmortizingPayment(300000, 0.065, 360)
	require.True(t, ok)
	assert.InDelta(t, 1896.20, payment, 0.01)
}

func TestAmortizingPaymentZeroRateIsExactDivision(t *testing.T) {
	payment, ok := AmortizingPayment(1200, 0, 12)
	require.True(t, ok)
	assert.Equal(t, 100.0, payment)
}

func TestSummarizeLoanTotalsAreConsistent(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		periods   int
	}{
		{300000, 0.065, 360},
		{10000, 0.12, 24},
		{5000, 0, 10},
		{250000, 0.0399, 300},
	}

	for _, tc := range cases {
		s, ok := SummarizeLoan(tc.principal, tc.rate, tc.periods)
		require.True(t, ok)
		assert.InDelta(t, tc.principal+s.TotalInterest, s.Payment*float64(tc.periods), 1e-6)
		assert.GreaterOrEqual(t, s.TotalInterest, -1e-9)
		assert.Equal(t, tc.periods, s.Periods)
	}
}

func TestAmortizingPaymentRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name      string
		principal float64
		rate      float64
		periods   int
	}{
		{"zero principal", 0, 0.05, 12},
		{"negative principal", -100, 0.05, 12},
		{"negative rate", 1000, -0.01, 12},
		{"zero term", 1000, 0.05, 0},
		{"nan principal", math.NaN(), 0.05, 12},
		{"infinite rate", 1000, math.Inf(1), 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := AmortizingPayment(tc.principal, tc.rate, tc.periods)
			assert.False(t, ok)
			_, ok = SummarizeLoan(tc.principal, tc.rate, tc.periods)
			assert.False(t, ok)
		})
	}
}
