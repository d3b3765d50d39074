package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureValueLumpSum(t *testing.T) {
	res, ok := FutureValue(10000, 0.05, 10, 0)
	require.True(t, ok)
	assert.InDelta(t, 16288.95, res.FutureValue, 0.01)
	assert.Equal(t, 10000.0, res.TotalContributed)
	assert.InDelta(t, 6288.95, res.TotalGrowth, 0.01)
}

func TestFutureValueMonthlyContributions(t *testing.T) {
	res, ok := FutureValue(0, 0.06, 10, 100)
	require.True(t, ok)
	assert.InDelta(t, 16387.93, res.FutureValue, 0.01)
	assert.Equal(t, 12000.0, res.TotalContributed)
}

func TestFutureValueZeroRate(t *testing.T) {
	res, ok := FutureValue(1000, 0, 2, 50)
	require.True(t, ok)
	assert.Equal(t, 2200.0, res.FutureValue)
	assert.Equal(t, 0.0, res.TotalGrowth)
}

func TestFutureValueInvalid(t *testing.T) {
	invalid := [][4]float64{
		{0, 0.05, 10, 0},
		{-1, 0.05, 10, 100},
		{1000, 0.05, 0, 0},
		{1000, -0.05, 10, 0},
		{1000, math.NaN(), 10, 0},
		{1000, 0.05, 10, -5},
	}
	for _, in := range invalid {
		_, ok := FutureValue(in[0], in[1], in[2], in[3])
		assert.False(t, ok, "%v", in)
	}
}
