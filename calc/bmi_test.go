package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	res, ok := BMI(70, 175)
	require.True(t, ok)
	assert.InDelta(t, 22.86, res.BMI, 0.01)
	assert.Equal(t, "Normal weight", res.Category)
	assert.InDelta(t, 56.66, res.HealthyMinKg, 0.01)
	assert.InDelta(t, 76.26, res.HealthyMaxKg, 0.01)
}

func TestBMIMissingHeightHasNoResult(t *testing.T) {
	for _, h := range []float64{0, -170, math.NaN()} {
		res, ok := BMI(70, h)
		assert.False(t, ok)
		assert.Zero(t, res.BMI)
	}
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(18.4))
	assert.Equal(t, "Normal weight", BMICategory(18.5))
	assert.Equal(t, "Overweight", BMICategory(25))
	assert.Equal(t, "Obese", BMICategory(30))
}
