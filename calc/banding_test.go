package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sdltStandard = []Band{
	{Lower: 0, Upper: 250000, Rate: 0},
	{Lower: 250000, Upper: 925000, Rate: 0.05},
	{Lower: 925000, Upper: 1500000, Rate: 0.10},
	{Lower: 1500000, Upper: math.Inf(1), Rate: 0.12},
}

func TestApplyBandsStampDuty(t *testing.T) {
	duty, charges, ok := ApplyBands(400000, sdltStandard)
	require.True(t, ok)
	assert.InDelta(t, 7500, duty, 1e-9)
	require.Len(t, charges, 2)
	assert.Equal(t, 250000.0, charges[0].Taxable)
	assert.Equal(t, 150000.0, charges[1].Taxable)
}

func TestApplyBandsBoundaries(t *testing.T) {
	cases := []struct {
		value float64
		want  float64
		bands int
	}{
		{250000, 0, 1},
		{925000, 33750, 2},
		{1500000, 33750 + 57500, 3},
		{2000000, 33750 + 57500 + 60000, 4},
	}

	for _, tc := range cases {
		duty, charges, ok := ApplyBands(tc.value, sdltStandard)
		require.True(t, ok)
		assert.InDelta(t, tc.want, duty, 1e-6, "value %v", tc.value)
		assert.Len(t, charges, tc.bands, "value %v", tc.value)
	}
}

func TestApplyBandsIsContinuousAcrossBoundary(t *testing.T) {
	below, _, _ := ApplyBands(925000, sdltStandard)
	above, _, _ := ApplyBands(925001, sdltStandard)
	assert.InDelta(t, 0.10, above-below, 1e-6)
}

func TestApplyBandsInvalid(t *testing.T) {
	_, _, ok := ApplyBands(0, sdltStandard)
	assert.False(t, ok)
	_, _, ok = ApplyBands(-5, sdltStandard)
	assert.False(t, ok)
	_, _, ok = ApplyBands(math.NaN(), sdltStandard)
	assert.False(t, ok)
	_, _, ok = ApplyBands(1000, nil)
	assert.False(t, ok)
}

func TestValidateBands(t *testing.T) {
	require.NoError(t, ValidateBands(sdltStandard))

	bad := map[string][]Band{
		"empty":          nil,
		"offset start":   {{Lower: 10, Upper: math.Inf(1), Rate: 0.1}},
		"gap":            {{Lower: 0, Upper: 10, Rate: 0}, {Lower: 20, Upper: math.Inf(1), Rate: 0.1}},
		"rate above one": {{Lower: 0, Upper: math.Inf(1), Rate: 1.5}},
		"empty band":     {{Lower: 0, Upper: 0, Rate: 0.1}},
		"unbounded first": {
			{Lower: 0, Upper: math.Inf(1), Rate: 0},
			{Lower: math.Inf(1), Upper: math.Inf(1), Rate: 0.1},
		},
	}
	for name, bands := range bad {
		err := ValidateBands(bands)
		assert.True(t, errors.Is(err, ErrInvalidBands), name)
	}
}

func TestSurchargeDoesNotMutateInput(t *testing.T) {
	raised := Surcharge(sdltStandard, 0.03)
	assert.Equal(t, 0.0, sdltStandard[0].Rate)
	assert.InDelta(t, 0.03, raised[0].Rate, 1e-12)
	assert.InDelta(t, 0.08, raised[1].Rate, 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 15000.0, Clamp(30000, 15000))
	assert.Equal(t, 12000.0, Clamp(12000, 15000))
	assert.Equal(t, 30000.0, Clamp(30000, 0))
}
