package tables

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcdesk/calc"
)

func TestLoad(t *testing.T) {
	require.NoError(t, Load())
	assert.Equal(t, []string{
		"uk-sdlt-standard",
		"uk-sdlt-first-time",
		"uk-sdlt-additional",
		"uk-income-tax",
		"in-income-tax-new",
	}, BandKeys())
}

func TestStandardStampDutyOnFourHundredThousand(t *testing.T) {
	table, err := Bands("uk-sdlt-standard")
	require.NoError(t, err)
	assert.Equal(t, "GBP", table.Currency)

	duty, _, ok := calc.ApplyBands(400000, table.Bands)
	require.True(t, ok)
	assert.InDelta(t, 7500, duty, 1e-9)
}

func TestFirstTimeBuyerRelief(t *testing.T) {
	table, err := Bands("uk-sdlt-first-time")
	require.NoError(t, err)

	assert.True(t, table.Eligible(625000))
	assert.False(t, table.Eligible(625001))

	duty, _, ok := calc.ApplyBands(500000, table.Bands)
	require.True(t, ok)
	assert.InDelta(t, 3750, duty, 1e-9)
}

func TestAdditionalPropertySurcharge(t *testing.T) {
	table, err := Bands("uk-sdlt-additional")
	require.NoError(t, err)
	require.Len(t, table.Bands, 4)

	duty, _, ok := calc.ApplyBands(400000, table.Bands)
	require.True(t, ok)
	assert.InDelta(t, 7500+12000, duty, 1e-6)
}

func TestIncomeTaxTables(t *testing.T) {
	uk, err := Bands("uk-income-tax")
	require.NoError(t, err)
	tax, _, ok := calc.ApplyBands(60000, uk.Bands)
	require.True(t, ok)
	assert.InDelta(t, 7540+3892, tax, 1e-6)

	in, err := Bands("in-income-tax-new")
	require.NoError(t, err)
	tax, _, ok = calc.ApplyBands(1000000, in.Bands)
	require.True(t, ok)
	assert.InDelta(t, 20000+30000, tax, 1e-6)
}

func TestBandsReturnsCopy(t *testing.T) {
	first, err := Bands("uk-sdlt-standard")
	require.NoError(t, err)
	first.Bands[0].Rate = 0.99

	second, err := Bands("uk-sdlt-standard")
	require.NoError(t, err)
	assert.Equal(t, 0.0, second.Bands[0].Rate)
}

func TestUnknownTable(t *testing.T) {
	_, err := Bands("mars-land-tax")
	assert.True(t, errors.Is(err, ErrUnknownTable))
}

func TestCompatibilityIsSymmetric(t *testing.T) {
	for _, a := range Signs() {
		for _, b := range Signs() {
			ab, err := Compatibility(a, b)
			require.NoError(t, err)
			ba, err := Compatibility(b, a)
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "%s/%s", a, b)
			assert.True(t, ab >= 0 && ab <= 100)
		}
	}
}

func TestCompatibilityNormalizesNames(t *testing.T) {
	want, err := Compatibility("aries", "leo")
	require.NoError(t, err)
	got, err := Compatibility(" Leo ", "ARIES")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCompatibilityUnknownSign(t *testing.T) {
	_, err := Compatibility("aries", "ophiuchus")
	assert.True(t, errors.Is(err, ErrUnknownSign))
}

func TestVerdict(t *testing.T) {
	assert.Equal(t, "Excellent match", Verdict(91))
	assert.Equal(t, "Good match", Verdict(70))
	assert.Equal(t, "Moderate match", Verdict(55))
	assert.Equal(t, "Challenging match", Verdict(12))
}

func TestSignForDate(t *testing.T) {
	cases := map[string]string{
		"2000-01-05": "capricorn",
		"2000-01-20": "aquarius",
		"2000-03-21": "aries",
		"2000-04-19": "aries",
		"2000-07-23": "leo",
		"2000-12-21": "sagittarius",
		"2000-12-31": "capricorn",
	}
	for date, want := range cases {
		d, err := time.Parse("2006-01-02", date)
		require.NoError(t, err)
		assert.Equal(t, want, SignForDate(d), date)
	}
	assert.Len(t, Signs(), 12)
}
