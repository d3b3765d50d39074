package locale

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		tag    string
		want   string
	}{
		{1234567.89, "en-IN", "₹12,34,567.89"},
		{1234567.89, "en-US", "$1,234,567.89"},
		{1234.5, "en-GB", "£1,234.50"},
		{0, "en-AU", "$0.00"},
		{999.999, "en-US", "$1,000.00"},
		{-1234.56, "en-US", "-$1,234.56"},
		{100000, "en-IN", "₹1,00,000.00"},
		{12.345, "en-GB", "£12.35"},
		{50, "xx-YY", "$50.00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCurrency(tc.amount, tc.tag), "%v in %s", tc.amount, tc.tag)
	}
}

func TestFormatCurrencyNonFiniteIsNotZero(t *testing.T) {
	assert.Equal(t, "NaN", FormatCurrency(math.NaN(), "en-US"))
	assert.Equal(t, "∞", FormatCurrency(math.Inf(1), "en-US"))
	assert.Equal(t, "-∞", FormatCurrency(math.Inf(-1), "en-US"))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1,234.57", FormatNumber(1234.567, "en-US"))
	assert.Equal(t, "1,234", FormatNumber(1234, "en-US"))
	assert.Equal(t, "1,234.5", FormatNumber(1234.5, "en-GB"))
	assert.Equal(t, "12,34,567", FormatNumber(1234567, "en-IN"))
	assert.Equal(t, "-5", FormatNumber(-5, "en-US"))
	assert.Equal(t, "1,234.000", FormatNumber(1234, "en-US", NumberOptions{MinFractionDigits: 3, MaxFractionDigits: 3}))
	assert.Equal(t, "3", FormatNumber(3.4, "en-US", NumberOptions{MaxFractionDigits: 0}))
	assert.Equal(t, "0.1", FormatNumber(0.1, "en-US", NumberOptions{MinFractionDigits: 1, MaxFractionDigits: 4}))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "0.0%", FormatPercentage(0, "en-US"))
	assert.Equal(t, "0.0%", FormatPercentage(0, "en-IN"))
	assert.Equal(t, "20.0%", FormatPercentage(20, "en-GB"))
	assert.Equal(t, "9.54%", FormatPercentage(9.5445115, "en-US"))
	assert.Equal(t, "6.5%", FormatPercentage(6.5, "en-AU"))
	assert.Equal(t, "-3.25%", FormatPercentage(-3.25, "en-US"))
	assert.Equal(t, "1,250.0%", FormatPercentage(1250, "en-US"))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.March, 7, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "03/07/2026", FormatDate(d, "en-US"))
	assert.Equal(t, "07/03/2026", FormatDate(d, "en-GB"))
	assert.Equal(t, "07/03/2026", FormatDate(d, "en-AU"))
	assert.Equal(t, "07/03/2026", FormatDate(d, "en-IN"))
	assert.Equal(t, "03/07/2026", FormatDate(d, "unknown"))
}

func TestFormatCompactCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		tag    string
		want   string
	}{
		{1500000, "en-US", "$1.5M"},
		{12000, "en-GB", "£12K"},
		{2500000000, "en-AU", "$2.5B"},
		{999999, "en-US", "$1M"},
		{1927345, "en-IN", "₹19.27 L"},
		{19273500000, "en-IN", "₹1,927.35 Cr"},
		{99999, "en-IN", "₹1 L"},
		{-45000, "en-US", "-$45K"},
		{950, "en-US", "$950.00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCompactCurrency(tc.amount, tc.tag), "%v in %s", tc.amount, tc.tag)
	}
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "1", groupDigits("1", 3, 3, ","))
	assert.Equal(t, "999", groupDigits("999", 3, 3, ","))
	assert.Equal(t, "1,000", groupDigits("1000", 3, 3, ","))
	assert.Equal(t, "1,000,000", groupDigits("1000000", 3, 3, ","))
	assert.Equal(t, "1,00,00,000", groupDigits("10000000", 3, 2, ","))
	assert.Equal(t, "10,000", groupDigits("10000", 3, 2, ","))
}
