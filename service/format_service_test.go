package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcdesk/domain"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		kind, text, tag, want string
	}{
		{FormatKindCurrency, "1234567.89", "en-IN", "₹12,34,567.89"},
		{FormatKindCurrency, "₹12,34,567.89", "en-IN", "₹12,34,567.89"},
		{FormatKindCurrency, "-1234.5", "en-US", "-$1,234.50"},
		{FormatKindNumber, "1234.5678", "en-GB", "1,234.57"},
		{FormatKindPercent, "0", "en-US", "0.0%"},
		{FormatKindPercent, "9.5445", "en-US", "9.54%"},
		{FormatKindCompact, "1500000", "en-US", "$1.5M"},
		{FormatKindDate, "2026-03-07", "en-US", "03/07/2026"},
		{FormatKindDate, "2026-03-07", "en-AU", "07/03/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.kind+" "+tt.text, func(t *testing.T) {
			got, err := FormatValue(tt.kind, tt.text, tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Formatted)
			assert.Equal(t, tt.tag, got.Locale)
		})
	}
}

func TestFormatValue_FallsBackToDefaultLocale(t *testing.T) {
	got, err := FormatValue(FormatKindCurrency, "5", "xx-invalid")
	require.NoError(t, err)
	assert.Equal(t, "en-US", got.Locale)
	assert.Equal(t, "$5.00", got.Formatted)
}

func TestFormatValue_Invalid(t *testing.T) {
	_, err := FormatValue(FormatKindCurrency, "abc", "en-US")
	assert.ErrorIs(t, err, domain.ErrNoResult)

	_, err = FormatValue("roman", "12", "en-US")
	assert.ErrorIs(t, err, domain.ErrNoResult)

	_, err = FormatValue(FormatKindDate, "07/03/2026", "en-US")
	assert.ErrorIs(t, err, domain.ErrNoResult)
}
