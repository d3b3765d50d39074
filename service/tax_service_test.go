package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcdesk/domain"
)

func TestStampDuty(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		buyer     string
		wantTotal float64
		wantTable string
		wantNote  bool
	}{
		{"standard", 400000, "", 7500, "uk-sdlt-standard", false},
		{"standard boundary", 250000, domain.BuyerStandard, 0, "uk-sdlt-standard", false},
		{"first time", 500000, domain.BuyerFirstTime, 3750, "uk-sdlt-first-time", false},
		{"first time at ceiling", 625000, domain.BuyerFirstTime, 10000, "uk-sdlt-first-time", false},
		{"first time above ceiling", 700000, domain.BuyerFirstTime, 22500, "uk-sdlt-standard", true},
		{"additional", 400000, domain.BuyerAdditional, 19500, "uk-sdlt-additional", false},
	}

	service := NewTaxService(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.StampDuty(context.Background(), domain.StampDutyInput{
				Price:     tt.price,
				BuyerType: tt.buyer,
			})
			require.NoError(t, err)
			assert.InDelta(t, tt.wantTotal, result.Total, 0.001)
			assert.Equal(t, tt.wantTable, result.Table)
			assert.Equal(t, tt.wantNote, result.Note != "")
		})
	}
}

func TestStampDuty_Display(t *testing.T) {
	result, err := NewTaxService(nil).StampDuty(context.Background(), domain.StampDutyInput{Price: 400000})
	require.NoError(t, err)

	assert.Equal(t, "en-GB", result.Locale)
	assert.Equal(t, "£7,500.00", result.Display["total"])
	assert.Equal(t, "1.88%", result.Display["effective_rate"])

	require.Len(t, result.Breakdown, 2)
	assert.Equal(t, 0.0, result.Breakdown[0].Charge)
	assert.Equal(t, 5.0, result.Breakdown[1].Rate)
	assert.Equal(t, 150000.0, result.Breakdown[1].Taxable)
	require.NotNil(t, result.Breakdown[1].To)
	assert.Equal(t, 925000.0, *result.Breakdown[1].To)
}

func TestStampDuty_InvalidInput(t *testing.T) {
	service := NewTaxService(nil)
	ctx := context.Background()

	_, err := service.StampDuty(ctx, domain.StampDutyInput{Price: 0})
	assert.ErrorIs(t, err, domain.ErrNoResult)

	_, err = service.StampDuty(ctx, domain.StampDutyInput{Price: 100000, BuyerType: "investor"})
	assert.ErrorIs(t, err, domain.ErrNoResult)
}

func TestIncomeTax(t *testing.T) {
	store, records, _ := newTestStore(t)
	service := NewTaxService(store)

	result, err := service.IncomeTax(context.Background(), domain.IncomeTaxInput{
		Income: 60000,
		Table:  "uk-income-tax",
	})
	require.NoError(t, err)

	assert.InDelta(t, 11432, result.Total, 0.001)
	assert.Equal(t, "en-GB", result.Locale)
	require.Len(t, result.Breakdown, 3)
	require.NotNil(t, result.Breakdown[2].To)
	assert.Equal(t, 125140.0, *result.Breakdown[2].To)
	assert.NotEmpty(t, result.RecordID)

	saved, _ := records.List(context.Background(), domain.CalculatorIncomeTax, 0)
	assert.Len(t, saved, 1)
}

func TestIncomeTax_IndianTable(t *testing.T) {
	result, err := NewTaxService(nil).IncomeTax(context.Background(), domain.IncomeTaxInput{
		Income: 1600000,
		Table:  "in-income-tax-new",
	})
	require.NoError(t, err)

	// 5% of 4L + 10% of 3L + 15% of 2L + 20% of 3L + 30% of 1L
	assert.InDelta(t, 170000, result.Total, 0.001)
	assert.Equal(t, "₹1,70,000.00", result.Display["total"])
}

func TestIncomeTax_UnknownTable(t *testing.T) {
	_, err := NewTaxService(nil).IncomeTax(context.Background(), domain.IncomeTaxInput{
		Income: 1000,
		Table:  "mars",
	})
	assert.ErrorIs(t, err, domain.ErrNoResult)
}
