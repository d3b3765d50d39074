package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcdesk/domain"
)

func TestBMI(t *testing.T) {
	result, err := NewBMIService(nil).Calculate(context.Background(), domain.BMIInput{
		WeightKg: 70,
		HeightCm: 175,
	})
	require.NoError(t, err)

	assert.Equal(t, 22.86, result.BMI)
	assert.Equal(t, "Normal weight", result.Category)
	assert.Equal(t, "22.9", result.Display["bmi"])
	assert.Equal(t, "56.7 kg", result.Display["healthy_min_kg"])
}

func TestBMI_MissingHeight(t *testing.T) {
	_, err := NewBMIService(nil).Calculate(context.Background(), domain.BMIInput{WeightKg: 70})
	assert.ErrorIs(t, err, domain.ErrNoResult)
}

func TestCompatibility_BySign(t *testing.T) {
	result, err := NewCompatibilityService(nil).Score(context.Background(), domain.CompatibilityInput{
		SignA: "Aries",
		SignB: "GEMINI",
	})
	require.NoError(t, err)

	assert.Equal(t, "aries", result.SignA)
	assert.Equal(t, "gemini", result.SignB)
	assert.Equal(t, 82, result.Score)
	assert.Equal(t, "Good match", result.Verdict)
	assert.Equal(t, "82.0%", result.Display["score"])
}

func TestCompatibility_ByBirthDate(t *testing.T) {
	result, err := NewCompatibilityService(nil).Score(context.Background(), domain.CompatibilityInput{
		SignA:      "aries",
		BirthDateB: "1990-06-01",
		Locale:     "en-GB",
	})
	require.NoError(t, err)

	assert.Equal(t, "gemini", result.SignB)
	assert.Equal(t, 82, result.Score)
	assert.Equal(t, "01/06/1990", result.Display["birth_date_b"])
}

func TestCompatibility_InvalidInput(t *testing.T) {
	service := NewCompatibilityService(nil)
	ctx := context.Background()

	_, err := service.Score(ctx, domain.CompatibilityInput{SignA: "aries"})
	assert.ErrorIs(t, err, domain.ErrNoResult)

	_, err = service.Score(ctx, domain.CompatibilityInput{SignA: "aries", SignB: "ophiuchus"})
	assert.ErrorIs(t, err, domain.ErrNoResult)

	_, err = service.Score(ctx, domain.CompatibilityInput{SignA: "aries", BirthDateB: "01/06/1990"})
	assert.ErrorIs(t, err, domain.ErrNoResult)
}
