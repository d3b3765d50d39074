package calc

// BMIResult is a body-mass index with its WHO adult category and the weight
// range that would count as healthy at the same height.
type BMIResult struct {
	BMI          float64
	Category     string
	HealthyMinKg float64
	HealthyMaxKg float64
}

const (
	bmiUnderweight = 18.5
	bmiOverweight  = 25
	bmiObese       = 30
	bmiHealthyMax  = 24.9
)

// BMI computes weight / height² from kilograms and centimetres.
func BMI(weightKg, heightCm float64) (BMIResult, bool) {
	if !finite(weightKg, heightCm) || weightKg <= 0 || heightCm <= 0 {
		return BMIResult{}, false
	}

	m := heightCm / 100
	bmi := weightKg / (m * m)

	return BMIResult{
		BMI:          bmi,
		Category:     BMICategory(bmi),
		HealthyMinKg: bmiUnderweight * m * m,
		HealthyMaxKg: bmiHealthyMax * m * m,
	}, true
}

// BMICategory names the WHO band bmi falls into.
func BMICategory(bmi float64) string {
	switch {
	case bmi < bmiUnderweight:
		return "Underweight"
	case bmi < bmiOverweight:
		return "Normal weight"
	case bmi < bmiObese:
		return "Overweight"
	default:
		return "Obese"
	}
}
