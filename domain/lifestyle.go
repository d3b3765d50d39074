package domain

type BMIInput struct {
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
	Locale   string  `json:"locale,omitempty"`
}

type BMIResult struct {
	BMI          float64 `json:"bmi"`
	Category     string  `json:"category"`
	HealthyMinKg float64 `json:"healthy_min_kg"`
	HealthyMaxKg float64 `json:"healthy_max_kg"`

	Locale   string  `json:"locale"`
	Display  Display `json:"display"`
	RecordID string  `json:"record_id,omitempty"`
}

// CompatibilityInput takes either sign names or birth dates (YYYY-MM-DD)
// for each person; a sign wins when both are given.
type CompatibilityInput struct {
	SignA      string `json:"sign_a,omitempty"`
	SignB      string `json:"sign_b,omitempty"`
	BirthDateA string `json:"birth_date_a,omitempty"`
	BirthDateB string `json:"birth_date_b,omitempty"`
	Locale     string `json:"locale,omitempty"`
}

type CompatibilityResult struct {
	SignA   string `json:"sign_a"`
	SignB   string `json:"sign_b"`
	Score   int    `json:"score"`
	Verdict string `json:"verdict"`

	Locale   string  `json:"locale"`
	Display  Display `json:"display"`
	RecordID string  `json:"record_id,omitempty"`
}
