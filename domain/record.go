package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CalculationRecord is a stored calculation as the export and share
// features consume it: the request and response JSON, verbatim.
type CalculationRecord struct {
	ID         uuid.UUID       `json:"id"`
	Calculator string          `json:"calculator"`
	Locale     string          `json:"locale"`
	Input      json.RawMessage `json:"input"`
	Result     json.RawMessage `json:"result"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewCalculationRecord snapshots input and result as JSON under a fresh id.
func NewCalculationRecord(calculator, locale string, input, result any) (CalculationRecord, error) {
	in, err := json.Marshal(input)
	if err != nil {
		return CalculationRecord{}, fmt.Errorf("encode input: %w", err)
	}
	out, err := json.Marshal(result)
	if err != nil {
		return CalculationRecord{}, fmt.Errorf("encode result: %w", err)
	}
	return CalculationRecord{
		ID:         uuid.New(),
		Calculator: calculator,
		Locale:     locale,
		Input:      in,
		Result:     out,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
