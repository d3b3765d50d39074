package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"calcdesk/domain"
)

var ErrRecordNotFound = errors.New("record not found")

// CalculationRepository keeps calculation records for export and sharing.
type CalculationRepository interface {
	Save(ctx context.Context, record domain.CalculationRecord) error
	Get(ctx context.Context, id uuid.UUID) (domain.CalculationRecord, error)
	// List returns the newest records first; an empty calculator matches
	// every calculator.
	List(ctx context.Context, calculator string, limit int) ([]domain.CalculationRecord, error)
}
