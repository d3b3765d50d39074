package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"calcdesk/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository. Records are lost on restart.
type CalculationRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.CalculationRecord
	byID map[uuid.UUID]int
}

// NewCalculationRepositoryMemory creates a new in-memory repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: []domain.CalculationRecord{},
		byID: make(map[uuid.UUID]int),
	}
}

// Save stores the record in memory.
func (r *CalculationRepositoryMemory) Save(_ context.Context, record domain.CalculationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[record.ID] = len(r.data)
	r.data = append(r.data, record)
	return nil
}

func (r *CalculationRepositoryMemory) Get(_ context.Context, id uuid.UUID) (domain.CalculationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return domain.CalculationRecord{}, ErrRecordNotFound
	}
	return r.data[idx], nil
}

func (r *CalculationRepositoryMemory) List(_ context.Context, calculator string, limit int) ([]domain.CalculationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.CalculationRecord{}
	for i := len(r.data) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		if calculator == "" || r.data[i].Calculator == calculator {
			out = append(out, r.data[i])
		}
	}
	return out, nil
}
