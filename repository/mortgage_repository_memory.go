package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/odinmillion/dubai-mortgage-calculator/domain"
)

// MortgageRepositoryMemory is an in-memory implementation of MortgageRepository.
type MortgageRepositoryMemory struct {
	mu      sync.Mutex
	records []domain.CalculationRecord
}

// NewMortgageRepositoryMemory creates a new in-memory mortgage repository.
func NewMortgageRepositoryMemory() *MortgageRepositoryMemory {
	return &MortgageRepositoryMemory{
		records: []domain.CalculationRecord{},
	}
}

// Save stores the calculation in memory.
func (r *MortgageRepositoryMemory) Save(
	input domain.MortgageInput,
	result domain.MortgageResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, domain.CalculationRecord{
		ID:        uuid.New().String(),
		Input:     input,
		Result:    result,
		CreatedAt: time.Now(),
	})
	return nil
}

// List returns up to limit records, newest first.
func (r *MortgageRepositoryMemory) List(limit int) ([]domain.CalculationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}

	out := make([]domain.CalculationRecord, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}
