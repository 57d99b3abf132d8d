package repository

import (
	"sync"

	"finance-guide/domain"
)

// CalculationRepositoryMemory keeps the last capacity calculations in memory.
type CalculationRepositoryMemory struct {
	mu       sync.Mutex
	capacity int
	data     []domain.CalculationRecord
}

// NewCalculationRepositoryMemory creates a new in-memory calculation log.
func NewCalculationRepositoryMemory(capacity int) *CalculationRepositoryMemory {
	if capacity <= 0 {
		capacity = 100
	}
	return &CalculationRepositoryMemory{
		capacity: capacity,
		data:     []domain.CalculationRecord{},
	}
}

// Save appends the record, dropping the oldest once capacity is reached.
func (r *CalculationRepositoryMemory) Save(record domain.CalculationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	if over := len(r.data) - r.capacity; over > 0 {
		r.data = append([]domain.CalculationRecord(nil), r.data[over:]...)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (r *CalculationRepositoryMemory) Recent(limit int) []domain.CalculationRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.CalculationRecord, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out
}
