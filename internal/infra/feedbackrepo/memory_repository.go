package feedbackrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/lookia/lookia/internal/domain/feedback"
)

// MemoryRepository keeps feedback in process memory; contents are lost on restart.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []feedback.Record
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Append implements feedback.Repository.
func (r *MemoryRepository) Append(_ context.Context, record feedback.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

// List implements feedback.Repository.
func (r *MemoryRepository) List(_ context.Context, limit int) ([]feedback.Record, error) {
	r.mu.RLock()
	out := make([]feedback.Record, len(r.records))
	copy(out, r.records)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// FindByID implements feedback.Repository.
func (r *MemoryRepository) FindByID(_ context.Context, id string) (feedback.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexLocked(id); i >= 0 {
		return r.records[i], true, nil
	}
	return feedback.Record{}, false, nil
}

// UpdateByID implements feedback.Repository.
func (r *MemoryRepository) UpdateByID(_ context.Context, id string, patch feedback.Patch) (feedback.Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexLocked(id)
	if i < 0 {
		return feedback.Record{}, false, nil
	}
	patch.Apply(&r.records[i])
	return r.records[i], true, nil
}

// DeleteByID implements feedback.Repository.
func (r *MemoryRepository) DeleteByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexLocked(id)
	if i < 0 {
		return false, nil
	}
	r.records = append(r.records[:i], r.records[i+1:]...)
	return true, nil
}

func (r *MemoryRepository) indexLocked(id string) int {
	for i := range r.records {
		if r.records[i].ID == id {
			return i
		}
	}
	return -1
}

var _ feedback.Repository = (*MemoryRepository)(nil)
