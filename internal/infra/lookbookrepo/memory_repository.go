package lookbookrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/lookia/lookia/internal/domain/lookbook"
)

// MemoryRepository keeps saved looks in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	looks []lookbook.SavedLook
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Append implements lookbook.Repository.
func (r *MemoryRepository) Append(_ context.Context, saved lookbook.SavedLook) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.looks = append(r.looks, saved)
	return nil
}

// List implements lookbook.Repository.
func (r *MemoryRepository) List(_ context.Context, favoritesOnly bool) ([]lookbook.SavedLook, error) {
	r.mu.RLock()
	out := make([]lookbook.SavedLook, 0, len(r.looks))
	for _, l := range r.looks {
		if favoritesOnly && !l.IsFavorite {
			continue
		}
		out = append(out, l)
	}
	r.mu.RUnlock()

	sortNewestFirst(out)
	return out, nil
}

// FindByID implements lookbook.Repository.
func (r *MemoryRepository) FindByID(_ context.Context, id string) (lookbook.SavedLook, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexLocked(id); i >= 0 {
		return r.looks[i], true, nil
	}
	return lookbook.SavedLook{}, false, nil
}

// UpdateByID implements lookbook.Repository.
func (r *MemoryRepository) UpdateByID(_ context.Context, id string, mutate func(*lookbook.SavedLook)) (lookbook.SavedLook, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexLocked(id)
	if i < 0 {
		return lookbook.SavedLook{}, false, nil
	}
	mutate(&r.looks[i])
	return r.looks[i], true, nil
}

// DeleteByID implements lookbook.Repository.
func (r *MemoryRepository) DeleteByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexLocked(id)
	if i < 0 {
		return false, nil
	}
	r.looks = append(r.looks[:i], r.looks[i+1:]...)
	return true, nil
}

func (r *MemoryRepository) indexLocked(id string) int {
	for i := range r.looks {
		if r.looks[i].ID == id {
			return i
		}
	}
	return -1
}

func sortNewestFirst(looks []lookbook.SavedLook) {
	sort.SliceStable(looks, func(i, j int) bool {
		return looks[i].CreatedAt.After(looks[j].CreatedAt)
	})
}

var _ lookbook.Repository = (*MemoryRepository)(nil)
