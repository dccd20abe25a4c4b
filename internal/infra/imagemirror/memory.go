package imagemirror

import (
	"context"
	"sync"

	"github.com/lookia/lookia/internal/domain/imageproxy"
)

// MemoryMirror keeps mirrored images in process. Useful for tests and local dev.
type MemoryMirror struct {
	mu      sync.RWMutex
	objects map[string]imageproxy.Image
}

// NewMemoryMirror constructs an empty mirror.
func NewMemoryMirror() *MemoryMirror {
	return &MemoryMirror{objects: make(map[string]imageproxy.Image)}
}

func (m *MemoryMirror) Get(_ context.Context, key string) (imageproxy.Image, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.objects[key]
	if !ok {
		return imageproxy.Image{}, false, nil
	}
	img.Data = append([]byte(nil), img.Data...)
	return img, true, nil
}

func (m *MemoryMirror) Put(_ context.Context, key string, img imageproxy.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	img.Data = append([]byte(nil), img.Data...)
	m.objects[key] = img
	return nil
}

var _ imageproxy.Mirror = (*MemoryMirror)(nil)
