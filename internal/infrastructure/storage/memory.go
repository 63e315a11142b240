package storage

import (
	"context"
	"sync"

	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.BlobStore = (*MemoryBlobStore)(nil)

// MemoryBlobStore guarda los blobs en un map. Útil para tests y para el modo
// efímero (STORAGE_DRIVER=memory). El servidor atiende peticiones en goroutines
// concurrentes, así que el acceso al map se sincroniza.
type MemoryBlobStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryBlobStore construye un store vacío.
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{data: make(map[string][]byte)}
}

// Get devuelve (nil, nil) si la clave no existe.
func (m *MemoryBlobStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

// Put reemplaza el blob de la clave.
func (m *MemoryBlobStore) Put(_ context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = cp
	return nil
}
