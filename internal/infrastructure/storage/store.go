// Package storage implementa el almacén de entidades sobre un BlobStore
// clave-valor: cada colección viaja completa como un arreglo JSON.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.EntityStore = (*JSONStore)(nil)

// JSONStore serializa las colecciones de productos y movimientos como blobs
// JSON bajo las claves de repository. Un blob ausente equivale a una colección
// vacía. Un blob corrupto se degrada a colección vacía con un warning en el
// log, en lugar de propagar el error de parseo.
type JSONStore struct {
	mu    sync.Mutex
	blobs repository.BlobStore
}

// NewJSONStore construye el almacén sobre cualquier BlobStore (archivo, memoria, Redis, Postgres).
func NewJSONStore(blobs repository.BlobStore) *JSONStore {
	return &JSONStore{blobs: blobs}
}

// Lock delimita una sección de lectura-modificación-escritura. Las colecciones
// se guardan completas, así que un ajuste de stock concurrente sin esta
// exclusión pierde escrituras (el último Save pisa al anterior).
func (s *JSONStore) Lock() { s.mu.Lock() }

// Unlock libera la sección tomada con Lock.
func (s *JSONStore) Unlock() { s.mu.Unlock() }

// LoadProducts carga la colección completa de productos.
func (s *JSONStore) LoadProducts(ctx context.Context) ([]entity.Product, error) {
	return loadCollection[entity.Product](ctx, s.blobs, repository.KeyProducts)
}

// SaveProducts reemplaza la colección persistida de productos.
func (s *JSONStore) SaveProducts(ctx context.Context, products []entity.Product) error {
	return s.save(ctx, repository.KeyProducts, products)
}

// LoadMovements carga la colección completa de movimientos (orden: más reciente primero).
func (s *JSONStore) LoadMovements(ctx context.Context) ([]entity.Movement, error) {
	return loadCollection[entity.Movement](ctx, s.blobs, repository.KeyMovements)
}

// SaveMovements reemplaza la colección persistida de movimientos.
func (s *JSONStore) SaveMovements(ctx context.Context, movements []entity.Movement) error {
	return s.save(ctx, repository.KeyMovements, movements)
}

// loadCollection decodifica en un slice local y solo lo devuelve si el parseo
// fue completo: Unmarshal deja registros a medio decodificar ante errores de
// tipo, y ese estado parcial no debe llegar al caller.
func loadCollection[T any](ctx context.Context, blobs repository.BlobStore, key string) ([]T, error) {
	raw, err := blobs.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("leer blob %s: %w", key, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		// Estado ilegible: se trata como vacío para no dejar la app inutilizable
		log.Warn().Str("key", key).Err(err).Msg("blob corrupto, se ignora el contenido")
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *JSONStore) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar blob %s: %w", key, err)
	}
	if err := s.blobs.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("escribir blob %s: %w", key, err)
	}
	return nil
}
