// Package redisclient implementa el BlobStore sobre Redis (GET/SET por clave).
package redisclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobStore)(nil)

// BlobStore guarda cada colección como un string JSON bajo su clave.
type BlobStore struct {
	rdb *redis.Client
}

// NewBlobStore conecta a Redis y verifica la conexión con un ping.
func NewBlobStore(addr, password string, db int) (*BlobStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &BlobStore{rdb: rdb}, nil
}

// Get devuelve (nil, nil) si la clave no existe.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return raw, nil
}

// Put reemplaza el blob de la clave, sin expiración.
func (s *BlobStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close cierra la conexión.
func (s *BlobStore) Close() error {
	return s.rdb.Close()
}
