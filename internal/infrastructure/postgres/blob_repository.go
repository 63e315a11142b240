package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobRepo)(nil)

// BlobRepo implementación del puerto BlobStore sobre PostgreSQL: una tabla
// blobs(key text primary key, value jsonb, updated_at timestamptz) con upsert.
type BlobRepo struct {
	pool *pgxpool.Pool
}

// NewBlobRepository construye el adaptador y crea la tabla si no existe.
func NewBlobRepository(ctx context.Context, pool *pgxpool.Pool) (*BlobRepo, error) {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS blobs (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return nil, fmt.Errorf("crear tabla blobs: %w", err)
	}
	return &BlobRepo{pool: pool}, nil
}

// Get devuelve (nil, nil) si la clave nunca fue escrita.
func (r *BlobRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.pool.QueryRow(ctx, `SELECT value FROM blobs WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blob: %w", err)
	}
	return value, nil
}

// Put reemplaza el blob de la clave (upsert).
func (r *BlobRepo) Put(ctx context.Context, key string, value []byte) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO blobs (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("put blob: %w", err)
	}
	return nil
}
