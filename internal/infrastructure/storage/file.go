package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.BlobStore = (*FileBlobStore)(nil)

// FileBlobStore persiste cada blob como un archivo JSON dentro de un
// directorio de datos. Es el equivalente local del storage clave-valor del
// navegador y el driver por defecto. La escritura es a archivo temporal +
// rename para no dejar un blob a medias ante un corte.
type FileBlobStore struct {
	dir string
}

// NewFileBlobStore crea el directorio de datos si no existe.
func NewFileBlobStore(dir string) (*FileBlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &FileBlobStore{dir: dir}, nil
}

// Get devuelve (nil, nil) si el archivo de la clave nunca fue escrito.
func (f *FileBlobStore) Get(_ context.Context, key string) ([]byte, error) {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer %s: %w", key, err)
	}
	return raw, nil
}

// Put escribe el blob de forma atómica (tmp + rename).
func (f *FileBlobStore) Put(_ context.Context, key string, value []byte) error {
	target := f.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("reemplazar %s: %w", key, err)
	}
	return nil
}

func (f *FileBlobStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
