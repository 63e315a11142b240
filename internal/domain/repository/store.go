package repository

import (
	"context"
	"sync"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// Claves de los blobs persistidos. Se conservan los nombres históricos de la
// aplicación original para que los datos existentes sigan siendo legibles.
const (
	KeyProducts  = "stock_products"
	KeyMovements = "stock_movements"
)

// BlobStore es el puerto de persistencia clave-valor: cada colección se guarda
// completa como un blob JSON bajo su clave. Get devuelve (nil, nil) si la clave
// nunca fue escrita; eso no es un error.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// EntityStore es el puerto del almacén de entidades: carga y reemplaza las
// colecciones completas de productos y movimientos. Cada Save es una escritura
// síncrona única; no se garantiza integridad referencial entre colecciones
// (un movimiento puede apuntar a un producto ya eliminado).
//
// Las colecciones se reemplazan completas, así que toda sección de
// lectura-modificación-escritura debe ejecutarse bajo el Locker del almacén;
// sin esa exclusión dos peticiones concurrentes se pisan el Save y se pierden
// movimientos o ajustes de stock.
type EntityStore interface {
	sync.Locker
	LoadProducts(ctx context.Context) ([]entity.Product, error)
	SaveProducts(ctx context.Context, products []entity.Product) error
	LoadMovements(ctx context.Context) ([]entity.Movement, error)
	SaveMovements(ctx context.Context, movements []entity.Movement) error
}
