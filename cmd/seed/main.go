// seed puebla un almacén vacío con el catálogo de ejemplo y un par de
// movimientos iniciales. Si el almacén ya tiene productos no hace nada.
//
// Uso: go run ./cmd/seed
// Respeta STORAGE_DRIVER / STORAGE_DIR igual que el servidor.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/estoque-api/internal/infrastructure/redisclient"
	"github.com/jhoicas/estoque-api/internal/infrastructure/storage"
	"github.com/jhoicas/estoque-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	blobs, err := buildBlobStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inicializar persistencia: %v\n", err)
		os.Exit(1)
	}

	store := storage.NewJSONStore(blobs)
	products, err := store.LoadProducts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "leer productos: %v\n", err)
		os.Exit(1)
	}
	if len(products) > 0 {
		fmt.Println("el almacén ya tiene productos, no se siembra nada")
		return
	}

	now := time.Now()
	sample := []entity.Product{
		{
			ID: uuid.New().String(), Name: "iPhone 14 Pro", Category: entity.CategorySmartphone,
			SKU: "IPH14P-256-BLK", Quantity: 8, MinQuantity: 5,
			PurchasePrice: decimal.NewFromInt(5500), SalePrice: decimal.NewFromInt(6999),
			Specifications: "256GB, Preto, 5G, Câmera 48MP", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "MacBook Air M2", Category: entity.CategoryNotebook,
			SKU: "MBA-M2-512-SLV", Quantity: 3, MinQuantity: 3,
			PurchasePrice: decimal.NewFromInt(8500), SalePrice: decimal.NewFromInt(10499),
			Specifications: "512GB SSD, 16GB RAM, Prata", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "Samsung Smart TV 65\"", Category: entity.CategorySmartTV,
			SKU: "SSTV-65-4K-NEO", Quantity: 2, MinQuantity: 4,
			PurchasePrice: decimal.NewFromInt(3200), SalePrice: decimal.NewFromInt(4299),
			Specifications: "65\", 4K, Neo QLED, Smart TV", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "AirPods Pro 2", Category: entity.CategoryAccessory,
			SKU: "APP2-WHT-USB", Quantity: 15, MinQuantity: 10,
			PurchasePrice: decimal.NewFromInt(1200), SalePrice: decimal.NewFromInt(1699),
			Specifications: "Cancelamento de ruído, USB-C", CreatedAt: now, UpdatedAt: now,
		},
	}
	if err := store.SaveProducts(ctx, sample); err != nil {
		fmt.Fprintf(os.Stderr, "guardar productos: %v\n", err)
		os.Exit(1)
	}

	movements := []entity.Movement{
		{
			ID: uuid.New().String(), ProductID: sample[0].ID, ProductName: sample[0].Name,
			Type: entity.MovementTypeSaida, Reason: entity.ReasonVenda, Quantity: 2,
			Responsible: "Maria Santos", CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID: uuid.New().String(), ProductID: sample[0].ID, ProductName: sample[0].Name,
			Type: entity.MovementTypeEntrada, Reason: entity.ReasonCompra, Quantity: 10,
			Responsible: "João Silva", Notes: "Lote de reposição", CreatedAt: now.Add(-48 * time.Hour),
		},
	}
	if err := store.SaveMovements(ctx, movements); err != nil {
		fmt.Fprintf(os.Stderr, "guardar movimientos: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("sembrados %d productos y %d movimientos (driver %s)\n",
		len(sample), len(movements), cfg.Storage.Driver)
}

func buildBlobStore(ctx context.Context, cfg *config.Config) (repository.BlobStore, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return storage.NewMemoryBlobStore(), nil
	case config.DriverFile:
		return storage.NewFileBlobStore(cfg.Storage.Dir)
	case config.DriverRedis:
		return redisclient.NewBlobStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return postgres.NewBlobRepository(ctx, pool)
	}
	return nil, fmt.Errorf("STORAGE_DRIVER desconocido: %q", cfg.Storage.Driver)
}
