package analytics_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/infrastructure/storage"
)

func TestGetSummary_AlmacenVacio(t *testing.T) {
	uc := analytics.NewDashboardUseCase(storage.NewJSONStore(storage.NewMemoryBlobStore()))

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalProducts)
	assert.Equal(t, 0, summary.LowStockCount)
	assert.Equal(t, 0, summary.MovementsLast24h)
	assert.True(t, summary.TotalValue.IsZero())
	assert.Empty(t, summary.RecentMovements)
	assert.Empty(t, summary.LowStock)
}

func TestGetSummary_ResumenCompleto(t *testing.T) {
	ctx := context.Background()
	store := storage.NewJSONStore(storage.NewMemoryBlobStore())
	uc := analytics.NewDashboardUseCase(store)

	products := []entity.Product{
		{ID: "1", Name: "iPhone 14 Pro", Category: entity.CategorySmartphone, SKU: "IPH14P-256-BLK",
			Quantity: 8, MinQuantity: 5, SalePrice: decimal.NewFromInt(6999)},
		{ID: "2", Name: "Samsung Smart TV 65\"", Category: entity.CategorySmartTV, SKU: "SSTV-65-4K-NEO",
			Quantity: 2, MinQuantity: 4, SalePrice: decimal.NewFromInt(4299)},
	}
	require.NoError(t, store.SaveProducts(ctx, products))

	// 7 movimientos más reciente primero, con 12h entre cada uno
	now := time.Now()
	movements := make([]entity.Movement, 0, 7)
	for i := 0; i < 7; i++ {
		movements = append(movements, entity.Movement{
			ID: fmt.Sprintf("m%d", i), ProductID: "1", ProductName: "iPhone 14 Pro",
			Type: entity.MovementTypeSaida, Reason: entity.ReasonVenda, Quantity: 1,
			Responsible: "Maria Santos", CreatedAt: now.Add(-time.Duration(i) * 12 * time.Hour),
		})
	}
	require.NoError(t, store.SaveMovements(ctx, movements))

	summary, err := uc.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, 1, summary.LowStockCount)
	require.Len(t, summary.LowStock, 1)
	assert.Equal(t, "2", summary.LowStock[0].ID)

	// Edades 0h, 12h, 24h, 36h...: solo 0h y 12h caen dentro de las 24h
	assert.Equal(t, 2, summary.MovementsLast24h)

	// El widget de actividad muestra a lo sumo 5, en el orden del historial
	require.Len(t, summary.RecentMovements, 5)
	assert.Equal(t, "m0", summary.RecentMovements[0].ID)
	assert.Equal(t, "m4", summary.RecentMovements[4].ID)

	// 8*6999 + 2*4299 = 64590
	assert.True(t, summary.TotalValue.Equal(decimal.NewFromInt(64590)), "total %s", summary.TotalValue)
}
