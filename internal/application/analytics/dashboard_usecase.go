// Package analytics contiene el caso de uso del tablero: el resumen del
// estado del inventario que consume la vista principal.
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/query"
	"github.com/jhoicas/estoque-api/internal/domain/ledger"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/metrics"
)

const dashboardRecentMovements = 5 // movimientos en el widget de actividad reciente

// DashboardUseCase genera el resumen del tablero a partir del almacén de
// entidades. Solo lectura: no muta colecciones.
type DashboardUseCase struct {
	store repository.EntityStore
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.EntityStore) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// GetSummary construye el DashboardSummaryDTO:
//   - TotalProducts: tamaño del catálogo
//   - LowStockCount y LowStock: productos con quantity <= minQuantity
//   - MovementsLast24h: movimientos con createdAt en las últimas 24 horas
//   - TotalValue: Σ quantity * salePrice
//   - RecentMovements: los 5 más recientes del historial
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	movements, err := uc.store.LoadMovements(ctx)
	if err != nil {
		return nil, err
	}

	dayAgo := time.Now().Add(-24 * time.Hour)
	last24h := 0
	for _, m := range movements {
		if m.CreatedAt.After(dayAgo) {
			last24h++
		}
	}

	recent := movements
	if len(recent) > dashboardRecentMovements {
		recent = recent[:dashboardRecentMovements]
	}

	lowStock := ledger.LowStock(products)
	metrics.LowStockProducts.Set(float64(len(lowStock)))

	return &dto.DashboardSummaryDTO{
		TotalProducts:    len(products),
		LowStockCount:    len(lowStock),
		MovementsLast24h: last24h,
		TotalValue:       query.TotalInventoryValue(products).Round(2),
		RecentMovements:  dto.NewMovementResponses(recent),
		LowStock:         dto.NewProductResponses(lowStock),
	}, nil
}
