// Package query contiene las vistas derivadas de solo lectura: historial
// filtrado, movimientos recientes, búsqueda de catálogo y alertas de stock.
// Ninguna operación de este paquete muta el almacén.
package query

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/ledger"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// QueryUseCase vistas derivadas sobre el almacén de entidades.
type QueryUseCase struct {
	store repository.EntityStore
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(store repository.EntityStore) *QueryUseCase {
	return &QueryUseCase{store: store}
}

// RecentMovements devuelve los primeros n movimientos del historial
// (el orden persistido ya es más reciente primero).
func (uc *QueryUseCase) RecentMovements(ctx context.Context, n int) ([]dto.MovementResponse, error) {
	movements, err := uc.store.LoadMovements(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 && n < len(movements) {
		movements = movements[:n]
	}
	return dto.NewMovementResponses(movements), nil
}

// MovementsWithin devuelve los movimientos cuyo createdAt cae en [now-d, now].
func (uc *QueryUseCase) MovementsWithin(ctx context.Context, d time.Duration) ([]dto.MovementResponse, error) {
	movements, err := uc.store.LoadMovements(ctx)
	if err != nil {
		return nil, err
	}
	cutoff := time.Now().Add(-d)
	within := make([]entity.Movement, 0)
	for _, m := range movements {
		if !m.CreatedAt.Before(cutoff) {
			within = append(within, m)
		}
	}
	return dto.NewMovementResponses(within), nil
}

// FilterMovements aplica los filtros del historial en conjunción (AND):
// tipo exacto, búsqueda de texto sobre nombre de producto y motivo, y
// responsable; los de texto son substring case-insensitive. WithinHours y
// Limit acotan el resultado.
func (uc *QueryUseCase) FilterMovements(ctx context.Context, f dto.MovementFilter) (*dto.MovementListResponse, error) {
	movements, err := uc.store.LoadMovements(ctx)
	if err != nil {
		return nil, err
	}

	var cutoff time.Time
	if f.WithinHours > 0 {
		cutoff = time.Now().Add(-time.Duration(f.WithinHours) * time.Hour)
	}

	filtered := make([]entity.Movement, 0, len(movements))
	for _, m := range movements {
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.Search != "" &&
			!containsFold(m.ProductName, f.Search) &&
			!containsFold(m.Reason, f.Search) {
			continue
		}
		if f.Responsible != "" && !containsFold(m.Responsible, f.Responsible) {
			continue
		}
		if !cutoff.IsZero() && m.CreatedAt.Before(cutoff) {
			continue
		}
		filtered = append(filtered, m)
	}

	total := len(filtered)
	if f.Limit > 0 && f.Limit < len(filtered) {
		filtered = filtered[:f.Limit]
	}
	return &dto.MovementListResponse{Items: dto.NewMovementResponses(filtered), Total: total}, nil
}

// FilterProducts busca por substring case-insensitive sobre nombre, SKU y
// categoría. Término vacío devuelve el catálogo completo.
func (uc *QueryUseCase) FilterProducts(ctx context.Context, term string) ([]dto.ProductResponse, error) {
	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return dto.NewProductResponses(products), nil
	}
	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if containsFold(p.Name, term) || containsFold(p.SKU, term) || containsFold(p.Category, term) {
			filtered = append(filtered, p)
		}
	}
	return dto.NewProductResponses(filtered), nil
}

// LowStockProducts devuelve las alertas de stock bajo en el orden del catálogo.
func (uc *QueryUseCase) LowStockProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponses(ledger.LowStock(products)), nil
}

// TotalInventoryValue suma quantity * salePrice sobre los productos.
func TotalInventoryValue(products []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.SalePrice.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return total
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
