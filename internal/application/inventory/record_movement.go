// Package inventory contiene el motor de movimientos: la única operación que
// mantiene Product.Quantity consistente con el historial de movimientos.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/ledger"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/metrics"
)

// RecordMovementUseCase registra movimientos de stock de forma síncrona:
// al retornar, tanto el historial como (si aplica) el stock del producto ya
// están persistidos.
type RecordMovementUseCase struct {
	store repository.EntityStore
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(store repository.EntityStore) *RecordMovementUseCase {
	return &RecordMovementUseCase{store: store}
}

// Record valida la entrada, crea el movimiento (id y createdAt los asigna el
// motor, nunca el caller) y lo antepone al historial; luego aplica el ajuste
// de stock al producto referenciado.
//
// Reglas:
//   - El par tipo/motivo es una regla de construcción: entrada admite compra,
//     reposicao, devolucao y outro; saida admite venda, defeito, emprestimo y outro.
//   - Una salida mayor al stock disponible no es un error: el stock queda en 0
//     (clamp). La regla se aplica acá, uniforme para todo caller.
//   - Si el producto no existe, el movimiento igual se registra y la operación
//     reporta éxito; solo se omite el ajuste de stock (tolerancia a huérfanos).
func (uc *RecordMovementUseCase) Record(ctx context.Context, in dto.RecordMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidReasonForType(in.Type, in.Reason) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.Responsible == "" {
		return nil, domain.ErrInvalidInput
	}

	// Sección de lectura-modificación-escritura sobre ambas colecciones
	uc.store.Lock()
	defer uc.store.Unlock()

	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}

	// Snapshot del nombre al momento del movimiento; no se mantiene en sync
	// con renombres posteriores del producto.
	productIdx := -1
	productName := in.ProductName
	for i, p := range products {
		if p.ID == in.ProductID {
			productIdx = i
			productName = p.Name
			break
		}
	}

	mov := entity.Movement{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		ProductName: productName,
		Type:        in.Type,
		Reason:      in.Reason,
		Quantity:    in.Quantity,
		Responsible: in.Responsible,
		Notes:       in.Notes,
		CreatedAt:   time.Now(),
	}

	movements, err := uc.store.LoadMovements(ctx)
	if err != nil {
		return nil, err
	}
	// El historial se guarda con el más reciente primero
	movements = append([]entity.Movement{mov}, movements...)
	if err := uc.store.SaveMovements(ctx, movements); err != nil {
		return nil, err
	}

	if productIdx >= 0 {
		p := products[productIdx]
		p.Quantity = ledger.Apply(p.Quantity, mov.Type, mov.Quantity)
		p.UpdatedAt = mov.CreatedAt
		products[productIdx] = p
		if err := uc.store.SaveProducts(ctx, products); err != nil {
			return nil, err
		}
	} else {
		metrics.OrphanMovementsTotal.Inc()
	}

	metrics.MovementsRecordedTotal.WithLabelValues(mov.Type).Inc()
	resp := dto.NewMovementResponse(mov)
	return &resp, nil
}
