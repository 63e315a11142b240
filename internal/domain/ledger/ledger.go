// Package ledger contiene las reglas puras del libro de stock (servicio de dominio).
package ledger

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// Apply calcula el nuevo stock tras aplicar un movimiento.
// NuevoStock = max(0, StockActual + delta), con delta = +qty para entrada y -qty para saida.
// El clamp a 0 es la regla de negocio: una salida mayor al stock disponible no
// es un error, deja el stock en 0.
func Apply(current int, movType string, qty int) int {
	delta := qty
	if movType == entity.MovementTypeSaida {
		delta = -qty
	}
	if next := current + delta; next > 0 {
		return next
	}
	return 0
}

// LowStock devuelve los productos con stock en o por debajo de su mínimo
// configurado, preservando el orden relativo de entrada. Función pura.
func LowStock(products []entity.Product) []entity.Product {
	alerts := make([]entity.Product, 0)
	for _, p := range products {
		if p.Quantity <= p.MinQuantity {
			alerts = append(alerts, p)
		}
	}
	return alerts
}
