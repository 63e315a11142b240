package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Apply: NuevoStock = max(0, StockActual ± cantidad)
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_EntradaSumaStock(t *testing.T) {
	assert.Equal(t, 18, ledger.Apply(8, entity.MovementTypeEntrada, 10))
}

func TestApply_SaidaRestaStock(t *testing.T) {
	assert.Equal(t, 6, ledger.Apply(8, entity.MovementTypeSaida, 2))
}

// Una salida mayor al stock disponible deja el stock en 0, sin error.
func TestApply_SaidaMayorAlStockHaceClampACero(t *testing.T) {
	assert.Equal(t, 0, ledger.Apply(8, entity.MovementTypeSaida, 20))
}

func TestApply_SaidaExactaDejaCero(t *testing.T) {
	assert.Equal(t, 0, ledger.Apply(5, entity.MovementTypeSaida, 5))
}

func TestApply_EntradaSobreCero(t *testing.T) {
	assert.Equal(t, 7, ledger.Apply(0, entity.MovementTypeEntrada, 7))
}

// ──────────────────────────────────────────────────────────────────────────────
// LowStock: alerta ⇔ quantity <= minQuantity, orden de entrada preservado
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_SoloProductosEnOBajoElMinimo(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Quantity: 2, MinQuantity: 4},
		{ID: "2", Quantity: 10, MinQuantity: 5},
		{ID: "3", Quantity: 3, MinQuantity: 3}, // igual al mínimo también alerta
	}

	alerts := ledger.LowStock(products)

	assert.Len(t, alerts, 2)
	assert.Equal(t, "1", alerts[0].ID)
	assert.Equal(t, "3", alerts[1].ID)
}

func TestLowStock_CatalogoVacio(t *testing.T) {
	assert.Empty(t, ledger.LowStock(nil))
}

func TestLowStock_NoMutaLaEntrada(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Quantity: 1, MinQuantity: 5},
		{ID: "2", Quantity: 9, MinQuantity: 5},
	}

	_ = ledger.LowStock(products)

	assert.Equal(t, 1, products[0].Quantity)
	assert.Equal(t, 9, products[1].Quantity)
}
