package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto del catálogo de electrónicos.
const (
	CategorySmartphone = "smartphone"
	CategoryNotebook   = "notebook"
	CategorySmartTV    = "smart-tv"
	CategoryTablet     = "tablet"
	CategoryAccessory  = "acessorio"
	CategoryOther      = "outro"
)

// Product representa un producto del catálogo con su nivel de stock actual.
// Quantity nunca es negativo: el motor de movimientos lo ajusta con clamp a 0.
// Los tags JSON siguen el layout persistido (camelCase) de los blobs.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	SKU            string          `json:"sku"`
	Quantity       int             `json:"quantity"`
	MinQuantity    int             `json:"minQuantity"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	SalePrice      decimal.Decimal `json:"salePrice"`
	Specifications string          `json:"specifications"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ValidCategory indica si la categoría pertenece al conjunto permitido.
func ValidCategory(c string) bool {
	switch c {
	case CategorySmartphone, CategoryNotebook, CategorySmartTV, CategoryTablet, CategoryAccessory, CategoryOther:
		return true
	}
	return false
}
