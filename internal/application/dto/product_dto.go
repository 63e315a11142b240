package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
// El id y los timestamps los asigna el caso de uso, no el caller.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	SKU            string          `json:"sku"`
	Quantity       int             `json:"quantity"`
	MinQuantity    int             `json:"min_quantity"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	Specifications string          `json:"specifications"`
}

// UpdateProductRequest entrada para actualizar un producto. Merge por campo:
// los campos presentes sobreescriben, los ausentes se conservan.
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	Category       *string          `json:"category"`
	SKU            *string          `json:"sku"`
	Quantity       *int             `json:"quantity"`
	MinQuantity    *int             `json:"min_quantity"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price"`
	SalePrice      *decimal.Decimal `json:"sale_price"`
	Specifications *string          `json:"specifications"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	SKU            string          `json:"sku"`
	Quantity       int             `json:"quantity"`
	MinQuantity    int             `json:"min_quantity"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	Specifications string          `json:"specifications"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// NewProductResponse convierte la entidad al DTO de salida.
func NewProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		SKU:            p.SKU,
		Quantity:       p.Quantity,
		MinQuantity:    p.MinQuantity,
		PurchasePrice:  p.PurchasePrice,
		SalePrice:      p.SalePrice,
		Specifications: p.Specifications,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// NewProductResponses convierte un slice de entidades.
func NewProductResponses(products []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}
