package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/metrics"
)

// ProductUseCase casos de uso CRUD para productos. El stock (Quantity) lo
// mantiene el motor de movimientos; acá solo se fija el valor inicial.
type ProductUseCase struct {
	store repository.EntityStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store repository.EntityStore) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// Create crea un nuevo producto. El id y los timestamps los asigna este caso
// de uso (el caller no decide la identidad). El SKU no se exige único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.MinQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	uc.store.Lock()
	defer uc.store.Unlock()

	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Category:       in.Category,
		SKU:            in.SKU,
		Quantity:       in.Quantity,
		MinQuantity:    in.MinQuantity,
		PurchasePrice:  in.PurchasePrice,
		SalePrice:      in.SalePrice,
		Specifications: in.Specifications,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	products = append(products, product)
	if err := uc.store.SaveProducts(ctx, products); err != nil {
		return nil, err
	}
	metrics.ProductsCreatedTotal.Inc()
	resp := dto.NewProductResponse(product)
	return &resp, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			resp := dto.NewProductResponse(p)
			return &resp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve el catálogo completo en su orden de inserción.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.NewProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Update hace merge de los campos presentes sobre el producto y refresca
// UpdatedAt. Devuelve ErrNotFound si el id no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	uc.store.Lock()
	defer uc.store.Unlock()

	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, p := range products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrNotFound
	}

	p := products[idx]
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		p.Category = *in.Category
	}
	if in.SKU != nil {
		p.SKU = *in.SKU
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.Quantity = *in.Quantity
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.MinQuantity = *in.MinQuantity
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.SalePrice = *in.SalePrice
	}
	if in.Specifications != nil {
		p.Specifications = *in.Specifications
	}
	p.UpdatedAt = time.Now()
	products[idx] = p

	if err := uc.store.SaveProducts(ctx, products); err != nil {
		return nil, err
	}
	resp := dto.NewProductResponse(p)
	return &resp, nil
}

// Delete elimina un producto por ID y persiste. No toca los movimientos que
// lo referencian (quedan huérfanos a propósito). Borrar un id inexistente no
// es un error.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	uc.store.Lock()
	defer uc.store.Unlock()

	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return err
	}
	kept := products[:0]
	removed := false
	for _, p := range products {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return nil
	}
	if err := uc.store.SaveProducts(ctx, kept); err != nil {
		return err
	}
	metrics.ProductsDeletedTotal.Inc()
	return nil
}
