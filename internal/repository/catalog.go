package repository

import (
	"github.com/xtremegk/booking-api/internal/model"
	"github.com/xtremegk/booking-api/internal/store"
)

// CatalogRepo serves product and variant definitions from the products.json
// document. The catalog is loaded once at startup and is read-only for the
// lifetime of the process, so no locking is required.
type CatalogRepo struct {
	products []model.Product
	byID     map[string]model.Product
}

// NewCatalog builds a CatalogRepo from in-memory products. Used directly by
// tests and by LoadCatalog.
func NewCatalog(products []model.Product) *CatalogRepo {
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &CatalogRepo{products: products, byID: byID}
}

// LoadCatalog reads the product catalog document at path.
func LoadCatalog(path string) (*CatalogRepo, error) {
	var products []model.Product
	if err := store.ReadDocument(path, &products); err != nil {
		return nil, err
	}
	return NewCatalog(products), nil
}

// Products returns the full catalog in document order.
func (r *CatalogRepo) Products() []model.Product {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out
}

// Product resolves a product id.
func (r *CatalogRepo) Product(id string) (model.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return model.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Resolve resolves a product/variant id pair in one step.
func (r *CatalogRepo) Resolve(productID, variantID string) (model.Product, model.Variant, error) {
	p, err := r.Product(productID)
	if err != nil {
		return model.Product{}, model.Variant{}, err
	}
	v, ok := p.Variant(variantID)
	if !ok {
		return model.Product{}, model.Variant{}, ErrVariantNotFound
	}
	return p, v, nil
}
