package repository

import (
	"context"

	"product-api/internal/model"
)

// ProductRepository serves the read-only catalog. Products are seeded once at
// construction and never mutated, so reads need no locking.
type ProductRepository struct {
	ordered []model.Product
	byID    map[string]model.Product
}

func NewProductRepository(products []model.Product) *ProductRepository {
	byID := make(map[string]model.Product, len(products))
	ordered := make([]model.Product, len(products))
	copy(ordered, products)
	for _, p := range ordered {
		byID[p.ID] = p
	}

	return &ProductRepository{ordered: ordered, byID: byID}
}

func (r *ProductRepository) List(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (model.Product, error) {
	product, exists := r.byID[id]
	if !exists {
		return model.Product{}, model.ErrProductNotFound
	}

	return product, nil
}

// SeedProducts is the default catalog loaded at startup.
func SeedProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Laptop", Description: "High-performance laptop", Price: 999.99, Stock: 10},
		{ID: "2", Name: "Mouse", Description: "Wireless mouse", Price: 29.99, Stock: 50},
		{ID: "3", Name: "Keyboard", Description: "Mechanical keyboard", Price: 89.99, Stock: 25},
		{ID: "4", Name: "Monitor", Description: "4K Monitor", Price: 399.99, Stock: 15},
	}
}
