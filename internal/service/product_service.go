package service

import (
	"context"

	"product-api/internal/model"
)

type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
}

type ProductService struct {
	products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (model.Product, error) {
	return s.products.FindByID(ctx, id)
}
