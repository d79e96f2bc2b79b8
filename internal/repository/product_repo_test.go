package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"product-api/internal/model"
)

func TestProductRepositoryListKeepsSeedOrder(t *testing.T) {
	t.Parallel()

	repo := NewProductRepository(SeedProducts())

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 4)
	require.Equal(t, []string{"1", "2", "3", "4"}, []string{products[0].ID, products[1].ID, products[2].ID, products[3].ID})

	// Callers get a copy; mutating it must not corrupt the catalog.
	products[0].Name = "mutated"
	again, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Laptop", again[0].Name)
}

func TestProductRepositoryFindByID(t *testing.T) {
	t.Parallel()

	repo := NewProductRepository(SeedProducts())

	product, err := repo.FindByID(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, model.Product{
		ID:          "1",
		Name:        "Laptop",
		Description: "High-performance laptop",
		Price:       999.99,
		Stock:       10,
	}, product)
}

func TestProductRepositoryFindMissing(t *testing.T) {
	t.Parallel()

	repo := NewProductRepository(SeedProducts())

	_, err := repo.FindByID(context.Background(), "999")
	require.ErrorIs(t, err, model.ErrProductNotFound)
}
