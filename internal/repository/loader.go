package repository

import (
	"context"
	"fmt"

	"github.com/gauravsoni97/preservespecialmoments/internal/catalog"
)

// LoadCatalog reads every product and review once and returns the in-memory
// catalog served for the lifetime of the process.
func LoadCatalog(ctx context.Context, repo RepoInterface) (*catalog.Catalog, error) {
	products, err := repo.GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	reviews, err := repo.GetReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	return catalog.New(products, reviews), nil
}
