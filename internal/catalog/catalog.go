// Package catalog is the read-only product catalog shown to visitors.
package catalog

import (
	"slices"

	"github.com/gauravsoni97/preservespecialmoments/internal/domain"
)

// All is the synthetic category meaning "no filter".
const All = "All"

// Catalog is built once at startup and never mutated afterwards, so it is
// safe for concurrent readers.
type Catalog struct {
	products   []domain.Product
	byID       map[int64]int
	categories []string
	reviews    []domain.Review
}

func New(products []domain.Product, reviews []domain.Review) *Catalog {
	c := &Catalog{
		products: slices.Clone(products),
		byID:     make(map[int64]int, len(products)),
		reviews:  slices.Clone(reviews),
	}

	c.categories = []string{All}
	seen := map[string]bool{All: true}
	for i, p := range c.products {
		c.byID[p.ID] = i
		if !seen[p.Category] {
			seen[p.Category] = true
			c.categories = append(c.categories, p.Category)
		}
	}
	return c
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []domain.Product {
	return slices.Clone(c.products)
}

// Categories returns the distinct categories in order of first appearance,
// prefixed with All.
func (c *Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

// Filter returns the products of the given category. Matching is exact and
// case-sensitive; an unknown category yields an empty slice.
func (c *Catalog) Filter(category string) []domain.Product {
	if category == All {
		return c.Products()
	}
	filtered := make([]domain.Product, 0)
	for _, p := range c.products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Product looks up a product by id.
func (c *Catalog) Product(id int64) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Reviews() []domain.Review {
	return slices.Clone(c.reviews)
}
