package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gauravsoni97/preservespecialmoments/internal/domain"
	db "github.com/gauravsoni97/preservespecialmoments/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *db.Repository {
	// Use in-memory database for tests
	repo, err := db.NewRepository(":memory:")
	require.NoError(t, err, "failed to create test repository")

	require.NoError(t, repo.RunMigrations(), "failed to run migrations")
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestGetAllProducts_Returns6AfterMigrations(t *testing.T) {
	repo := setupTestDB(t)

	products, err := repo.GetAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 6)

	for i, p := range products {
		assert.Equal(t, int64(i+1), p.ID, "products are returned in catalog order")
		assert.True(t, p.Price.IsPositive())
		assert.NotEmpty(t, p.Materials)
	}
}

func TestGetAllProducts_ImagesAndMaterials(t *testing.T) {
	repo := setupTestDB(t)

	products, err := repo.GetAllProducts(context.Background())
	require.NoError(t, err)

	first := products[0]
	assert.Equal(t, "Memorial Rose Coaster Set", first.Name)
	assert.True(t, first.Price.Equal(decimal.NewFromInt(45)))
	assert.Len(t, first.Images, 2)
	assert.Equal(t, []string{"Epoxy Resin", "Dried Roses", "Gold Flakes"}, first.Materials)
	assert.True(t, first.Customizable)

	// product 2 has no additional images
	assert.Empty(t, products[1].Images)
	assert.Len(t, products[1].Gallery(), 1)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	repo := setupTestDB(t)

	require.NoError(t, repo.RunMigrations())

	products, err := repo.GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestGetAllProducts_CancelledContext(t *testing.T) {
	repo := setupTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetAllProducts(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetReviews(t *testing.T) {
	repo := setupTestDB(t)

	reviews, err := repo.GetReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 4)
	assert.Equal(t, "Sarah Johnson", reviews[0].Author)
	for _, r := range reviews {
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
	}
}

func TestLoadCatalog(t *testing.T) {
	repo := setupTestDB(t)

	c, err := db.LoadCatalog(context.Background(), repo)
	require.NoError(t, err)

	assert.Len(t, c.Products(), 6)
	assert.Equal(t, []string{"All", "Memorial", "Home Decor", "Bowls", "Wall Art"}, c.Categories())
	assert.Len(t, c.Filter("Bowls"), 2)
	assert.Len(t, c.Reviews(), 4)
}

type fakeRepo struct {
	products   []domain.Product
	reviewsErr error
}

func (f *fakeRepo) GetAllProducts(context.Context) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeRepo) GetReviews(context.Context) ([]domain.Review, error) {
	return nil, f.reviewsErr
}

func TestLoadCatalog_ReaderOnly(t *testing.T) {
	repo := &fakeRepo{products: []domain.Product{{ID: 7, Name: "Geode Coasters", Category: "Home Decor"}}}

	c, err := db.LoadCatalog(context.Background(), repo)
	require.NoError(t, err)
	p, ok := c.Product(7)
	require.True(t, ok)
	assert.Equal(t, "Geode Coasters", p.Name)

	repo.reviewsErr = errors.New("disk I/O error")
	_, err = db.LoadCatalog(context.Background(), repo)
	assert.ErrorIs(t, err, repo.reviewsErr)
	assert.Contains(t, err.Error(), "load reviews")
}
