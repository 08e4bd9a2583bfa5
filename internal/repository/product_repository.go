package repository

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
}

// CatalogRepository provides both products and categories
type CatalogRepository interface {
	ProductRepository
	CategoryRepository
}

// InMemoryCatalogRepository implements CatalogRepository over a fixed dataset.
// Products keep their fixture order; that order is the catalog's default order.
type InMemoryCatalogRepository struct {
	products   []models.Product
	index      map[string]int
	categories []models.Category
}

// NewInMemoryCatalogRepository creates a repository seeded with the store catalog
func NewInMemoryCatalogRepository() *InMemoryCatalogRepository {
	return NewInMemoryCatalogRepositoryWith(seedProducts(), seedCategories())
}

// NewInMemoryCatalogRepositoryWith creates a repository over the given dataset
func NewInMemoryCatalogRepositoryWith(products []models.Product, categories []models.Category) *InMemoryCatalogRepository {
	index := make(map[string]int, len(products))
	for i, p := range products {
		if _, exists := index[p.ID]; !exists {
			index[p.ID] = i
		}
	}

	return &InMemoryCatalogRepository{
		products:   products,
		index:      index,
		categories: categories,
	}
}

// GetAll returns all products in catalog order
func (r *InMemoryCatalogRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryCatalogRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	i, exists := r.index[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	product := r.products[i]
	return &product, nil
}

// GetCategories returns the top-level categories with their subcategories
func (r *InMemoryCatalogRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, len(r.categories))
	copy(categories, r.categories)
	return categories, nil
}
