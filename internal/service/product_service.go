package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/catalog"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/repository"
)

// CatalogParams is one catalog view request: the page-level category and
// search parameters plus the facet state and sort order.
type CatalogParams struct {
	Category string
	Search   string
	Sort     string
	Filters  models.FilterOptions
}

// CatalogResult is the visible product list with the state that produced it
type CatalogResult struct {
	Products      []models.Product     `json:"products"`
	Total         int                  `json:"total"`
	Search        string               `json:"search,omitempty"`
	Sort          catalog.SortOrder    `json:"sort"`
	Filters       models.FilterOptions `json:"filters"`
	ActiveFilters int                  `json:"activeFilters"`
}

// ProductService handles business logic for products and categories
type ProductService struct {
	repo   repository.CatalogRepository
	tree   *catalog.Tree
	engine *catalog.Engine
}

// NewProductService creates a new product service. The category tree is
// loaded and validated once here.
func NewProductService(ctx context.Context, repo repository.CatalogRepository, engine *catalog.Engine) (*ProductService, error) {
	categories, err := repo.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	tree, err := catalog.NewTree(categories)
	if err != nil {
		return nil, fmt.Errorf("invalid category tree: %w", err)
	}

	return &ProductService{
		repo:   repo,
		tree:   tree,
		engine: engine,
	}, nil
}

// ListProducts returns all available products
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// SearchProducts returns the products matching term
func (s *ProductService) SearchProducts(ctx context.Context, term string) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Search(products, term), nil
}

// RelatedProducts returns up to four other products of the same category
func (s *ProductService) RelatedProducts(ctx context.Context, id string) ([]models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Related(products, product.ID, product.Category), nil
}

// PopularProducts returns the products shown on the home page: the first
// catalog.PopularLimit products in store order.
func (s *ProductService) PopularProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Popular(products, catalog.PopularLimit), nil
}

// Categories returns every category flattened depth-first
func (s *ProductService) Categories() []models.Category {
	return s.tree.Flatten()
}

// CategoryTree returns the top-level categories with nested subcategories
func (s *ProductService) CategoryTree() []models.Category {
	return s.tree.Nested()
}

// ProductsByCategory returns the products of a category and of all its
// descendants. Unknown categories have no products.
func (s *ProductService) ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	names := s.tree.SubtreeNames(categoryID)
	if len(names) == 0 {
		return []models.Product{}, nil
	}

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.InCategories(products, names), nil
}

// SeedFilters adds the page-level category parameter to filters. A category
// id selects that category and every descendant by name; any other value
// is taken as a category name.
func (s *ProductService) SeedFilters(filters models.FilterOptions, category string) models.FilterOptions {
	filters = filters.Normalize()
	if category == "" {
		return filters
	}

	names := s.tree.SubtreeNames(category)
	if len(names) == 0 {
		names = []string{category}
	}
	for _, name := range names {
		if !slices.Contains(filters.Categories, name) {
			filters = filters.ToggleCategory(name)
		}
	}
	return filters
}

// ToggleCategoryWithChildren toggles a category name together with the
// names of all its descendants.
func (s *ProductService) ToggleCategoryWithChildren(filters models.FilterOptions, name string) models.FilterOptions {
	filters = filters.Normalize()

	c, ok := s.tree.FindByName(name)
	if !ok {
		return filters.ToggleCategory(name)
	}

	descendants := s.tree.Descendants(c.ID)
	children := make([]string, 0, len(descendants))
	for _, d := range descendants {
		children = append(children, d.Name)
	}
	return filters.ToggleCategoryWithChildren(name, children)
}

// FilterProducts runs the filtering engine for a catalog view
func (s *ProductService) FilterProducts(ctx context.Context, params CatalogParams) (*CatalogResult, error) {
	order, err := catalog.ParseSortOrder(params.Sort)
	if err != nil {
		return nil, err
	}

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filters := s.SeedFilters(params.Filters, params.Category)

	visible, err := s.engine.Apply(products, catalog.Query{
		Search:  params.Search,
		Filters: filters,
		Sort:    order,
	})
	if err != nil {
		return nil, err
	}

	return &CatalogResult{
		Products:      visible,
		Total:         len(visible),
		Search:        params.Search,
		Sort:          order,
		Filters:       filters,
		ActiveFilters: filters.ActiveCount(),
	}, nil
}
