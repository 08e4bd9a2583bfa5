package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/catalog"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/repository"
)

func newTestProductService(t *testing.T) *ProductService {
	t.Helper()

	engine, err := catalog.NewEngine("ru")
	if err != nil {
		t.Fatalf("NewEngine() unexpected error = %v", err)
	}
	svc, err := NewProductService(context.Background(), repository.NewInMemoryCatalogRepository(), engine)
	if err != nil {
		t.Fatalf("NewProductService() unexpected error = %v", err)
	}
	return svc
}

func productIDs(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestNewProductService_RejectsBrokenTree(t *testing.T) {
	engine, _ := catalog.NewEngine("ru")
	repo := repository.NewInMemoryCatalogRepositoryWith(nil, []models.Category{
		{ID: "a", Name: "A", ParentID: "missing"},
	})

	_, err := NewProductService(context.Background(), repo, engine)
	if !errors.Is(err, catalog.ErrUnknownParent) {
		t.Errorf("NewProductService() error = %v, want ErrUnknownParent", err)
	}
}

func TestProductService_FilterProducts(t *testing.T) {
	svc := newTestProductService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		params  CatalogParams
		wantIDs []string
		wantErr error
	}{
		{
			name:    "child category id",
			params:  CatalogParams{Category: "beam"},
			wantIDs: []string{"2", "4", "11"},
		},
		{
			name:    "category given by name",
			params:  CatalogParams{Category: "Брус"},
			wantIDs: []string{"2", "4", "11"},
		},
		{
			name:    "child category sorted by price",
			params:  CatalogParams{Category: "beam", Sort: "price-asc"},
			wantIDs: []string{"11", "2", "4"},
		},
		{
			name:    "parent id expands to subtree",
			params:  CatalogParams{Category: "lumber", Filters: models.FilterOptions{WoodTypes: []string{"Дуб"}}},
			wantIDs: []string{"5"},
		},
		{
			name:    "search combined with category",
			params:  CatalogParams{Category: "paints", Search: "  дуба "},
			wantIDs: []string{"22"},
		},
		{
			name:    "unknown category name matches nothing",
			params:  CatalogParams{Category: "Мебель"},
			wantIDs: []string{},
		},
		{
			name:    "unknown sort order",
			params:  CatalogParams{Sort: "popularity"},
			wantErr: catalog.ErrInvalidSortOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.FilterProducts(ctx, tt.params)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FilterProducts() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FilterProducts() unexpected error = %v", err)
			}
			if ids := productIDs(got.Products); !slices.Equal(ids, tt.wantIDs) {
				t.Errorf("FilterProducts() ids = %v, want %v", ids, tt.wantIDs)
			}
			if got.Total != len(got.Products) {
				t.Errorf("Total = %d, want %d", got.Total, len(got.Products))
			}
		})
	}
}

func TestProductService_FilterProductsReportsSeededFilters(t *testing.T) {
	svc := newTestProductService(t)

	got, err := svc.FilterProducts(context.Background(), CatalogParams{Category: "lumber"})
	if err != nil {
		t.Fatalf("FilterProducts() unexpected error = %v", err)
	}
	if len(got.Products) != 12 {
		t.Errorf("expected 12 lumber products, got %d", len(got.Products))
	}
	if got.ActiveFilters != 6 {
		t.Errorf("ActiveFilters = %d, want 6 (parent and five children)", got.ActiveFilters)
	}
	if got.Sort != catalog.SortDefault {
		t.Errorf("Sort = %q, want default", got.Sort)
	}
}

func TestProductService_ProductsByCategory(t *testing.T) {
	svc := newTestProductService(t)
	ctx := context.Background()

	parent, err := svc.ProductsByCategory(ctx, "lumber")
	if err != nil {
		t.Fatalf("ProductsByCategory() unexpected error = %v", err)
	}
	parentIDs := productIDs(parent)

	// every child's products are included in the parent's
	for _, child := range []string{"edged-board", "beam", "planed-board", "lining", "plywood"} {
		products, err := svc.ProductsByCategory(ctx, child)
		if err != nil {
			t.Fatalf("ProductsByCategory(%s) unexpected error = %v", child, err)
		}
		if len(products) == 0 {
			t.Errorf("ProductsByCategory(%s) is empty", child)
		}
		for _, p := range products {
			if !slices.Contains(parentIDs, p.ID) {
				t.Errorf("product %s of %s missing from parent", p.ID, child)
			}
		}
	}

	unknown, err := svc.ProductsByCategory(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("ProductsByCategory() unexpected error = %v", err)
	}
	if len(unknown) != 0 {
		t.Errorf("unknown category returned %d products", len(unknown))
	}
}

func TestProductService_RelatedProducts(t *testing.T) {
	svc := newTestProductService(t)
	ctx := context.Background()

	related, err := svc.RelatedProducts(ctx, "2")
	if err != nil {
		t.Fatalf("RelatedProducts() unexpected error = %v", err)
	}
	if ids := productIDs(related); !slices.Equal(ids, []string{"4", "11"}) {
		t.Errorf("RelatedProducts() ids = %v", ids)
	}

	if _, err := svc.RelatedProducts(ctx, "999"); !errors.Is(err, repository.ErrProductNotFound) {
		t.Errorf("RelatedProducts() error = %v, want ErrProductNotFound", err)
	}
}

func TestProductService_PopularProducts(t *testing.T) {
	svc := newTestProductService(t)

	popular, err := svc.PopularProducts(context.Background())
	if err != nil {
		t.Fatalf("PopularProducts() unexpected error = %v", err)
	}
	if ids := productIDs(popular); !slices.Equal(ids, []string{"1", "2", "3", "4", "5", "6"}) {
		t.Errorf("PopularProducts() ids = %v", ids)
	}
}

func TestProductService_Categories(t *testing.T) {
	svc := newTestProductService(t)

	flat := svc.Categories()
	if len(flat) != 11 {
		t.Fatalf("expected 11 categories, got %d", len(flat))
	}
	if flat[0].ID != "lumber" || flat[1].ID != "edged-board" {
		t.Errorf("subcategories must follow their parent, got %s, %s", flat[0].ID, flat[1].ID)
	}

	tree := svc.CategoryTree()
	if len(tree) != 6 {
		t.Fatalf("expected 6 top-level categories, got %d", len(tree))
	}
	if len(tree[0].SubCategories) != 5 {
		t.Errorf("expected 5 lumber subcategories, got %d", len(tree[0].SubCategories))
	}
}

func TestProductService_ToggleCategoryWithChildren(t *testing.T) {
	svc := newTestProductService(t)

	on := svc.ToggleCategoryWithChildren(models.NewFilterOptions(), "Пиломатериалы")
	if len(on.Categories) != 6 {
		t.Fatalf("expected parent and 5 children selected, got %v", on.Categories)
	}

	off := svc.ToggleCategoryWithChildren(on, "Пиломатериалы")
	if len(off.Categories) != 0 {
		t.Errorf("expected everything deselected, got %v", off.Categories)
	}

	leaf := svc.ToggleCategoryWithChildren(models.NewFilterOptions(), "Брус")
	if !slices.Equal(leaf.Categories, []string{"Брус"}) {
		t.Errorf("leaf toggle = %v", leaf.Categories)
	}
}

func TestProductService_SeedFiltersKeepsExistingSelection(t *testing.T) {
	svc := newTestProductService(t)

	base := models.NewFilterOptions().ToggleCategory("Брус")
	seeded := svc.SeedFilters(base, "beam")
	if !slices.Equal(seeded.Categories, []string{"Брус"}) {
		t.Errorf("seeding an already selected category changed it: %v", seeded.Categories)
	}
	if len(base.Categories) != 1 {
		t.Errorf("input was mutated: %v", base.Categories)
	}
}
