package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

func newProductRouter(t *testing.T) http.Handler {
	t.Helper()
	deps := newTestDeps(t)
	handler := NewProductHandler(deps.products, deps.log)

	r := chi.NewRouter()
	r.Get("/api/products", handler.ListProducts)
	r.Get("/api/products/popular", handler.PopularProducts)
	r.Get("/api/products/{productId}", handler.GetProduct)
	r.Get("/api/products/{productId}/related", handler.RelatedProducts)
	return r
}

func TestListProducts(t *testing.T) {
	r := newProductRouter(t)

	tests := []struct {
		name       string
		query      url.Values
		wantStatus int
		wantIDs    []string
	}{
		{
			name:       "no parameters returns store order",
			wantStatus: http.StatusOK,
		},
		{
			name:       "category id seeds subtree",
			query:      url.Values{"category": {"beam"}, "sort": {"price-desc"}},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"4", "2", "11"},
		},
		{
			name:       "repeated numeric facet keys",
			query:      url.Values{"thicknesses": {"25", "16"}, "woodTypes": {"Сосна"}},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"1", "7"},
		},
		{
			name:       "comma separated numeric values",
			query:      url.Values{"thicknesses": {"40,22"}},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"5", "6"},
		},
		{
			name:       "text value keeps its comma",
			query:      url.Values{"woodTypes": {"Дуб,Ясень"}},
			wantStatus: http.StatusOK,
			wantIDs:    []string{},
		},
		{
			name:       "search",
			query:      url.Values{"search": {"дуба"}},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"22"},
		},
		{
			name:       "non-numeric thickness",
			query:      url.Values{"thicknesses": {"thick"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown sort",
			query:      url.Values{"sort": {"random"}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/products?"+tt.query.Encode(), nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				var resp ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil || resp.Error == "" {
					t.Errorf("expected JSON error body, got %q", w.Body.String())
				}
				return
			}

			var result service.CatalogResult
			if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if tt.wantIDs == nil {
				if result.Total != 22 {
					t.Errorf("expected 22 products, got %d", result.Total)
				}
				return
			}

			ids := make([]string, 0, len(result.Products))
			for _, p := range result.Products {
				ids = append(ids, p.ID)
			}
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("expected ids %v, got %v", tt.wantIDs, ids)
			}
			for i := range ids {
				if ids[i] != tt.wantIDs[i] {
					t.Errorf("expected ids %v, got %v", tt.wantIDs, ids)
					break
				}
			}
		})
	}
}

func TestGetProduct_Success(t *testing.T) {
	r := newProductRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var product models.Product
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if product.ID != "5" || product.WoodType != "Дуб" {
		t.Errorf("unexpected product: %+v", product)
	}
	if product.Thickness == nil || *product.Thickness != 40 {
		t.Errorf("expected thickness 40, got %v", product.Thickness)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	r := newProductRouter(t)

	for _, path := range []string{"/api/products/999", "/api/products/999/related"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected status 404, got %d", path, w.Code)
		}
	}
}

func TestRelatedProducts(t *testing.T) {
	r := newProductRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/1/related", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var related []models.Product
	if err := json.NewDecoder(w.Body).Decode(&related); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(related) != 1 || related[0].ID != "3" {
		t.Errorf("expected only product 3 as related, got %+v", related)
	}
}

func TestPopularProducts(t *testing.T) {
	r := newProductRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/popular", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var popular []models.Product
	if err := json.NewDecoder(w.Body).Decode(&popular); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(popular) != 6 {
		t.Fatalf("expected 6 popular products, got %d", len(popular))
	}
	if popular[0].ID != "1" || popular[5].ID != "6" {
		t.Errorf("expected products 1..6 in store order, got %s..%s", popular[0].ID, popular[5].ID)
	}
}

func TestListProducts_RepeatedValuesCountOnce(t *testing.T) {
	r := newProductRouter(t)

	query := url.Values{"thicknesses": {"25", "25"}, "categories": {"Фанера, ОСБ", "Брус", "Брус"}}
	req := httptest.NewRequest(http.MethodGet, "/api/products?"+query.Encode(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var result service.CatalogResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(result.Filters.Thicknesses) != 1 {
		t.Errorf("expected one thickness, got %v", result.Filters.Thicknesses)
	}
	if len(result.Filters.Categories) != 2 || result.Filters.Categories[0] != "Фанера, ОСБ" {
		t.Errorf("expected the comma name kept whole and Брус once, got %v", result.Filters.Categories)
	}
	if result.ActiveFilters != 3 {
		t.Errorf("expected 3 active filters, got %d", result.ActiveFilters)
	}
}
