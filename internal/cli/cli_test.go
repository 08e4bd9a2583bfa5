package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/calculator"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/service"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	root := NewRootCommand()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCategories(t *testing.T) {
	out, err := run(t, "categories")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "edged-board") || !strings.Contains(out, "lumber") {
		t.Errorf("flat listing missing categories:\n%s", out)
	}

	out, err = run(t, "categories", "--tree")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "Пиломатериалы (lumber)\n  Доска обрезная (edged-board)") {
		t.Errorf("tree listing not indented:\n%s", out)
	}
}

func TestProducts(t *testing.T) {
	out, err := run(t, "products", "--category", "beam", "--sort", "price-asc", "--json")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var result service.CatalogResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if result.Total != 3 || result.Products[0].ID != "11" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestProducts_FacetFlags(t *testing.T) {
	out, err := run(t, "products", "--wood-type", "Сосна", "--thickness", "25,16")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "2 products") {
		t.Errorf("expected 2 products:\n%s", out)
	}
}

func TestProducts_Popular(t *testing.T) {
	out, err := run(t, "products", "--popular", "--json")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(out), &products); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(products) != 6 || products[0].ID != "1" {
		t.Errorf("unexpected popular products: %+v", products)
	}

	out, err = run(t, "products", "--popular")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "6 products") {
		t.Errorf("expected 6 products:\n%s", out)
	}
}

func TestProducts_InvalidSort(t *testing.T) {
	if _, err := run(t, "products", "--sort", "popular"); err == nil {
		t.Error("expected an error for an unknown sort order")
	}
}

func TestProduct(t *testing.T) {
	out, err := run(t, "product", "1")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "Доска обрезная 25х100х6000") || !strings.Contains(out, "25x100x6000 mm") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Related:") {
		t.Errorf("expected related products:\n%s", out)
	}

	if _, err := run(t, "product", "404"); err == nil {
		t.Error("expected an error for an unknown product")
	}
}

func TestCalc(t *testing.T) {
	out, err := run(t, "calc", "--length", "6000", "--width", "100", "--thickness", "25", "--quantity", "10", "--json")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var result calculator.Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if result.Total != 1800 {
		t.Errorf("Total = %f, want 1800", result.Total)
	}

	if _, err := run(t, "calc", "--wood", "bamboo", "--volume", "1"); err == nil {
		t.Error("expected an error for an unknown wood type")
	}
	if _, err := run(t, "calc"); err == nil {
		t.Error("expected an error without dimensions or volume")
	}
}
