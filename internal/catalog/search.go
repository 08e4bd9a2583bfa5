package catalog

import (
	"strings"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
)

const (
	// RelatedLimit is the maximum number of related products returned
	RelatedLimit = 4
	// PopularLimit is the number of products shown as popular
	PopularLimit = 6
)

// Search returns the products whose name, description, category, wood type
// or purpose contains term, ignoring case. Products keep their input order.
func Search(products []models.Product, term string) []models.Product {
	needle := strings.ToLower(term)
	out := make([]models.Product, 0)
	for _, p := range products {
		if matchesTerm(p, needle) {
			out = append(out, p)
		}
	}
	return out
}

func matchesTerm(p models.Product, needle string) bool {
	fields := []string{p.Name, p.Description, p.Category, p.WoodType, p.Purpose}
	for _, field := range fields {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Related returns up to RelatedLimit products from the same category as the
// given one, excluding the product itself, in input order.
func Related(products []models.Product, id, category string) []models.Product {
	out := make([]models.Product, 0, RelatedLimit)
	for _, p := range products {
		if len(out) == RelatedLimit {
			break
		}
		if p.ID == id || p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Popular returns the first limit products in input order. A limit of zero
// or less returns none.
func Popular(products []models.Product, limit int) []models.Product {
	limit = max(0, min(limit, len(products)))
	out := make([]models.Product, limit)
	copy(out, products)
	return out
}

// InCategories returns the products whose category name is one of names,
// each product once and in input order.
func InCategories(products []models.Product, names []string) []models.Product {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}

	out := make([]models.Product, 0)
	for _, p := range products {
		if _, ok := set[p.Category]; ok {
			out = append(out, p)
		}
	}
	return out
}
