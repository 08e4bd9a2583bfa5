package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	ErrInvalidSortOrder = errors.New("invalid sort order")
	ErrInvalidLocale    = errors.New("invalid locale")
)

// SortOrder selects how the filtered products are ordered
type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
	SortNameAsc   SortOrder = "name-asc"
	SortNameDesc  SortOrder = "name-desc"
)

// ParseSortOrder validates a sort order; the empty string means default
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case "", SortDefault:
		return SortDefault, nil
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return SortOrder(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, s)
}

// Query is the full input of one catalog recomputation
type Query struct {
	Search  string
	Filters models.FilterOptions
	Sort    SortOrder
}

// Engine computes the visible product list for a query.
// It holds no mutable state; Apply may be called concurrently.
type Engine struct {
	locale language.Tag
}

// NewEngine creates an engine comparing names with the collation rules of
// the given BCP 47 locale.
func NewEngine(locale string) (*Engine, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, locale, err)
	}
	return &Engine{locale: tag}, nil
}

// Locale returns the collation locale
func (e *Engine) Locale() language.Tag {
	return e.locale
}

// Apply narrows products by search term and facets, then sorts them.
// The input slice is never modified and the result is never nil.
func (e *Engine) Apply(products []models.Product, q Query) ([]models.Product, error) {
	order, err := ParseSortOrder(string(q.Sort))
	if err != nil {
		return nil, err
	}

	base := products
	if term := strings.TrimSpace(q.Search); term != "" {
		base = Search(products, term)
	}

	out := make([]models.Product, 0, len(base))
	for _, p := range base {
		if matchesFilters(p, q.Filters) {
			out = append(out, p)
		}
	}

	e.sort(out, order)
	return out, nil
}

// sort orders products in place. Ties keep their relative order.
func (e *Engine) sort(products []models.Product, order SortOrder) {
	switch order {
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortNameAsc, SortNameDesc:
		// Collators keep internal buffers and are not safe for concurrent use.
		c := collate.New(e.locale)
		sign := 1
		if order == SortNameDesc {
			sign = -1
		}
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return sign * c.CompareString(a.Name, b.Name)
		})
	}
}
