// Package catalog holds the pure catalog logic: the category tree, product
// search, facet matching and the filtering engine that turns a product list,
// search term, filter state and sort order into the visible product list.
package catalog
