package catalog

import (
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
)

var (
	ErrDuplicateCategory = errors.New("duplicate category id")
	ErrUnknownParent     = errors.New("category parent does not exist")
	ErrCategoryCycle     = errors.New("category tree contains a cycle")
)

// Tree is an immutable adjacency-list view of the category hierarchy.
// It is built once from the nested fixture and validated on construction.
type Tree struct {
	byID     map[string]models.Category
	children map[string][]string
	roots    []string
	order    []string
}

// NewTree indexes categories given either nested through SubCategories or
// flat with ParentID set (or both). Categories listed without a parent are
// top-level unless they appear nested under another category.
func NewTree(categories []models.Category) (*Tree, error) {
	t := &Tree{
		byID:     make(map[string]models.Category),
		children: make(map[string][]string),
	}

	parentOf := make(map[string]string)

	// Iterative walk over the nested input; the explicit stack keeps
	// fixture order (parents first, children in listed order).
	type frame struct {
		cat    models.Category
		parent string
	}
	stack := make([]frame, 0, len(categories))
	for i := len(categories) - 1; i >= 0; i-- {
		stack = append(stack, frame{cat: categories[i]})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, exists := t.byID[f.cat.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, f.cat.ID)
		}

		parent := f.cat.ParentID
		if parent == "" {
			parent = f.parent
		}
		if f.parent != "" && parent != f.parent {
			return nil, fmt.Errorf("%w: %s nested under %s but parentId is %s", ErrUnknownParent, f.cat.ID, f.parent, parent)
		}

		flat := f.cat
		flat.ParentID = parent
		flat.SubCategories = nil
		t.byID[flat.ID] = flat
		t.order = append(t.order, flat.ID)
		parentOf[flat.ID] = parent

		for i := len(f.cat.SubCategories) - 1; i >= 0; i-- {
			stack = append(stack, frame{cat: f.cat.SubCategories[i], parent: flat.ID})
		}
	}

	for _, id := range t.order {
		parent := parentOf[id]
		if parent == "" {
			t.roots = append(t.roots, id)
			continue
		}
		if _, exists := t.byID[parent]; !exists {
			return nil, fmt.Errorf("%w: %s references %s", ErrUnknownParent, id, parent)
		}
		t.children[parent] = append(t.children[parent], id)
	}

	if err := t.checkAcyclic(parentOf); err != nil {
		return nil, err
	}

	return t, nil
}

// checkAcyclic follows every parent chain; a chain longer than the number
// of categories, or one that revisits a node, is a cycle.
func (t *Tree) checkAcyclic(parentOf map[string]string) error {
	for _, id := range t.order {
		seen := map[string]bool{id: true}
		for p := parentOf[id]; p != ""; p = parentOf[p] {
			if seen[p] {
				return fmt.Errorf("%w: through %s", ErrCategoryCycle, p)
			}
			seen[p] = true
		}
	}
	return nil
}

// Len returns the number of categories
func (t *Tree) Len() int {
	return len(t.order)
}

// Get returns the category with the given ID, without subcategories
func (t *Tree) Get(id string) (models.Category, bool) {
	c, ok := t.byID[id]
	return c, ok
}

// Flatten returns every category depth-first, each parent directly
// followed by its subtree, top-level branches in fixture order.
func (t *Tree) Flatten() []models.Category {
	out := make([]models.Category, 0, len(t.order))
	visited := make(map[string]bool, len(t.order))

	stack := make([]string, 0, len(t.roots))
	for i := len(t.roots) - 1; i >= 0; i-- {
		stack = append(stack, t.roots[i])
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		out = append(out, t.byID[id])

		kids := t.children[id]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}

	return out
}

// Nested rebuilds the category tree with SubCategories populated
func (t *Tree) Nested() []models.Category {
	visited := make(map[string]bool, len(t.order))
	var build func(id string) models.Category
	build = func(id string) models.Category {
		visited[id] = true
		c := t.byID[id]
		for _, kid := range t.children[id] {
			if visited[kid] {
				continue
			}
			c.SubCategories = append(c.SubCategories, build(kid))
		}
		return c
	}

	out := make([]models.Category, 0, len(t.roots))
	for _, id := range t.roots {
		out = append(out, build(id))
	}
	return out
}

// Children returns the direct subcategories of id
func (t *Tree) Children(id string) []models.Category {
	kids := t.children[id]
	out := make([]models.Category, 0, len(kids))
	for _, kid := range kids {
		out = append(out, t.byID[kid])
	}
	return out
}

// Descendants returns every category below id in depth-first order.
// Unknown ids have no descendants.
func (t *Tree) Descendants(id string) []models.Category {
	var out []models.Category
	visited := map[string]bool{id: true}

	stack := make([]string, 0)
	kids := t.children[id]
	for i := len(kids) - 1; i >= 0; i-- {
		stack = append(stack, kids[i])
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		out = append(out, t.byID[cur])

		kids := t.children[cur]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}

	return out
}

// SubtreeNames returns the display names of id and all its descendants.
// The result is empty when id is unknown.
func (t *Tree) SubtreeNames(id string) []string {
	root, ok := t.byID[id]
	if !ok {
		return []string{}
	}
	names := []string{root.Name}
	for _, c := range t.Descendants(id) {
		names = append(names, c.Name)
	}
	return names
}

// FindByName returns the first category, in flattened order, with the given
// display name.
func (t *Tree) FindByName(name string) (models.Category, bool) {
	for _, id := range t.order {
		if c := t.byID[id]; c.Name == name {
			return c, true
		}
	}
	return models.Category{}, false
}
