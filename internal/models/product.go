package models

// Product represents a catalog item sold by the store.
// Lumber attributes are optional; a nil/empty value means the attribute
// does not apply to the product.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
	Unit        string  `json:"unit"`

	WoodType         string `json:"woodType,omitempty"`
	Thickness        *int   `json:"thickness,omitempty"`
	Width            *int   `json:"width,omitempty"`
	Length           *int   `json:"length,omitempty"`
	Grade            string `json:"grade,omitempty"`
	Moisture         string `json:"moisture,omitempty"`
	SurfaceTreatment string `json:"surfaceTreatment,omitempty"`
	Purpose          string `json:"purpose,omitempty"`
}

// Category is a node of the product category tree.
// Products reference categories by Name, not by ID.
type Category struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Image         string     `json:"image"`
	ParentID      string     `json:"parentId,omitempty"`
	SubCategories []Category `json:"subCategories,omitempty"`
}

// IsTopLevel reports whether the category has no parent
func (c Category) IsTopLevel() bool {
	return c.ParentID == ""
}
