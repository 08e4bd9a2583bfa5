package models

import "slices"

// FilterOptions is the selected facet state of a catalog view.
// An empty list puts no constraint on its facet.
type FilterOptions struct {
	Categories        []string `json:"categories" mapstructure:"categories"`
	WoodTypes         []string `json:"woodTypes" mapstructure:"woodTypes"`
	Thicknesses       []int    `json:"thicknesses" mapstructure:"thicknesses"`
	Widths            []int    `json:"widths" mapstructure:"widths"`
	Lengths           []int    `json:"lengths" mapstructure:"lengths"`
	Grades            []string `json:"grades" mapstructure:"grades"`
	Moistures         []string `json:"moistures" mapstructure:"moistures"`
	SurfaceTreatments []string `json:"surfaceTreatments" mapstructure:"surfaceTreatments"`
	Purposes          []string `json:"purposes" mapstructure:"purposes"`
}

// NewFilterOptions returns a filter state with every facet empty
func NewFilterOptions() FilterOptions {
	return FilterOptions{
		Categories:        []string{},
		WoodTypes:         []string{},
		Thicknesses:       []int{},
		Widths:            []int{},
		Lengths:           []int{},
		Grades:            []string{},
		Moistures:         []string{},
		SurfaceTreatments: []string{},
		Purposes:          []string{},
	}
}

// FacetOptions lists the predefined values offered for each facet
type FacetOptions struct {
	WoodTypes         []string            `json:"woodTypes"`
	WoodGroups        map[string][]string `json:"woodGroups"`
	Thicknesses       []int               `json:"thicknesses"`
	Widths            []int               `json:"widths"`
	Lengths           []int               `json:"lengths"`
	Grades            []string            `json:"grades"`
	Moistures         []string            `json:"moistures"`
	SurfaceTreatments []string            `json:"surfaceTreatments"`
	Purposes          []string            `json:"purposes"`
}

// ActiveCount returns the total number of selected facet values
func (f FilterOptions) ActiveCount() int {
	return len(f.Categories) + len(f.WoodTypes) + len(f.Thicknesses) + len(f.Widths) +
		len(f.Lengths) + len(f.Grades) + len(f.Moistures) + len(f.SurfaceTreatments) + len(f.Purposes)
}

// Normalize replaces nil facet lists with empty ones and drops repeated
// values, keeping the first occurrence of each.
func (f FilterOptions) Normalize() FilterOptions {
	f.Categories = unique(f.Categories)
	f.WoodTypes = unique(f.WoodTypes)
	f.Thicknesses = unique(f.Thicknesses)
	f.Widths = unique(f.Widths)
	f.Lengths = unique(f.Lengths)
	f.Grades = unique(f.Grades)
	f.Moistures = unique(f.Moistures)
	f.SurfaceTreatments = unique(f.SurfaceTreatments)
	f.Purposes = unique(f.Purposes)
	return f
}

// The toggles below never modify the receiver's lists; each returns a
// filter state with fresh backing arrays for the facet it changes.

// ToggleCategory adds or removes a single category name
func (f FilterOptions) ToggleCategory(name string) FilterOptions {
	f.Categories = toggle(f.Categories, name)
	return f
}

// ToggleCategoryWithChildren toggles a parent category together with its
// children: if the parent is selected it and every child are removed,
// otherwise the parent and any missing children are added.
func (f FilterOptions) ToggleCategoryWithChildren(parent string, children []string) FilterOptions {
	if slices.Contains(f.Categories, parent) {
		f.Categories = removeAll(f.Categories, append([]string{parent}, children...))
		return f
	}
	f.Categories = addAll(f.Categories, append([]string{parent}, children...))
	return f
}

// ToggleWoodGroup selects every wood type of a group, or clears the group
// when all of its members are already selected.
func (f FilterOptions) ToggleWoodGroup(group []string) FilterOptions {
	allSelected := true
	for _, t := range group {
		if !slices.Contains(f.WoodTypes, t) {
			allSelected = false
			break
		}
	}
	if allSelected {
		f.WoodTypes = removeAll(f.WoodTypes, group)
		return f
	}
	f.WoodTypes = addAll(f.WoodTypes, group)
	return f
}

// ToggleWoodType adds or removes a wood type
func (f FilterOptions) ToggleWoodType(v string) FilterOptions {
	f.WoodTypes = toggle(f.WoodTypes, v)
	return f
}

// ToggleThickness adds or removes a thickness in mm
func (f FilterOptions) ToggleThickness(v int) FilterOptions {
	f.Thicknesses = toggle(f.Thicknesses, v)
	return f
}

// ToggleWidth adds or removes a width in mm
func (f FilterOptions) ToggleWidth(v int) FilterOptions {
	f.Widths = toggle(f.Widths, v)
	return f
}

// ToggleLength adds or removes a length in mm
func (f FilterOptions) ToggleLength(v int) FilterOptions {
	f.Lengths = toggle(f.Lengths, v)
	return f
}

// ToggleGrade adds or removes a grade
func (f FilterOptions) ToggleGrade(v string) FilterOptions {
	f.Grades = toggle(f.Grades, v)
	return f
}

// ToggleMoisture adds or removes a moisture level
func (f FilterOptions) ToggleMoisture(v string) FilterOptions {
	f.Moistures = toggle(f.Moistures, v)
	return f
}

// ToggleSurfaceTreatment adds or removes a surface treatment
func (f FilterOptions) ToggleSurfaceTreatment(v string) FilterOptions {
	f.SurfaceTreatments = toggle(f.SurfaceTreatments, v)
	return f
}

// TogglePurpose adds or removes a purpose
func (f FilterOptions) TogglePurpose(v string) FilterOptions {
	f.Purposes = toggle(f.Purposes, v)
	return f
}

func toggle[T comparable](list []T, v T) []T {
	if slices.Contains(list, v) {
		return removeAll(list, []T{v})
	}
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, v)
}

func addAll[T comparable](list []T, values []T) []T {
	out := make([]T, 0, len(list)+len(values))
	out = append(out, list...)
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func removeAll[T comparable](list []T, values []T) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if !slices.Contains(values, v) {
			out = append(out, v)
		}
	}
	return out
}

// unique returns list without repeats, or an empty list for nil. The
// input is returned as is when it has no repeats.
func unique[T comparable](list []T) []T {
	if list == nil {
		return []T{}
	}
	for i, v := range list {
		if slices.Contains(list[:i], v) {
			return addAll([]T{}, list)
		}
	}
	return list
}
