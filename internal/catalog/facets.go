package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
)

var (
	ErrUnknownFacet      = errors.New("unknown facet")
	ErrInvalidFacetValue = errors.New("invalid facet value")
	ErrUnknownWoodGroup  = errors.New("unknown wood group")
)

// Facet names one of the nine filterable product attributes
type Facet string

const (
	FacetCategories        Facet = "categories"
	FacetWoodTypes         Facet = "woodTypes"
	FacetThicknesses       Facet = "thicknesses"
	FacetWidths            Facet = "widths"
	FacetLengths           Facet = "lengths"
	FacetGrades            Facet = "grades"
	FacetMoistures         Facet = "moistures"
	FacetSurfaceTreatments Facet = "surfaceTreatments"
	FacetPurposes          Facet = "purposes"
)

// Facets lists every facet in display order
var Facets = []Facet{
	FacetCategories,
	FacetWoodTypes,
	FacetThicknesses,
	FacetWidths,
	FacetLengths,
	FacetGrades,
	FacetMoistures,
	FacetSurfaceTreatments,
	FacetPurposes,
}

// ParseFacet validates a facet name
func ParseFacet(s string) (Facet, error) {
	f := Facet(s)
	if !slices.Contains(Facets, f) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFacet, s)
	}
	return f, nil
}

// Numeric reports whether the facet holds millimetre values
func (f Facet) Numeric() bool {
	return f == FacetThicknesses || f == FacetWidths || f == FacetLengths
}

// Toggle adds value to the facet's selection if absent and removes it if
// present. Numeric facets expect a base-10 integer.
func Toggle(opts models.FilterOptions, facet Facet, value string) (models.FilterOptions, error) {
	if facet.Numeric() {
		n, err := strconv.Atoi(value)
		if err != nil {
			return opts, fmt.Errorf("%w: %s expects an integer, got %q", ErrInvalidFacetValue, facet, value)
		}
		switch facet {
		case FacetThicknesses:
			return opts.ToggleThickness(n), nil
		case FacetWidths:
			return opts.ToggleWidth(n), nil
		default:
			return opts.ToggleLength(n), nil
		}
	}

	switch facet {
	case FacetCategories:
		return opts.ToggleCategory(value), nil
	case FacetWoodTypes:
		return opts.ToggleWoodType(value), nil
	case FacetGrades:
		return opts.ToggleGrade(value), nil
	case FacetMoistures:
		return opts.ToggleMoisture(value), nil
	case FacetSurfaceTreatments:
		return opts.ToggleSurfaceTreatment(value), nil
	case FacetPurposes:
		return opts.TogglePurpose(value), nil
	}
	return opts, fmt.Errorf("%w: %q", ErrUnknownFacet, facet)
}

// Clear empties a single facet
func Clear(opts models.FilterOptions, facet Facet) (models.FilterOptions, error) {
	switch facet {
	case FacetCategories:
		opts.Categories = []string{}
	case FacetWoodTypes:
		opts.WoodTypes = []string{}
	case FacetThicknesses:
		opts.Thicknesses = []int{}
	case FacetWidths:
		opts.Widths = []int{}
	case FacetLengths:
		opts.Lengths = []int{}
	case FacetGrades:
		opts.Grades = []string{}
	case FacetMoistures:
		opts.Moistures = []string{}
	case FacetSurfaceTreatments:
		opts.SurfaceTreatments = []string{}
	case FacetPurposes:
		opts.Purposes = []string{}
	default:
		return opts, fmt.Errorf("%w: %q", ErrUnknownFacet, facet)
	}
	return opts, nil
}

// Wood groups offered as one-click selections
const (
	WoodGroupConiferous = "coniferous"
	WoodGroupDeciduous  = "deciduous"
	WoodGroupExotic     = "exotic"
)

var woodGroups = map[string][]string{
	WoodGroupConiferous: {"Сосна", "Ель"},
	WoodGroupDeciduous:  {"Дуб", "Бук", "Ясень", "Ольха", "Берёза"},
	WoodGroupExotic:     {"Тик", "Махагони", "Венге", "Мербау", "Ироко", "Зебрано", "Палисандр"},
}

// WoodGroup returns the wood types of a named group
func WoodGroup(name string) ([]string, error) {
	group, ok := woodGroups[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWoodGroup, name)
	}
	return slices.Clone(group), nil
}

// DefaultFacetOptions returns the predefined values offered for each facet
func DefaultFacetOptions() models.FacetOptions {
	groups := make(map[string][]string, len(woodGroups))
	for name, types := range woodGroups {
		groups[name] = slices.Clone(types)
	}

	return models.FacetOptions{
		WoodTypes: []string{
			"Сосна", "Ель", "Дуб", "Бук", "Ясень", "Ольха", "Берёза",
			"Тик", "Махагони", "Венге", "Мербау", "Ироко", "Зебрано", "Палисандр",
		},
		WoodGroups:        groups,
		Thicknesses:       []int{16, 19, 22, 25, 30, 32, 40, 45, 50, 60, 70, 75, 80, 90, 100},
		Widths:            []int{60, 70, 75, 80, 90, 100, 110, 120, 125, 130, 150, 180, 200, 225, 250, 275},
		Lengths:           []int{3000, 4000, 6000, 6500, 7000},
		Grades:            []string{"0 сорт (высший)", "1 сорт", "2 сорт", "3 сорт"},
		Moistures:         []string{"Естественная влажность (18–22%)", "Камерная сушка (8–12%)"},
		SurfaceTreatments: []string{"Обрезная", "Необрезная", "Строганная", "Шпунтованная"},
		Purposes:          []string{"Строительство", "Отделка", "Мебельное производство", "Декор"},
	}
}

// matchesFilters applies every facet conjunctively. An empty selection
// passes; a missing optional attribute never satisfies a selection.
func matchesFilters(p models.Product, f models.FilterOptions) bool {
	return matchString(f.Categories, p.Category) &&
		matchString(f.WoodTypes, p.WoodType) &&
		matchInt(f.Thicknesses, p.Thickness) &&
		matchInt(f.Widths, p.Width) &&
		matchInt(f.Lengths, p.Length) &&
		matchString(f.Grades, p.Grade) &&
		matchString(f.Moistures, p.Moisture) &&
		matchString(f.SurfaceTreatments, p.SurfaceTreatment) &&
		matchString(f.Purposes, p.Purpose)
}

func matchString(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	return value != "" && slices.Contains(selected, value)
}

func matchInt(selected []int, value *int) bool {
	if len(selected) == 0 {
		return true
	}
	return value != nil && slices.Contains(selected, *value)
}
