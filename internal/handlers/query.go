package handlers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/catalog"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
	"github.com/mitchellh/mapstructure"
)

// parseFilterQuery decodes facet query parameters into FilterOptions.
// Every facet accepts repeated keys. Numeric facets also accept
// comma-separated values, so ?thicknesses=25&thicknesses=50 and
// ?thicknesses=25,50 are equivalent; text values are taken whole since
// names may contain commas. Repeated values are dropped.
func parseFilterQuery(values url.Values) (models.FilterOptions, error) {
	raw := make(map[string]any)
	for _, facet := range catalog.Facets {
		vals, ok := values[string(facet)]
		if !ok {
			continue
		}
		var list []string
		for _, v := range vals {
			parts := []string{v}
			if facet.Numeric() {
				parts = strings.Split(v, ",")
			}
			for _, part := range parts {
				if part = strings.TrimSpace(part); part != "" {
					list = append(list, part)
				}
			}
		}
		raw[string(facet)] = list
	}

	opts := models.NewFilterOptions()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           &opts,
	})
	if err != nil {
		return opts, err
	}
	if err := decoder.Decode(raw); err != nil {
		return opts, fmt.Errorf("%w: %v", catalog.ErrInvalidFacetValue, err)
	}
	return opts.Normalize(), nil
}
