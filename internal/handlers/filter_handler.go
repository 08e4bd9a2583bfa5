package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/catalog"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/service"
)

// FacetValue is a facet value given either as a JSON string or a number
type FacetValue string

// UnmarshalJSON accepts "25" and 25 alike
func (v *FacetValue) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FacetValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = FacetValue(n.String())
	return nil
}

// ToggleRequest is one facet control interaction applied to the current
// filter state. Exactly one of WoodGroup or Facet is expected.
type ToggleRequest struct {
	Filters      models.FilterOptions `json:"filters"`
	Facet        string               `json:"facet,omitempty"`
	Value        FacetValue           `json:"value,omitempty"`
	WithChildren bool                 `json:"withChildren,omitempty"`
	WoodGroup    string               `json:"woodGroup,omitempty"`
	Clear        bool                 `json:"clear,omitempty"`
}

// ToggleResponse is the new filter state
type ToggleResponse struct {
	Filters       models.FilterOptions `json:"filters"`
	ActiveFilters int                  `json:"activeFilters"`
}

// FilterHandler serves facet values and filter state transitions
type FilterHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewFilterHandler creates a new filter handler
func NewFilterHandler(service *service.ProductService, logger *slog.Logger) *FilterHandler {
	return &FilterHandler{
		service: service,
		logger:  logger,
	}
}

// Options handles GET /api/filters/options
func (h *FilterHandler) Options(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, catalog.DefaultFacetOptions(), h.logger)
}

// Toggle handles POST /api/filters/toggle
// The submitted filter state is never modified; the response carries a new one.
func (h *FilterHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warn("failed to decode toggle request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	filters, err := h.apply(req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownFacet):
			WriteError(w, http.StatusBadRequest, "Unknown facet", h.logger)
		case errors.Is(err, catalog.ErrInvalidFacetValue):
			WriteError(w, http.StatusBadRequest, "Invalid facet value", h.logger)
		case errors.Is(err, catalog.ErrUnknownWoodGroup):
			WriteError(w, http.StatusBadRequest, "Unknown wood group", h.logger)
		default:
			h.logger.Error("failed to toggle filter", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	WriteJSON(w, http.StatusOK, ToggleResponse{
		Filters:       filters,
		ActiveFilters: filters.ActiveCount(),
	}, h.logger)
}

func (h *FilterHandler) apply(req ToggleRequest) (models.FilterOptions, error) {
	filters := req.Filters.Normalize()

	if req.WoodGroup != "" {
		group, err := catalog.WoodGroup(req.WoodGroup)
		if err != nil {
			return filters, err
		}
		return filters.ToggleWoodGroup(group), nil
	}

	facet, err := catalog.ParseFacet(req.Facet)
	if err != nil {
		return filters, err
	}

	switch {
	case req.Clear:
		return catalog.Clear(filters, facet)
	case req.Value == "":
		return filters, catalog.ErrInvalidFacetValue
	case facet == catalog.FacetCategories && req.WithChildren:
		return h.service.ToggleCategoryWithChildren(filters, string(req.Value)), nil
	default:
		return catalog.Toggle(filters, facet, string(req.Value))
	}
}
