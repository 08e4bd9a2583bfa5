package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/calculator"
)

// CalculatorHandler prices lumber orders and keeps saved calculations
type CalculatorHandler struct {
	history *calculator.History
	log     *slog.Logger
}

// NewCalculatorHandler creates a new calculator handler
func NewCalculatorHandler(history *calculator.History, log *slog.Logger) *CalculatorHandler {
	return &CalculatorHandler{
		history: history,
		log:     log,
	}
}

// CalculatorOptions lists the accepted wood types with their price per m³
// and the treatments with their price multipliers
type CalculatorOptions struct {
	WoodTypes  map[string]float64 `json:"woodTypes"`
	Treatments map[string]float64 `json:"treatments"`
}

// Options handles GET /api/calculator/options
func (h *CalculatorHandler) Options(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, CalculatorOptions{
		WoodTypes:  calculator.WoodTypes(),
		Treatments: calculator.Treatments(),
	}, h.log)
}

// Calculate handles POST /api/calculator
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req calculator.Request
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	result, err := calculator.Calculate(req)
	if err != nil {
		h.writeCalcError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result, h.log)
}

// Save handles POST /api/calculator/saved
func (h *CalculatorHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req calculator.Request
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	record, err := h.history.CalculateAndSave(r.Context(), req)
	if err != nil {
		h.writeCalcError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, record, h.log)
}

// ListSaved handles GET /api/calculator/saved
func (h *CalculatorHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	records, err := h.history.List(r.Context())
	if err != nil {
		h.log.Error("failed to list saved calculations", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, records, h.log)
}

func (h *CalculatorHandler) writeCalcError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, calculator.ErrMissingDimensions),
		errors.Is(err, calculator.ErrInvalidDimensions),
		errors.Is(err, calculator.ErrInvalidQuantity),
		errors.Is(err, calculator.ErrInvalidDistance),
		errors.Is(err, calculator.ErrUnknownWoodType),
		errors.Is(err, calculator.ErrUnknownTreatment):
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
	default:
		h.log.Error("calculation failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
