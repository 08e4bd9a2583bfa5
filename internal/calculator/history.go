package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/storage"
	"github.com/google/uuid"
)

// SavedCalculationsKey is the list key holding every saved calculation
const SavedCalculationsKey = "savedCalculations"

// Record is a saved calculation
type Record struct {
	ID        string    `json:"id"`
	Request   Request   `json:"request"`
	Result    Result    `json:"result"`
	CreatedAt time.Time `json:"createdAt"`
}

// History appends calculations to a single list in the store
type History struct {
	store  storage.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewHistory creates a calculation history over store
func NewHistory(store storage.Store, logger *slog.Logger) *History {
	return &History{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// CalculateAndSave prices req and appends the result to the history
func (h *History) CalculateAndSave(ctx context.Context, req Request) (*Record, error) {
	normalized, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	result, err := Calculate(normalized)
	if err != nil {
		return nil, err
	}

	record := &Record{
		ID:        uuid.New().String(),
		Request:   normalized,
		Result:    result,
		CreatedAt: h.now().UTC(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode calculation: %w", err)
	}
	if err := h.store.Append(ctx, SavedCalculationsKey, data); err != nil {
		return nil, fmt.Errorf("failed to save calculation: %w", err)
	}

	return record, nil
}

// List returns saved calculations oldest first. Entries that cannot be
// decoded are skipped.
func (h *History) List(ctx context.Context) ([]Record, error) {
	entries, err := h.store.List(ctx, SavedCalculationsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load calculations: %w", err)
	}

	records := make([]Record, 0, len(entries))
	for i, e := range entries {
		var r Record
		if err := json.Unmarshal(e, &r); err != nil {
			h.logger.Warn("skipping malformed saved calculation", "index", i, "error", err)
			continue
		}
		records = append(records, r)
	}
	return records, nil
}
