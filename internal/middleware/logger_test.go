package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/lumber-store/backend/pkg/logger"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success", status: http.StatusOK, wantLevel: "INFO"},
		{name: "client error", status: http.StatusNotFound, wantLevel: "WARN"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.NewWithWriter(&buf, "debug")

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("hello"))
			})
			handler := chimiddleware.RequestID(Logger(log)(next))

			req := httptest.NewRequest(http.MethodGet, "/api/products?sort=price-asc", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("failed to decode log entry %q: %v", buf.String(), err)
			}

			if entry["level"] != tt.wantLevel {
				t.Errorf("expected level %s, got %v", tt.wantLevel, entry["level"])
			}
			if entry["status"] != float64(tt.status) {
				t.Errorf("expected status %d, got %v", tt.status, entry["status"])
			}
			if entry["bytes"] != float64(5) {
				t.Errorf("expected 5 bytes, got %v", entry["bytes"])
			}
			if entry["path"] != "/api/products" || entry["query"] != "sort=price-asc" {
				t.Errorf("unexpected path/query: %v %v", entry["path"], entry["query"])
			}
			if id, _ := entry["request_id"].(string); id == "" {
				t.Error("expected a request id")
			}
		})
	}
}
