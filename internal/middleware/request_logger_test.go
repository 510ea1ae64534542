package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/userhub/internal/middleware"
)

func TestLogRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, incomingID string
	}{
		{"generates a request id", ""},
		{"keeps the caller's request id", "req-123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var handlerID string
			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				handlerID = w.Header().Get(middleware.HeaderRequestID)
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodPost, "/connect/User/getAll", http.NoBody)
			if tt.incomingID != "" {
				req.Header.Set(middleware.HeaderRequestID, tt.incomingID)
			}
			rec := httptest.NewRecorder()

			middleware.InjectWriter(middleware.LogRequest(handler)).ServeHTTP(rec, req)

			if rec.Code != http.StatusTeapot {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusTeapot)
			}

			gotID := rec.Header().Get(middleware.HeaderRequestID)
			if gotID == "" {
				t.Fatalf("rec.Header().Get(%q) is empty", middleware.HeaderRequestID)
			}

			if tt.incomingID != "" && gotID != tt.incomingID {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", middleware.HeaderRequestID, gotID, tt.incomingID)
			}

			if handlerID != gotID {
				t.Errorf("request id seen by handler = %q, want: %q", handlerID, gotID)
			}
		})
	}
}
