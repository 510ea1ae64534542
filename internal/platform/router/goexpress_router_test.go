package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/userhub/internal/platform/router"
)

func TestGoexpressRouter_Group(t *testing.T) {
	t.Parallel()

	const header = "X-Group-Middleware"

	r := router.NewGoexpressRouter()
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Group("/connect/User", func(gr router.Router) {
		gr.Post("/getAll", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})
	}, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(header, "true")
			next.ServeHTTP(w, r)
		})
	})

	tests := []struct {
		name, method, path, header string
		code                       int
	}{
		{"top level route", http.MethodGet, "/health", "", http.StatusOK},
		{"grouped route", http.MethodPost, "/connect/User/getAll", "true", http.StatusAccepted},
		{"unknown grouped route", http.MethodPost, "/connect/User/delete", "true", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.code)
			}

			if got := rec.Header().Get(header); got != tt.header {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", header, got, tt.header)
			}
		})
	}
}
