package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/userhub/internal/middleware"
	"github.com/ferdiebergado/userhub/internal/pkg/web"
)

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	const header = "X-Handler-Called"

	type member struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	tests := []struct {
		name     string
		code     int
		payload  []byte
		bodySize int64
		header   string
	}{
		{"Valid payload", http.StatusOK, []byte(`{"id":7,"name":"juan"}`), 32, "true"},
		{"Payload too large", http.StatusRequestEntityTooLarge, []byte(`{"id": 13, "name": "agnis"}`), 4, ""},
		{"Unknown field", http.StatusUnprocessableEntity, []byte(`{"id": 12, "name": "yaye", "is_admin": true}`), 64, ""},
		{"Extra payload", http.StatusBadRequest, []byte(`{"id": 2, "name": "bibi"}{"id": 6, "name": "aremondeng"}`), 64, ""},
		{"Incorrect data type", http.StatusBadRequest, []byte(`{"id": "13", "name": "agnis"}`), 64, ""},
		{"Malformed payload", http.StatusBadRequest, []byte(`{"name"`), 64, ""},
		{"Array passed to string", http.StatusBadRequest, []byte(`{"id": 1, "name": ["agnis", "yaye"]}`), 64, ""},
		{"Empty body", http.StatusBadRequest, []byte(``), 64, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				params, err := web.ParamsFromContext[member](r.Context())
				if err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}

				w.Header().Set(header, "true")
				w.WriteHeader(http.StatusOK)
				if err := json.NewEncoder(w).Encode(&params); err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
			})

			body := bytes.NewBuffer(tt.payload)
			req := httptest.NewRequest(http.MethodPost, "/", body)
			rec := httptest.NewRecorder()
			mw := middleware.DecodePayload[member](tt.bodySize)(handler)
			mw.ServeHTTP(rec, req)

			gotCode, wantCode := rec.Code, tt.code
			if gotCode != wantCode {
				t.Errorf("rec.Code = %d, want: %d", gotCode, wantCode)
			}

			gotHeader, wantHeader := rec.Header().Get(header), tt.header
			if gotHeader != wantHeader {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", header, gotHeader, wantHeader)
			}

			gotBody := strings.TrimSuffix(rec.Body.String(), "\n")
			wantBody := string(tt.payload)
			if tt.header == "true" && gotBody != wantBody {
				t.Errorf("rec.Body.String() = %q, want: %q", gotBody, wantBody)
			}
		})
	}
}
