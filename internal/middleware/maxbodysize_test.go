package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/tourbook/backend/internal/middleware"
)

// decodingHandler decodes a JSON tour body the way the tour handlers do and
// answers 413 when the decoder hits *http.MaxBytesError.
func decodingHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				return
			}
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// tourBody returns a JSON object of exactly n bytes.
func tourBody(n int) string {
	const prefix, suffix = `{"title":"`, `"}`
	return prefix + strings.Repeat("x", n-len(prefix)-len(suffix)) + suffix
}

func TestMaxBodySizeHandler(t *testing.T) {
	const limit = 64

	tests := []struct {
		name          string
		size          int
		contentLength int64 // -1 for a streamed body
		wantStatus    int
		wantCalled    bool
	}{
		{"under the limit", 40, 40, http.StatusOK, true},
		{"exactly the limit", limit, limit, http.StatusOK, true},
		{"declared length over the limit", 200, 200, http.StatusRequestEntityTooLarge, false},
		{"streamed body over the limit", 200, -1, http.StatusRequestEntityTooLarge, true},
		{"streamed body under the limit", 40, -1, http.StatusOK, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			h := middleware.NewMaxBodySizeHandler(limit)(decodingHandler(&called))

			req := httptest.NewRequest(http.MethodPost, "/tours", strings.NewReader(tourBody(tt.size)))
			req.ContentLength = tt.contentLength
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called, "whether the tour handler ran")
		})
	}
}
