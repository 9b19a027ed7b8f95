package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test the origin validation
func TestOriginValidator(t *testing.T) {
	testcases := []struct {
		origin string
		allow  bool
	}{
		// programs send no Origin at all
		{"", true},
		// `null` should be denied
		{"null", false},
		// HTTPS for trezor.io should be allowed
		{"https://trezor.io", true},
		{"https://foo.trezor.io", true},
		{"https://bar.foo.trezor.io", true},
		// but HTTP for trezor.io should be denied
		{"http://trezor.io", false},
		{"http://foo.trezor.io", false},
		// Fakes should be denied
		{"https://faketrezor.io", false},
		{"https://foo.trezor.ioo", false},
		{"https://trezor.io.example.com", false},
		// pages on this machine are allowed
		{"http://localhost", true},
		{"http://localhost:8000", true},
		{"https://localhost:5999", true},
		{"http://127.0.0.1:21327", true},
		{"http://localhost.example.com", false},
		{"http://127.0.0.2:8000", false},
		{"http://localhost:123456", false},
	}

	validator := corsValidator()
	for _, tc := range testcases {
		assert.Equal(t, tc.allow, validator(tc.origin), "origin %q", tc.origin)
	}
}

func TestCORSPreflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight reached the handler")
	})
	h := CORS(corsValidator())(next)

	tests := []struct {
		name    string
		method  string
		headers string
		code    int
	}{
		{"allowed", "POST", "Content-Type", http.StatusOK},
		{"method", "DELETE", "", http.StatusMethodNotAllowed},
		{"header", "POST", "X-Secret", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/enumerate", nil)
			req.Header.Set("Origin", "http://localhost:8000")
			req.Header.Set("Access-Control-Request-Method", tt.method)
			if tt.headers != "" {
				req.Header.Set("Access-Control-Request-Headers", tt.headers)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
