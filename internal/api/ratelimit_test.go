package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowerlibrary/flower-server/internal/ratelimit"
)

func TestRateLimitMiddleware_PerClient(t *testing.T) {
	limiter := ratelimit.New(ratelimit.PerMinute(1), 1, 0)
	t.Cleanup(limiter.Stop)

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := RateLimitMiddleware(limiter, slog.New(slog.NewTextHandler(io.Discard, nil)))(ok)

	do := func(method, path, remote string) int {
		req := httptest.NewRequest(method, path, nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, do(http.MethodPost, "/api/persons", "10.0.0.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, do(http.MethodDelete, "/api/persons/1", "10.0.0.1:5001"))
	assert.Equal(t, http.StatusNoContent, do(http.MethodPost, "/api/persons", "10.0.0.2:5000"), "other clients keep their own budget")
	assert.Equal(t, http.StatusNoContent, do(http.MethodGet, "/api/persons", "10.0.0.1:5000"), "reads pass")
	assert.Equal(t, http.StatusNoContent, do(http.MethodPost, "/upload", "10.0.0.1:5000"), "non-api paths pass")
}

func TestRateLimitMiddleware_NilLimiter(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := RateLimitMiddleware(nil, slog.Default())(ok)

	for range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/persons", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.7:41234"
	assert.Equal(t, "192.168.1.7", getClientIP(req))

	req.RemoteAddr = "192.168.1.7"
	assert.Equal(t, "192.168.1.7", getClientIP(req))
}
