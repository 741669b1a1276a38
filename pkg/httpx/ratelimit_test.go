package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/upperhound/academy/pkg/httpx"
)

func TestIPKeyExtractor(t *testing.T) {
	t.Run("extracts from RemoteAddr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"

		ip := httpx.IPKeyExtractor(req)
		require.Equal(t, "192.168.1.1", ip)
	})

	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")

		ip := httpx.IPKeyExtractor(req)
		require.Equal(t, "203.0.113.1", ip)
	})

	t.Run("uses X-Real-IP if X-Forwarded-For absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Real-IP", "203.0.113.2")

		ip := httpx.IPKeyExtractor(req)
		require.Equal(t, "203.0.113.2", ip)
	})
}

func TestAccountKeyExtractor(t *testing.T) {
	t.Run("extracts account id from context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), httpx.CtxKeyAccountID, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
		req = req.WithContext(ctx)

		require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", httpx.AccountKeyExtractor(req))
	})

	t.Run("returns empty for unauthenticated requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		require.Equal(t, "", httpx.AccountKeyExtractor(req))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	config := httpx.RateLimitConfig{
		RequestsPerWindow: 2,
		Window:            time.Minute,
		Burst:             2,
	}

	handler := httpx.RateLimitByIP(config)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	doRequest := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/invitations/verify", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("allows burst then rejects", func(t *testing.T) {
		require.Equal(t, http.StatusOK, doRequest("198.51.100.1:1000"))
		require.Equal(t, http.StatusOK, doRequest("198.51.100.1:1000"))
		require.Equal(t, http.StatusTooManyRequests, doRequest("198.51.100.1:1000"))
	})

	t.Run("independent limits per key", func(t *testing.T) {
		require.Equal(t, http.StatusOK, doRequest("198.51.100.2:1000"))
	})

	t.Run("sets Retry-After on rejection", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/invitations/verify", nil)
		req.RemoteAddr = "198.51.100.1:1000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
	})
}
