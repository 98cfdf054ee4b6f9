package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/D2D-MarketplaceService/pkg/logger"
)

func TestAuth(t *testing.T) {
	var gotUserID string
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/drafts/d1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/drafts/d1", nil)
	req.Header.Set(HeaderUserID, " user-1 ")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "user-1", gotUserID)
}

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeHTTPMetrics struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (m *fakeHTTPMetrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, recordedRequest{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/services/{serviceId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services/42", nil))

	require.Len(t, m.requests, 1)
	assert.Equal(t, recordedRequest{
		method: http.MethodGet,
		route:  "/api/v1/services/{serviceId}",
		status: http.StatusNotFound,
	}, m.requests[0])
}

func newTestLimiter(t *testing.T, burst int, trustedProxies ...string) *RateLimiter {
	t.Helper()
	rl, err := NewRateLimiter(60, burst, trustedProxies, logger.NewNop())
	require.NoError(t, err)
	return rl
}

func TestRateLimiter(t *testing.T) {
	rl := newTestLimiter(t, 2)

	h := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(remoteAddr string, headers map[string]string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
		req.RemoteAddr = remoteAddr
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("198.51.100.7:1000", nil))
	assert.Equal(t, http.StatusOK, do("198.51.100.7:1001", nil))
	assert.Equal(t, http.StatusTooManyRequests, do("198.51.100.7:1002", nil))

	// Подмена заголовков не даёт новый лимит
	assert.Equal(t, http.StatusTooManyRequests, do("198.51.100.7:1003", map[string]string{HeaderUserID: "other-user"}))
	assert.Equal(t, http.StatusTooManyRequests, do("198.51.100.7:1004", map[string]string{"X-Forwarded-For": "203.0.113.9"}))

	// Лимит считается отдельно для каждого клиента
	assert.Equal(t, http.StatusOK, do("198.51.100.8:1000", nil))
}

func TestRateLimiter_ClientKey(t *testing.T) {
	rl := newTestLimiter(t, 1, "10.0.0.0/8", "192.0.2.10")

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  []string
		want       string
	}{
		{name: "direct client", remoteAddr: "198.51.100.7:1000", want: "ip:198.51.100.7"},
		{name: "untrusted peer forwarded header ignored", remoteAddr: "198.51.100.7:1000", forwarded: []string{"203.0.113.9"}, want: "ip:198.51.100.7"},
		{name: "trusted proxy", remoteAddr: "10.1.2.3:1000", forwarded: []string{"203.0.113.9"}, want: "ip:203.0.113.9"},
		{name: "spoofed leftmost entry", remoteAddr: "10.1.2.3:1000", forwarded: []string{"1.1.1.1, 203.0.113.9"}, want: "ip:203.0.113.9"},
		{name: "chain of trusted proxies", remoteAddr: "192.0.2.10:1000", forwarded: []string{"203.0.113.9", "10.0.0.5"}, want: "ip:203.0.113.9"},
		{name: "trusted proxy without header", remoteAddr: "10.1.2.3:1000", want: "ip:10.1.2.3"},
		{name: "garbage in header", remoteAddr: "10.1.2.3:1000", forwarded: []string{"not-an-ip"}, want: "ip:10.1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
			req.RemoteAddr = tt.remoteAddr
			for _, v := range tt.forwarded {
				req.Header.Add("X-Forwarded-For", v)
			}
			assert.Equal(t, tt.want, rl.clientKey(req))
		})
	}
}

func TestNewRateLimiter_InvalidProxy(t *testing.T) {
	_, err := NewRateLimiter(60, 1, []string{"10.0.0.0/33"}, logger.NewNop())
	assert.Error(t, err)

	_, err = NewRateLimiter(60, 1, []string{"proxy.local"}, logger.NewNop())
	assert.Error(t, err)
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	rl := newTestLimiter(t, 1)
	now := time.Now()

	assert.True(t, rl.allow("user:u1", now))
	assert.False(t, rl.allow("user:u1", now))

	later := now.Add(2 * idleLimiterTTL)
	assert.True(t, rl.allow("user:u2", later))

	rl.mu.Lock()
	_, kept := rl.clients["user:u1"]
	rl.mu.Unlock()
	assert.False(t, kept)
}
