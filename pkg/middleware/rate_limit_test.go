package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/seoatlas/seoatlas/pkg/metrics"
	"github.com/stretchr/testify/require"
)

func newLimitedServer(limiter gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	g.Use(limiter)
	g.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return g
}

func hitFrom(g *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	g := newLimitedServer(RateLimitMiddleware(0.0001, 2))
	allowedBefore := testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory"))
	rejectedBefore := testutil.ToFloat64(metrics.RateLimitRejected.WithLabelValues("memory"))

	// distinct address per test; the limiter store is process-global
	addr := "10.1.0.1:1234"
	require.Equal(t, http.StatusOK, hitFrom(g, addr).Code)
	require.Equal(t, http.StatusOK, hitFrom(g, addr).Code)

	w := hitFrom(g, addr)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, allowedBefore+2, testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory")))
	require.Equal(t, rejectedBefore+1, testutil.ToFloat64(metrics.RateLimitRejected.WithLabelValues("memory")))
	require.Contains(t, w.Body.String(), "Rate limit exceeded")
	require.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestRateLimitIsPerClientIP(t *testing.T) {
	g := newLimitedServer(RateLimitMiddleware(0.0001, 1))

	require.Equal(t, http.StatusOK, hitFrom(g, "10.2.0.1:1234").Code)
	require.Equal(t, http.StatusTooManyRequests, hitFrom(g, "10.2.0.1:1234").Code)

	// a different client still has a full bucket
	require.Equal(t, http.StatusOK, hitFrom(g, "10.2.0.2:1234").Code)
}
