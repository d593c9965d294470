package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/seoatlas/seoatlas/pkg/metrics"
)

// RequestMetrics counts every request by method, matched route and status.
// The route template (not the raw path) is used so ids don't explode the
// label cardinality.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
