package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "seoatlas", Name: "http_requests_total", Help: "HTTP requests by method, route and status."},
		[]string{"method", "route", "status"},
	)
	CascadeDeleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "seoatlas", Name: "cascade_deleted_total", Help: "Dependent documents removed by cascade deletes."},
		[]string{"parent", "dependent"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "seoatlas", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "seoatlas", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(CascadeDeleted)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
