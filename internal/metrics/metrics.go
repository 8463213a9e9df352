// Package metrics provides Prometheus instrumentation for the gateway.
//
// Metrics registered here:
//
//	media_gateway_logo_resolutions_total  : counter: resolutions by kind/provenance
//	media_gateway_provider_failures_total : counter: swallowed upstream failures by provider
//	media_gateway_title_suggestions_total : counter: suggestion requests by outcome
//	media_gateway_http_requests_total     : counter: requests by method/route/status
//	media_gateway_http_request_duration_seconds: histogram: latency by method/route
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LogoResolutions counts finished logo resolutions.
var LogoResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "media_gateway_logo_resolutions_total",
	Help: "Logo resolutions by media kind and provenance.",
}, []string{"kind", "provenance"})

// ProviderFailures counts upstream calls that failed and were treated as empty.
var ProviderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "media_gateway_provider_failures_total",
	Help: "Upstream provider failures recovered as empty results.",
}, []string{"provider"})

// TitleSuggestions counts suggestion requests; outcome is "ok" or "empty".
var TitleSuggestions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "media_gateway_title_suggestions_total",
	Help: "Title suggestion requests by outcome.",
}, []string{"outcome"})

// HTTPRequests counts HTTP requests by method, route template and status.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "media_gateway_http_requests_total",
	Help: "Total HTTP requests handled.",
}, []string{"method", "route", "status"})

// HTTPDuration tracks HTTP request latency.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "media_gateway_http_request_duration_seconds",
	Help:    "HTTP request latency in seconds.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route"})

// Handler returns the Prometheus HTTP handler for GET /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
