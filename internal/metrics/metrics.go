// Package metrics exposes the Prometheus collectors of the RPC server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// rpcCallsTotal counts RPC calls by method and result code
	rpcCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "report_tracker_rpc_calls_total",
		Help: "Total RPC calls by method and result code",
	}, []string{"method", "code"})

	rpcCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_tracker_rpc_call_duration_seconds",
		Help:    "RPC call duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"method"})
)

// ObserveRPC records one finished call. code is "OK" on success.
func ObserveRPC(method, code string, d time.Duration) {
	rpcCallsTotal.WithLabelValues(method, code).Inc()
	rpcCallDuration.WithLabelValues(method).Observe(d.Seconds())
}

// Handler serves the default registry in the text exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
