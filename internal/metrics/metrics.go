// internal/metrics/metrics.go
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Process-wide counters. The edge bridge is a single pipeline, so plain
// package-level collectors are enough; no per-unit labeling needed.
var (
	PollsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edge_polls_total",
		Help: "Completed sensor read passes.",
	})

	RegisterReadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edge_register_read_failures_total",
		Help: "Single-register read attempts that failed.",
	})

	SuccessfulReads = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "edge_successful_reads",
		Help: "Registers read successfully in the most recent pass.",
	})

	PublishesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edge_publishes_total",
		Help: "Data payloads accepted by the broker.",
	})

	PublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edge_publish_failures_total",
		Help: "Data payloads the broker refused.",
	})

	LinkReconnectAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edge_link_reconnect_attempts_total",
		Help: "Network link reconnect attempts.",
	})

	SessionReconnects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edge_session_reconnects_total",
		Help: "Pub/sub sessions established (initial connect included).",
	})
)

// Serve exposes /metrics and /healthz on addr. Blocks; run it on its own
// goroutine so the scheduler loop stays untouched.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}
