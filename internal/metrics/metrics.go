package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	APIRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "newsreader_api_requests_total",
		Help: "Total API requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"})
	EventsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "newsreader_events_sent_total",
		Help: "Total behavioral events delivered",
	})
	EventsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "newsreader_events_failed_total",
		Help: "Total behavioral events that failed to send",
	})
	EventsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "newsreader_events_dropped_total",
		Help: "Total behavioral events dropped by the rate limiter",
	})
)

func init() {
	prometheus.MustRegister(APIRequests, EventsSent, EventsFailed, EventsDropped)
}

// StartServer exposes /metrics on addr when addr is non-empty.
func StartServer(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() { _ = http.ListenAndServe(addr, mux) }()
}
