package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusHooks records every hook event as a Prometheus metric. One value
// implements [ComputeHooks], [CacheHooks] and [HTTPHooks].
type PrometheusHooks struct {
	computeTotal    *prometheus.CounterVec
	computeDuration *prometheus.HistogramVec
	cacheEvents     *prometheus.CounterVec
	cacheBytes      *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// NewPrometheusHooks creates the metrics and registers them with reg.
func NewPrometheusHooks(reg prometheus.Registerer) *PrometheusHooks {
	h := &PrometheusHooks{
		computeTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domino_compute_total",
				Help: "Completed computations by operation and outcome",
			},
			[]string{"op", "outcome"},
		),
		computeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "domino_compute_duration_seconds",
				Help:    "Duration of computations",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"op"},
		),
		cacheEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domino_cache_events_total",
				Help: "Cache hits, misses and writes by operation",
			},
			[]string{"op", "event"},
		),
		cacheBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domino_cache_written_bytes_total",
				Help: "Bytes written to the cache by operation",
			},
			[]string{"op"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domino_http_requests_total",
				Help: "HTTP responses by route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "domino_http_request_duration_seconds",
				Help: "HTTP request handling time",
			},
			[]string{"method", "route"},
		),
	}
	reg.MustRegister(
		h.computeTotal, h.computeDuration,
		h.cacheEvents, h.cacheBytes,
		h.httpRequests, h.httpDuration,
	)
	return h
}

func (h *PrometheusHooks) OnComputeStart(context.Context, string, string) {}

func (h *PrometheusHooks) OnComputeComplete(_ context.Context, op string, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	h.computeTotal.WithLabelValues(op, outcome).Inc()
	h.computeDuration.WithLabelValues(op).Observe(d.Seconds())
}

func (h *PrometheusHooks) OnCacheHit(_ context.Context, op string) {
	h.cacheEvents.WithLabelValues(op, "hit").Inc()
}

func (h *PrometheusHooks) OnCacheMiss(_ context.Context, op string) {
	h.cacheEvents.WithLabelValues(op, "miss").Inc()
}

func (h *PrometheusHooks) OnCacheSet(_ context.Context, op string, size int) {
	h.cacheEvents.WithLabelValues(op, "set").Inc()
	h.cacheBytes.WithLabelValues(op).Add(float64(size))
}

func (h *PrometheusHooks) OnRequest(context.Context, string, string) {}

func (h *PrometheusHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	h.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ ComputeHooks = (*PrometheusHooks)(nil)
	_ CacheHooks   = (*PrometheusHooks)(nil)
	_ HTTPHooks    = (*PrometheusHooks)(nil)
)
