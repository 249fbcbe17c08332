// Package metrics exposes store activity and HTTP traffic as Prometheus
// metrics on a private registry.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/wheel/internal/garage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Namespace = "wheel"

// Collector holds every metric the server publishes. It implements
// garage.Observer so a Store can feed it directly.
type Collector struct {
	registry *prometheus.Registry

	Decisions       *prometheus.CounterVec
	BudgetUpdates   prometheus.Counter
	MustHaveToggles *prometheus.CounterVec
	DeckSize        prometheus.Gauge

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	GRPCRequests *prometheus.CounterVec
}

// NewCollector builds a Collector with its own registry, so tests may
// create as many as they like.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "decisions_total",
			Help:      "Swipe decisions by outcome.",
		}, []string{"decision"}),
		BudgetUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "budget_updates_total",
			Help:      "Accepted budget changes.",
		}),
		MustHaveToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "musthave_toggles_total",
			Help:      "Must-have filter toggles by feature.",
		}, []string{"feature"}),
		DeckSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "swipe_deck_size",
			Help:      "Cars currently eligible for swiping.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status.",
		}, []string{"method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		GRPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "grpc_requests_total",
			Help:      "gRPC calls by method and status code.",
		}, []string{"method", "code"}),
	}

	c.registry.MustRegister(
		c.Decisions,
		c.BudgetUpdates,
		c.MustHaveToggles,
		c.DeckSize,
		c.HTTPRequests,
		c.HTTPDuration,
		c.GRPCRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Observe implements garage.Observer.
func (c *Collector) Observe(ev garage.Event) {
	switch ev.Kind {
	case garage.EventBudgetSet:
		c.BudgetUpdates.Inc()
	case garage.EventMustHaveToggled:
		c.MustHaveToggles.WithLabelValues(ev.MustHave.Key()).Inc()
	case garage.EventCarLiked:
		c.Decisions.WithLabelValues("like").Inc()
	case garage.EventCarNoped:
		c.Decisions.WithLabelValues("nope").Inc()
	}
	c.DeckSize.Set(float64(ev.DeckSize))
}

// SetDeckSize records the initial deck before any event arrives.
func (c *Collector) SetDeckSize(n int) {
	c.DeckSize.Set(float64(n))
}

// ObserveHTTP records one finished HTTP request.
func (c *Collector) ObserveHTTP(method string, status int, seconds float64) {
	c.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method).Observe(seconds)
}

// ObserveGRPC records one finished gRPC call.
func (c *Collector) ObserveGRPC(method, code string) {
	c.GRPCRequests.WithLabelValues(method, code).Inc()
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
