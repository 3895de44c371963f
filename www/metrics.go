package www

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors updated by the handlers in this package.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	results  *prometheus.HistogramVec
}

// NewMetrics returns a `Metrics` whose collectors are registered with a new, private registry.
func NewMetrics() (*Metrics, error) {

	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "anyseat",
			Name:      "http_requests_total",
			Help:      "HTTP requests handled, by route and status code.",
		},
		[]string{"route", "code"},
	)

	results := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "anyseat",
			Name:      "filtered_places",
			Help:      "Number of places left after filtering, by route.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
		[]string{"route"},
	)

	for _, c := range []prometheus.Collector{requests, results} {

		err := registry.Register(c)

		if err != nil {
			return nil, err
		}
	}

	m := &Metrics{
		registry: registry,
		requests: requests,
		results:  results,
	}

	return m, nil
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) observeRequest(route string, code int) {

	if m == nil {
		return
	}

	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

func (m *Metrics) observeResults(route string, count int) {

	if m == nil {
		return
	}

	m.results.WithLabelValues(route).Observe(float64(count))
}
