package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the per-service registry: request counters and latency by
// method+endpoint, plus the domain counters the business services bump.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec

	UserRegistrations prometheus.Counter
	OrderCreations    prometheus.Counter
}

// New builds a Metrics with its own registry so tests and the two services
// never collide on the default global one.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		}, []string{"method", "endpoint", "status_code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP request latency",
		}, []string{"method", "endpoint"}),
		UserRegistrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "user_registrations_total",
			Help: "Total number of user registrations",
		}),
		OrderCreations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "order_creations_total",
			Help: "Total number of orders created",
		}),
	}
	m.registry.MustRegister(m.requests, m.latency, m.UserRegistrations, m.OrderCreations)
	return m
}

// ObserveRequest records one handled request.
func (m *Metrics) ObserveRequest(method, endpoint string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// Handler exposes the registry in prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
