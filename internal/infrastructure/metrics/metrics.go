// Package metrics expone métricas Prometheus del API y del motor de pricing.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/marketplace-profit-api/internal/application/pricing"
)

var _ pricing.MetricsRecorder = (*Metrics)(nil)

// Metrics agrupa los collectors en un registry propio (no el global) para poder instanciarlo en tests.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	GradesTotal         *prometheus.CounterVec
	InfeasibleTotal     *prometheus.CounterVec
}

// New registra los collectors con el prefijo dado (e.g. "marketplace_profit").
func New(prefix string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		GradesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_decision_grades_total",
				Help: "Ad viability decisions by grade",
			},
			[]string{"grade"},
		),
		InfeasibleTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_reverse_infeasible_total",
				Help: "Reverse pricing requests without a feasible price",
			},
			[]string{"reason"},
		),
	}
}

// ObserveGrade cuenta una decisión de iklan.
func (m *Metrics) ObserveGrade(grade string) {
	m.GradesTotal.WithLabelValues(grade).Inc()
}

// ObserveInfeasible cuenta un reverse pricing sin solución.
func (m *Metrics) ObserveInfeasible(reason string) {
	m.InfeasibleTotal.WithLabelValues(reason).Inc()
}

// Middleware registra conteo y duración por ruta. Usa la ruta registrada (/api/hpp/:product_id), no la URL,
// para no crear una serie por id.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else if status < fiber.StatusBadRequest {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path
		labels := []string{c.Method(), path, strconv.Itoa(status)}
		m.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
		m.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler sirve /metrics con el registry propio.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
