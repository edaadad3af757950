// Package metrics exposes HTTP and dataset metrics in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jengzang/delivery-insights-go/internal/dataset"
)

const namespace = "delivery_insights"

// Metrics holds the collectors registered on a private registry
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec

	rawRows       prometheus.Gauge
	keptRows      prometheus.Gauge
	droppedRows   *prometheus.GaugeVec
	loadTimestamp prometheus.Gauge
}

// New creates the collectors along with Go runtime and process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		rawRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_raw_rows",
			Help:      "Rows read from the dataset source.",
		}),
		keptRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Rows in the canonical order table.",
		}),
		droppedRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_dropped_rows",
			Help:      "Rows dropped while normalizing, by reason and column.",
		}, []string{"reason", "column"}),
		loadTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_load_timestamp_seconds",
			Help:      "Unix time the dataset was loaded.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.latency,
		m.rawRows, m.keptRows, m.droppedRows, m.loadTimestamp,
	)
	return m
}

// ObserveDataset records the normalizer report of a load
func (m *Metrics) ObserveDataset(report dataset.Report, loadedAt time.Time) {
	m.rawRows.Set(float64(report.RawRows))
	m.keptRows.Set(float64(report.KeptRows))
	m.droppedRows.Reset()
	for column, n := range report.MissingDropped {
		m.droppedRows.WithLabelValues("missing", column).Set(float64(n))
	}
	m.droppedRows.WithLabelValues("malformed", "").Set(float64(report.MalformedDropped))
	m.loadTimestamp.Set(float64(loadedAt.Unix()))
}

// Middleware counts and times requests by matched route
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
