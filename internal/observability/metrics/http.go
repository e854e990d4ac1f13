package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServerMetrics covers the API: request traffic plus audit-level
// counters for submissions and synchronous analyses.
type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	auditsSubmittedTotal *prometheus.CounterVec
	analysesTotal        *prometheus.CounterVec
	analysisDuration     *prometheus.HistogramVec
	analysisScore        *prometheus.HistogramVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sca",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sca",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sca",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	auditsSubmittedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sca",
			Subsystem: "audit",
			Name:      "submitted_total",
			Help:      "Total audits accepted for asynchronous processing, by source kind.",
		},
		[]string{"service", "kind"},
	)
	analysesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sca",
			Subsystem: "audit",
			Name:      "analyses_total",
			Help:      "Total completed synchronous analyses by score band.",
		},
		[]string{"service", "band"},
	)
	analysisDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sca",
			Subsystem: "audit",
			Name:      "analysis_duration_seconds",
			Help:      "Synchronous analysis duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service"},
	)
	analysisScore := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sca",
			Subsystem: "audit",
			Name:      "analysis_score",
			Help:      "Distribution of overall clarity scores.",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		[]string{"service"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		auditsSubmittedTotal,
		analysesTotal,
		analysisDuration,
		analysisScore,
	)

	return &HTTPServerMetrics{
		registry:             registry,
		requestTotal:         requestTotal,
		requestDuration:      requestDuration,
		requestInFlight:      requestInFlight,
		auditsSubmittedTotal: auditsSubmittedTotal,
		analysesTotal:        analysesTotal,
		analysisDuration:     analysisDuration,
		analysisScore:        analysisScore,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/audits/") && path != "/v1/audits/website":
		return "/v1/audits/{audit_id}"
	default:
		return path
	}
}

func (m *HTTPServerMetrics) RecordAuditSubmitted(service, kind string) {
	if kind == "" {
		kind = "unknown"
	}
	m.auditsSubmittedTotal.WithLabelValues(service, kind).Inc()
}

func (m *HTTPServerMetrics) RecordAnalysis(service, band string, score float64, duration time.Duration) {
	if band == "" {
		band = "unknown"
	}
	m.analysesTotal.WithLabelValues(service, band).Inc()
	m.analysisDuration.WithLabelValues(service).Observe(duration.Seconds())
	m.analysisScore.WithLabelValues(service).Observe(score)
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
