// Package httpadapter exposes the audit engine over HTTP: a synchronous
// analyze endpoint for pre-extracted text and an asynchronous upload/crawl
// flow backed by the worker.
package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/okorolenko/semantic-audit/internal/core/ports"
	"github.com/okorolenko/semantic-audit/internal/observability/metrics"
)

const serviceName = "api"

type Router struct {
	analyzer  ports.Analyzer
	submitter ports.AuditSubmitter
	reader    ports.AuditReader
	metrics   *metrics.HTTPServerMetrics
	logger    *slog.Logger

	maxUploadBytes int64
}

type RouterOptions struct {
	MaxUploadBytes int64
}

func NewRouter(
	analyzer ports.Analyzer,
	submitter ports.AuditSubmitter,
	reader ports.AuditReader,
	m *metrics.HTTPServerMetrics,
	logger *slog.Logger,
	options RouterOptions,
) *Router {
	maxUpload := options.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 32 << 20
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		analyzer:       analyzer,
		submitter:      submitter,
		reader:         reader,
		metrics:        m,
		logger:         logger,
		maxUploadBytes: maxUpload,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/analyze", rt.analyze)
	mux.HandleFunc("/v1/audits", rt.submitFiles)
	mux.HandleFunc("/v1/audits/website", rt.submitWebsite)
	mux.HandleFunc("/v1/audits/", rt.getAuditByID)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	handler := http.Handler(mux)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	return requestIDMiddleware(accessLogMiddleware(rt.logger, handler))
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}
