package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
	"github.com/okorolenko/semantic-audit/internal/core/ports"
)

func (rt *Router) submitFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	if err := r.ParseMultipartForm(rt.maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'files' is required"})
		return
	}

	uploads := make([]ports.FileUpload, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable upload: " + header.Filename})
			return
		}
		defer file.Close()
		uploads = append(uploads, ports.FileUpload{
			Filename: header.Filename,
			MimeType: header.Header.Get("Content-Type"),
			Body:     file,
		})
	}

	audit, err := rt.submitter.SubmitFiles(r.Context(), uploads, auditOptionsFromForm(r))
	if err != nil {
		writeError(w, err)
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordAuditSubmitted(serviceName, string(domain.SourceFile))
	}
	writeJSON(w, http.StatusAccepted, audit)
}

type websiteAuditPayload struct {
	URL                 string `json:"url"`
	MaxPages            int    `json:"max_pages"`
	CompanySize         int    `json:"company_size"`
	UseConsistencyCheck *bool  `json:"use_consistency_check"`
}

func (rt *Router) submitWebsite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var payload websiteAuditPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	opts := domain.AuditOptions{
		CompanySize:         payload.CompanySize,
		UseConsistencyCheck: true,
	}
	if payload.UseConsistencyCheck != nil {
		opts.UseConsistencyCheck = *payload.UseConsistencyCheck
	}

	audit, err := rt.submitter.SubmitWebsite(r.Context(), payload.URL, payload.MaxPages, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordAuditSubmitted(serviceName, string(domain.SourceWebsite))
	}
	writeJSON(w, http.StatusAccepted, audit)
}

func (rt *Router) getAuditByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/audits/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "audit id is required"})
		return
	}

	audit, err := rt.reader.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, audit)
}

func auditOptionsFromForm(r *http.Request) domain.AuditOptions {
	opts := domain.AuditOptions{UseConsistencyCheck: true}
	if raw := r.FormValue("company_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil {
			opts.CompanySize = size
		}
	}
	if raw := r.FormValue("use_consistency_check"); raw != "" {
		if enabled, err := strconv.ParseBool(raw); err == nil {
			opts.UseConsistencyCheck = enabled
		}
	}
	return opts
}
