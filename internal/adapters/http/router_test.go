package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
	"github.com/okorolenko/semantic-audit/internal/core/ports"
)

type stubAnalyzer struct {
	lastReq domain.AnalysisRequest
	result  *domain.AnalysisResult
	err     error
}

func (s *stubAnalyzer) Analyze(_ context.Context, req domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubSubmitter struct {
	audit       *domain.Audit
	err         error
	lastUploads []string
	lastOpts    domain.AuditOptions
	lastURL     string
	lastPages   int
}

func (s *stubSubmitter) SubmitFiles(_ context.Context, uploads []ports.FileUpload, opts domain.AuditOptions) (*domain.Audit, error) {
	for _, upload := range uploads {
		s.lastUploads = append(s.lastUploads, upload.Filename)
	}
	s.lastOpts = opts
	if s.err != nil {
		return nil, s.err
	}
	return s.audit, nil
}

func (s *stubSubmitter) SubmitWebsite(_ context.Context, url string, maxPages int, opts domain.AuditOptions) (*domain.Audit, error) {
	s.lastURL = url
	s.lastPages = maxPages
	s.lastOpts = opts
	if s.err != nil {
		return nil, s.err
	}
	return s.audit, nil
}

type stubReader struct {
	audit *domain.Audit
	err   error
}

func (s *stubReader) GetByID(context.Context, string) (*domain.Audit, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.audit, nil
}

func newTestRouter(analyzer *stubAnalyzer, submitter *stubSubmitter, reader *stubReader) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(analyzer, submitter, reader, nil, logger, RouterOptions{}).Handler()
}

func TestHealthz(t *testing.T) {
	handler := newTestRouter(&stubAnalyzer{}, &stubSubmitter{}, &stubReader{})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatal("request id header missing")
	}
}

func TestAnalyzeComputesWordCountsAndDefaults(t *testing.T) {
	analyzer := &stubAnalyzer{result: &domain.AnalysisResult{OverallScore: 48, Band: domain.BandPoor}}
	handler := newTestRouter(analyzer, &stubSubmitter{}, &stubReader{})

	body := `{"documents":[{"content":"We provide unlimited support."},{"name":"b.txt","content":"Short note."}],"company_size":80}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	req := analyzer.lastReq
	if len(req.Documents) != 2 {
		t.Fatalf("documents = %d", len(req.Documents))
	}
	if req.Documents[0].Name != "document-1" || req.Documents[1].Name != "b.txt" {
		t.Fatalf("names = %q, %q", req.Documents[0].Name, req.Documents[1].Name)
	}
	if req.Documents[0].WordCount != 4 || req.Documents[1].WordCount != 2 {
		t.Fatalf("word counts = %d, %d", req.Documents[0].WordCount, req.Documents[1].WordCount)
	}
	if req.CompanySize != 80 {
		t.Fatalf("company size = %d", req.CompanySize)
	}
	if !req.UseConsistencyCheck {
		t.Fatal("consistency check must default to enabled")
	}

	var result domain.AnalysisResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.OverallScore != 48 || result.Band != domain.BandPoor {
		t.Fatalf("result = %+v", result)
	}
}

func TestAnalyzeExplicitConsistencyOptOut(t *testing.T) {
	analyzer := &stubAnalyzer{result: &domain.AnalysisResult{}}
	handler := newTestRouter(analyzer, &stubSubmitter{}, &stubReader{})

	body := `{"documents":[{"content":"text"}],"use_consistency_check":false}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if analyzer.lastReq.UseConsistencyCheck {
		t.Fatal("explicit false must disable the consistency check")
	}
}

func TestAnalyzeBadRequests(t *testing.T) {
	handler := newTestRouter(&stubAnalyzer{}, &stubSubmitter{}, &stubReader{})
	cases := map[string]string{
		"invalid json":   `{`,
		"no documents":   `{"documents":[]}`,
		"missing fields": `{}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body)))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestAnalyzeMapsEngineErrors(t *testing.T) {
	analyzer := &stubAnalyzer{err: domain.WrapError(domain.ErrInvalidInput, "analyze", errors.New("blank content"))}
	handler := newTestRouter(analyzer, &stubSubmitter{}, &stubReader{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze",
		strings.NewReader(`{"documents":[{"content":"  "}]}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for filename, content := range files {
		part, err := writer.CreateFormFile("files", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestSubmitFilesAccepted(t *testing.T) {
	submitter := &stubSubmitter{audit: &domain.Audit{ID: "a1", Status: domain.AuditQueued}}
	handler := newTestRouter(&stubAnalyzer{}, submitter, &stubReader{})

	body, contentType := multipartBody(t,
		map[string]string{"company_size": "120", "use_consistency_check": "false"},
		map[string]string{"proposal.txt": "unlimited support"},
	)
	req := httptest.NewRequest(http.MethodPost, "/v1/audits", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(submitter.lastUploads) != 1 || submitter.lastUploads[0] != "proposal.txt" {
		t.Fatalf("uploads = %v", submitter.lastUploads)
	}
	if submitter.lastOpts.CompanySize != 120 || submitter.lastOpts.UseConsistencyCheck {
		t.Fatalf("options = %+v", submitter.lastOpts)
	}

	var audit domain.Audit
	if err := json.NewDecoder(rec.Body).Decode(&audit); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if audit.ID != "a1" || audit.Status != domain.AuditQueued {
		t.Fatalf("audit = %+v", audit)
	}
}

func TestSubmitFilesRequiresFilesField(t *testing.T) {
	handler := newTestRouter(&stubAnalyzer{}, &stubSubmitter{}, &stubReader{})

	body, contentType := multipartBody(t, map[string]string{"company_size": "10"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/audits", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSubmitWebsiteAccepted(t *testing.T) {
	submitter := &stubSubmitter{audit: &domain.Audit{ID: "a2", Status: domain.AuditQueued}}
	handler := newTestRouter(&stubAnalyzer{}, submitter, &stubReader{})

	body := `{"url":"https://example.com","max_pages":5,"company_size":40}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/audits/website", strings.NewReader(body)))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rec.Code)
	}
	if submitter.lastURL != "https://example.com" || submitter.lastPages != 5 {
		t.Fatalf("submit args = %q, %d", submitter.lastURL, submitter.lastPages)
	}
	if !submitter.lastOpts.UseConsistencyCheck {
		t.Fatal("consistency check must default to enabled")
	}
}

func TestSubmitWebsiteInvalidURL(t *testing.T) {
	submitter := &stubSubmitter{err: domain.WrapError(domain.ErrInvalidInput, "submit website audit", errors.New("invalid url"))}
	handler := newTestRouter(&stubAnalyzer{}, submitter, &stubReader{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/audits/website",
		strings.NewReader(`{"url":"notaurl"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetAuditByID(t *testing.T) {
	reader := &stubReader{audit: &domain.Audit{ID: "a1", Status: domain.AuditCompleted}}
	handler := newTestRouter(&stubAnalyzer{}, &stubSubmitter{}, reader)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/audits/a1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var audit domain.Audit
	if err := json.NewDecoder(rec.Body).Decode(&audit); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if audit.Status != domain.AuditCompleted {
		t.Fatalf("audit = %+v", audit)
	}
}

func TestGetAuditByIDNotFound(t *testing.T) {
	reader := &stubReader{err: domain.WrapError(domain.ErrAuditNotFound, "get audit", errors.New("id missing"))}
	handler := newTestRouter(&stubAnalyzer{}, &stubSubmitter{}, reader)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/audits/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	handler := newTestRouter(&stubAnalyzer{}, &stubSubmitter{}, &stubReader{})
	for _, target := range []string{"/v1/analyze", "/v1/audits", "/v1/audits/website"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: status = %d, want 405", target, rec.Code)
		}
	}
}
