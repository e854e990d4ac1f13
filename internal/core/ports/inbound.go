package ports

import (
	"context"
	"io"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
)

// Analyzer is the inbound contract for a synchronous audit run.
type Analyzer interface {
	Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResult, error)
}

// FileUpload is one raw document handed to the submission flow.
type FileUpload struct {
	Filename string
	MimeType string
	Body     io.Reader
}

// AuditSubmitter accepts raw inputs, persists an audit job and enqueues it.
type AuditSubmitter interface {
	SubmitFiles(ctx context.Context, uploads []FileUpload, opts domain.AuditOptions) (*domain.Audit, error)
	SubmitWebsite(ctx context.Context, url string, maxPages int, opts domain.AuditOptions) (*domain.Audit, error)
}

// AuditProcessor runs a queued audit end to end.
type AuditProcessor interface {
	ProcessByID(ctx context.Context, auditID string) error
}

// AuditReader is the inbound read model for audit state.
type AuditReader interface {
	GetByID(ctx context.Context, id string) (*domain.Audit, error)
}
