package ports

import (
	"context"
	"io"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
)

// ConsistencyChecker is the external semantic-consistency capability. Given
// two context snippets using the same term it reports whether the usages are
// inconsistent. Callers must fail open on error.
type ConsistencyChecker interface {
	CheckConsistency(ctx context.Context, term, contextA, contextB string) (bool, error)
}

// AuditRepository persists and reads audit job state.
type AuditRepository interface {
	Create(ctx context.Context, audit *domain.Audit) error
	GetByID(ctx context.Context, id string) (*domain.Audit, error)
	UpdateStatus(ctx context.Context, id string, status domain.AuditStatus, errMessage string) error
	SaveResult(ctx context.Context, id string, result *domain.AnalysisResult) error
}

// ObjectStorage stores raw uploaded sources until the worker extracts them.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue publishes/consumes audit-requested events.
type MessageQueue interface {
	PublishAuditRequested(ctx context.Context, auditID string) error
	SubscribeAuditRequested(ctx context.Context, handler func(context.Context, string) error) error
}

// SourceResolver turns a stored audit source into Input Documents.
type SourceResolver interface {
	Resolve(ctx context.Context, source domain.AuditSource) ([]domain.InputDocument, error)
}

// WebsiteCrawler fetches a site's key pages as plain-text documents.
type WebsiteCrawler interface {
	Crawl(ctx context.Context, startURL string, maxPages int) ([]domain.InputDocument, error)
}
