package domain

import "time"

type DocumentType string

const (
	TypeDocument DocumentType = "document"
	TypeText     DocumentType = "text"
	TypeWebsite  DocumentType = "website"
)

// InputDocument is an already-extracted plain-text document handed to the
// engine. The engine only reads it; the caller owns the value.
type InputDocument struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Content   string            `json:"content"`
	WordCount int               `json:"word_count"`
	Type      DocumentType      `json:"type"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type AuditStatus string

const (
	AuditQueued     AuditStatus = "queued"
	AuditProcessing AuditStatus = "processing"
	AuditCompleted  AuditStatus = "completed"
	AuditFailed     AuditStatus = "failed"
)

type SourceKind string

const (
	SourceFile    SourceKind = "file"
	SourceWebsite SourceKind = "website"
)

// AuditSource names one raw input of an asynchronous audit: either an uploaded
// file in object storage or a website to crawl.
type AuditSource struct {
	Kind       SourceKind `json:"kind"`
	Name       string     `json:"name,omitempty"`
	MimeType   string     `json:"mime_type,omitempty"`
	StorageKey string     `json:"storage_key,omitempty"`
	URL        string     `json:"url,omitempty"`
	MaxPages   int        `json:"max_pages,omitempty"`
}

// AuditOptions carries per-audit engine settings resolved at submission time.
type AuditOptions struct {
	CompanySize         int
	UseConsistencyCheck bool
}

// Audit is the persisted record of an asynchronous analysis job.
type Audit struct {
	ID                  string          `json:"id"`
	Status              AuditStatus     `json:"status"`
	CompanySize         int             `json:"company_size"`
	UseConsistencyCheck bool            `json:"use_consistency_check"`
	Sources             []AuditSource   `json:"sources"`
	Result              *AnalysisResult `json:"result,omitempty"`
	Error               string          `json:"error,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
