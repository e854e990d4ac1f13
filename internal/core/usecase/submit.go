package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
	"github.com/okorolenko/semantic-audit/internal/core/ports"
)

// SubmitAuditUseCase stores raw sources, persists the audit job and enqueues
// it for the worker.
type SubmitAuditUseCase struct {
	repo    ports.AuditRepository
	storage ports.ObjectStorage
	queue   ports.MessageQueue
}

func NewSubmitAuditUseCase(
	repo ports.AuditRepository,
	storage ports.ObjectStorage,
	queue ports.MessageQueue,
) *SubmitAuditUseCase {
	return &SubmitAuditUseCase{
		repo:    repo,
		storage: storage,
		queue:   queue,
	}
}

func (uc *SubmitAuditUseCase) SubmitFiles(
	ctx context.Context,
	uploads []ports.FileUpload,
	opts domain.AuditOptions,
) (*domain.Audit, error) {
	if len(uploads) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "submit audit", errors.New("no files provided"))
	}

	sources := make([]domain.AuditSource, 0, len(uploads))
	for _, upload := range uploads {
		key := fmt.Sprintf("%s_%s", uuid.NewString(), sanitizeFilename(upload.Filename))
		if err := uc.storage.Save(ctx, key, upload.Body); err != nil {
			return nil, fmt.Errorf("save upload %s: %w", upload.Filename, err)
		}
		sources = append(sources, domain.AuditSource{
			Kind:       domain.SourceFile,
			Name:       upload.Filename,
			MimeType:   upload.MimeType,
			StorageKey: key,
		})
	}

	return uc.createAndEnqueue(ctx, sources, opts)
}

func (uc *SubmitAuditUseCase) SubmitWebsite(
	ctx context.Context,
	rawURL string,
	maxPages int,
	opts domain.AuditOptions,
) (*domain.Audit, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "submit website audit",
			fmt.Errorf("invalid url %q", rawURL))
	}

	sources := []domain.AuditSource{{
		Kind:     domain.SourceWebsite,
		Name:     parsed.Host,
		URL:      parsed.String(),
		MaxPages: maxPages,
	}}
	return uc.createAndEnqueue(ctx, sources, opts)
}

func (uc *SubmitAuditUseCase) createAndEnqueue(
	ctx context.Context,
	sources []domain.AuditSource,
	opts domain.AuditOptions,
) (*domain.Audit, error) {
	if opts.CompanySize <= 0 {
		opts.CompanySize = defaultCompanySize
	}
	now := time.Now().UTC()
	audit := &domain.Audit{
		ID:                  uuid.NewString(),
		Status:              domain.AuditQueued,
		CompanySize:         opts.CompanySize,
		UseConsistencyCheck: opts.UseConsistencyCheck,
		Sources:             sources,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := uc.repo.Create(ctx, audit); err != nil {
		return nil, fmt.Errorf("create audit record: %w", err)
	}
	if err := uc.queue.PublishAuditRequested(ctx, audit.ID); err != nil {
		return nil, fmt.Errorf("publish audit event: %w", err)
	}
	return audit, nil
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || base == "." {
		return "document.txt"
	}
	return base
}
