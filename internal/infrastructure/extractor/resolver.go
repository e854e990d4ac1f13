// Package extractor resolves stored audit sources into analyzable
// documents, routing files to the right text extractor and websites to the
// crawler.
package extractor

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
	"github.com/okorolenko/semantic-audit/internal/core/ports"
	"github.com/okorolenko/semantic-audit/internal/infrastructure/extractor/pdftext"
	"github.com/okorolenko/semantic-audit/internal/infrastructure/extractor/plaintext"
)

type textExtractor interface {
	Extract(name string, reader io.Reader) (string, error)
}

type Resolver struct {
	storage ports.ObjectStorage
	crawler ports.WebsiteCrawler

	plain textExtractor
	pdf   textExtractor
}

func NewResolver(storage ports.ObjectStorage, crawler ports.WebsiteCrawler) *Resolver {
	return &Resolver{
		storage: storage,
		crawler: crawler,
		plain:   plaintext.New(),
		pdf:     pdftext.New(),
	}
}

func (r *Resolver) Resolve(ctx context.Context, source domain.AuditSource) ([]domain.InputDocument, error) {
	switch source.Kind {
	case domain.SourceFile:
		return r.resolveFile(ctx, source)
	case domain.SourceWebsite:
		if r.crawler == nil {
			return nil, domain.WrapError(domain.ErrUnsupportedSource, "resolve source",
				fmt.Errorf("website crawling disabled"))
		}
		return r.crawler.Crawl(ctx, source.URL, source.MaxPages)
	default:
		return nil, domain.WrapError(domain.ErrUnsupportedSource, "resolve source",
			fmt.Errorf("kind %q", source.Kind))
	}
}

func (r *Resolver) resolveFile(ctx context.Context, source domain.AuditSource) ([]domain.InputDocument, error) {
	reader, err := r.storage.Open(ctx, source.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("open stored source %s: %w", source.Name, err)
	}
	defer reader.Close()

	text, err := r.extractorFor(source).Extract(source.Name, reader)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}

	return []domain.InputDocument{{
		ID:        source.StorageKey,
		Name:      source.Name,
		Content:   text,
		WordCount: len(strings.Fields(text)),
		Type:      domain.TypeDocument,
	}}, nil
}

func (r *Resolver) extractorFor(source domain.AuditSource) textExtractor {
	if source.MimeType == "application/pdf" ||
		strings.HasSuffix(strings.ToLower(source.Name), ".pdf") {
		return r.pdf
	}
	return r.plain
}
