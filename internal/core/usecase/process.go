package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
	"github.com/okorolenko/semantic-audit/internal/core/ports"
)

// ProcessAuditUseCase runs one queued audit end to end: resolve raw sources
// into documents, invoke the engine, persist the result.
type ProcessAuditUseCase struct {
	repo     ports.AuditRepository
	resolver ports.SourceResolver
	analyzer ports.Analyzer
}

func NewProcessAuditUseCase(
	repo ports.AuditRepository,
	resolver ports.SourceResolver,
	analyzer ports.Analyzer,
) *ProcessAuditUseCase {
	return &ProcessAuditUseCase{
		repo:     repo,
		resolver: resolver,
		analyzer: analyzer,
	}
}

func (uc *ProcessAuditUseCase) ProcessByID(ctx context.Context, auditID string) error {
	if err := uc.repo.UpdateStatus(ctx, auditID, domain.AuditProcessing, ""); err != nil {
		return fmt.Errorf("set status=processing: %w", err)
	}

	result, err := uc.runPipeline(ctx, auditID)
	if err != nil {
		if failErr := uc.repo.UpdateStatus(ctx, auditID, domain.AuditFailed, err.Error()); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.repo.SaveResult(ctx, auditID, result); err != nil {
		if failErr := uc.repo.UpdateStatus(ctx, auditID, domain.AuditFailed, err.Error()); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return fmt.Errorf("save audit result: %w", err)
	}
	return nil
}

func (uc *ProcessAuditUseCase) runPipeline(ctx context.Context, auditID string) (*domain.AnalysisResult, error) {
	audit, err := uc.repo.GetByID(ctx, auditID)
	if err != nil {
		return nil, fmt.Errorf("fetch audit by id: %w", err)
	}

	var documents []domain.InputDocument
	for _, source := range audit.Sources {
		resolved, err := uc.resolver.Resolve(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("resolve source %s: %w", source.Name, err)
		}
		documents = append(documents, resolved...)
	}
	if len(documents) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "resolve sources",
			errors.New("no documents produced from audit sources"))
	}

	result, err := uc.analyzer.Analyze(ctx, domain.AnalysisRequest{
		Documents:           documents,
		CompanySize:         audit.CompanySize,
		UseConsistencyCheck: audit.UseConsistencyCheck,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze documents: %w", err)
	}
	return result, nil
}
