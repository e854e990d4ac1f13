package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
	"github.com/okorolenko/semantic-audit/internal/core/lexicon"
	"github.com/okorolenko/semantic-audit/internal/core/ports"
)

const (
	defaultCompanySize      = 50
	maxSampleContexts       = 5
	defaultCheckTimeout     = 20 * time.Second
	defaultCheckConcurrency = 4
)

// AnalyzeConfig tunes the consistency-capability calls. Every other stage of
// the engine is a pure function with no knobs.
type AnalyzeConfig struct {
	CheckTimeout     time.Duration
	CheckConcurrency int
}

// AnalyzeUseCase is the audit engine orchestrator: occurrences → term
// analyses → component scores → aggregate/ASPIRE/risk/cost/actions → result.
type AnalyzeUseCase struct {
	catalog *lexicon.Catalog
	checker ports.ConsistencyChecker
	logger  *slog.Logger
	cfg     AnalyzeConfig
	now     func() time.Time
}

func NewAnalyzeUseCase(
	catalog *lexicon.Catalog,
	checker ports.ConsistencyChecker,
	logger *slog.Logger,
	cfg AnalyzeConfig,
) *AnalyzeUseCase {
	if cfg.CheckTimeout <= 0 {
		cfg.CheckTimeout = defaultCheckTimeout
	}
	if cfg.CheckConcurrency <= 0 {
		cfg.CheckConcurrency = defaultCheckConcurrency
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeUseCase{
		catalog: catalog,
		checker: checker,
		logger:  logger,
		cfg:     cfg,
		now:     time.Now,
	}
}

func (uc *AnalyzeUseCase) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	companySize := req.CompanySize
	if companySize <= 0 {
		companySize = defaultCompanySize
	}

	hits := extractOccurrences(uc.catalog, req.Documents)
	analyses := uc.analyzeTerms(ctx, req.Documents, hits, req.UseConsistencyCheck)

	components := buildComponents(uc.catalog, req.Documents, analyses)
	overall := overallScore(components)
	riskTerms := rankRiskTerms(analyses)

	return &domain.AnalysisResult{
		OverallScore:  overall,
		Band:          scoreBand(overall),
		Components:    components,
		Aspire:        buildAspire(analyses),
		RiskTerms:     riskTerms,
		MeaningDebt:   estimateMeaningDebt(overall, companySize, len(riskTerms)),
		ActionPlan:    buildActionPlan(analyses, components),
		TermAnalyses:  analyses,
		DocumentCount: len(req.Documents),
		WordCount:     totalWords(req.Documents),
		GeneratedAt:   uc.now().UTC(),
	}, nil
}

func validateRequest(req domain.AnalysisRequest) error {
	if len(req.Documents) == 0 {
		return domain.WrapError(domain.ErrInvalidInput, "analyze", errors.New("document set is empty"))
	}
	for i, doc := range req.Documents {
		if strings.TrimSpace(doc.Content) == "" {
			return domain.WrapError(domain.ErrInvalidInput, "analyze",
				fmt.Errorf("document %d (%s) has no content", i, doc.Name))
		}
		if doc.WordCount < 0 {
			return domain.WrapError(domain.ErrInvalidInput, "analyze",
				fmt.Errorf("document %d (%s) has negative word count", i, doc.Name))
		}
	}
	return nil
}

func totalWords(docs []domain.InputDocument) int {
	total := 0
	for _, doc := range docs {
		total += doc.WordCount
	}
	return total
}
