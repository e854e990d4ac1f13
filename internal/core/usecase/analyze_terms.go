package usecase

import (
	"context"
	"sync"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
)

func (uc *AnalyzeUseCase) analyzeTerms(
	ctx context.Context,
	docs []domain.InputDocument,
	hits []termHits,
	useCheck bool,
) []domain.TermAnalysis {
	analyses := make([]domain.TermAnalysis, 0, len(hits))
	for _, hit := range hits {
		category, known := uc.catalog.Category(hit.term)
		if !known {
			category = domain.CategoryGeneral
		}

		analysis := domain.TermAnalysis{
			Term:              hit.term,
			Category:          category,
			RiskMultiplier:    uc.catalog.Multiplier(category),
			OccurrenceCount:   len(hit.occurrences),
			DocumentNames:     distinctDocumentNames(hit.occurrences),
			DefinitionQuality: domain.DefinitionMissing,
			SampleContexts:    sampleContexts(hit.occurrences),
		}
		if def := detectDefinition(uc.catalog, hit.term, docs); def != nil {
			analysis.IsDefined = true
			analysis.DefinitionQuality = def.quality
			analysis.DefinitionText = def.text
			analysis.HasThreshold = def.hasThreshold
			analysis.HasBoundary = def.hasBoundary
		}
		analyses = append(analyses, analysis)
	}

	if useCheck && uc.checker != nil {
		uc.runConsistencyChecks(ctx, analyses)
	}
	return analyses
}

// runConsistencyChecks consults the external capability for terms spanning
// more than one document, comparing the first two sample contexts. Calls run
// with a bounded concurrency limit and a per-call timeout; each is
// independent and writes only its own slot. Failures are logged and fail
// open: the term stays consistent.
func (uc *AnalyzeUseCase) runConsistencyChecks(ctx context.Context, analyses []domain.TermAnalysis) {
	sem := make(chan struct{}, uc.cfg.CheckConcurrency)
	var wg sync.WaitGroup

	for i := range analyses {
		if len(analyses[i].DocumentNames) < 2 || len(analyses[i].SampleContexts) < 2 {
			continue
		}
		wg.Add(1)
		go func(analysis *domain.TermAnalysis) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			callCtx, cancel := context.WithTimeout(ctx, uc.cfg.CheckTimeout)
			defer cancel()

			inconsistent, err := uc.checker.CheckConsistency(
				callCtx, analysis.Term, analysis.SampleContexts[0], analysis.SampleContexts[1])
			if err != nil {
				uc.logger.Warn("consistency_check_failed", "term", analysis.Term, "error", err)
				return
			}
			analysis.InconsistencyDetected = inconsistent
		}(&analyses[i])
	}
	wg.Wait()
}

func distinctDocumentNames(occurrences []domain.TermOccurrence) []string {
	seen := make(map[string]struct{}, len(occurrences))
	var names []string
	for _, occ := range occurrences {
		if _, dup := seen[occ.DocumentName]; dup {
			continue
		}
		seen[occ.DocumentName] = struct{}{}
		names = append(names, occ.DocumentName)
	}
	return names
}

func sampleContexts(occurrences []domain.TermOccurrence) []string {
	limit := maxSampleContexts
	if len(occurrences) < limit {
		limit = len(occurrences)
	}
	samples := make([]string, 0, limit)
	for _, occ := range occurrences[:limit] {
		samples = append(samples, occ.Context)
	}
	return samples
}
