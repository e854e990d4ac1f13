package usecase

import "github.com/okorolenko/semantic-audit/internal/core/domain"

const aspireFallback = 70.0

// buildAspire regroups term analyses into the six maturity dimensions.
// Prospecting and Relationship both draw from promise words.
func buildAspire(analyses []domain.TermAnalysis) domain.AspireScores {
	return domain.AspireScores{
		Alignment:    aspireDimensionScore(analyses, domain.CategoryOwnershipTerm),
		Strategy:     aspireDimensionScore(analyses, domain.CategoryFinancialStrategic),
		Prospecting:  aspireDimensionScore(analyses, domain.CategoryPromiseWord),
		Integration:  aspireDimensionScore(analyses, domain.CategoryLifecycleVerb),
		Relationship: aspireDimensionScore(analyses, domain.CategoryPromiseWord),
		Engagement:   aspireDimensionScore(analyses, domain.CategoryStatusLabel),
	}
}

func aspireDimensionScore(analyses []domain.TermAnalysis, category domain.TermCategory) float64 {
	var total, defined, consistent float64
	for _, a := range analyses {
		if a.Category != category {
			continue
		}
		total++
		if a.IsDefined {
			defined++
		}
		if !a.InconsistencyDetected {
			consistent++
		}
	}
	if total == 0 {
		return aspireFallback
	}
	score := 50*defined/total + 50*consistent/total
	if score > 100 {
		score = 100
	}
	return round1(score)
}
