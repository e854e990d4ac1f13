package usecase

import (
	"github.com/okorolenko/semantic-audit/internal/core/domain"
	"github.com/okorolenko/semantic-audit/internal/core/lexicon"
)

const (
	componentDefinitionCoverage   = "definition_coverage"
	componentConsistency          = "consistency"
	componentBoundaryClarity      = "boundary_clarity"
	componentThresholdSpecificity = "threshold_specificity"
	componentJargonLoad           = "jargon_load"
	componentOwnershipClarity     = "ownership_clarity"
)

// componentWeights are fixed and sum to 1.0.
var componentWeights = map[string]float64{
	componentDefinitionCoverage:   0.25,
	componentConsistency:          0.25,
	componentBoundaryClarity:      0.20,
	componentThresholdSpecificity: 0.15,
	componentJargonLoad:           0.10,
	componentOwnershipClarity:     0.05,
}

func buildComponents(
	cat *lexicon.Catalog,
	docs []domain.InputDocument,
	analyses []domain.TermAnalysis,
) []domain.ComponentResult {
	out := make([]domain.ComponentResult, 0, len(componentWeights))
	add := func(name string, score float64, details map[string]float64) {
		weight := componentWeights[name]
		out = append(out, domain.ComponentResult{
			Name:          name,
			Score:         score,
			Weight:        weight,
			WeightedScore: score * weight,
			Details:       details,
		})
	}

	score, details := scoreDefinitionCoverage(analyses)
	add(componentDefinitionCoverage, score, details)

	score, details = scoreConsistency(analyses)
	add(componentConsistency, score, details)

	score, details = scoreBoundaryClarity(cat, docs)
	add(componentBoundaryClarity, score, details)

	score, details = scoreThresholdSpecificity(cat, docs)
	add(componentThresholdSpecificity, score, details)

	score, details = scoreJargonLoad(docs)
	add(componentJargonLoad, score, details)

	score, details = scoreOwnershipClarity(cat, docs)
	add(componentOwnershipClarity, score, details)

	return out
}

func overallScore(components []domain.ComponentResult) float64 {
	var sum float64
	for _, component := range components {
		sum += component.WeightedScore
	}
	return round1(sum)
}

// scoreBand is a state-free classifier; bands are inclusive on their lower
// bound, mutually exclusive and exhaustive.
func scoreBand(score float64) domain.ScoreBand {
	switch {
	case score >= 85:
		return domain.BandExcellent
	case score >= 70:
		return domain.BandGood
	case score >= 50:
		return domain.BandAtRisk
	case score >= 30:
		return domain.BandPoor
	default:
		return domain.BandCritical
	}
}
