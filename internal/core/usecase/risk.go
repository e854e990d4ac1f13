package usecase

import (
	"fmt"
	"sort"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
)

const (
	riskUndefinedPoints      = 30
	riskInconsistentPoints   = 40
	riskPromiseWordPoints    = 20
	riskHighFrequencyPoints  = 10
	riskScoreFloor           = 30
	highFrequencyOccurrences = 5
	maxRiskTerms             = 10
	maxExampleContexts       = 2
)

// rankRiskTerms scores each analyzed term for business risk and returns the
// top offenders, ordered by severity, then by occurrence count.
func rankRiskTerms(analyses []domain.TermAnalysis) []domain.RiskTerm {
	type candidate struct {
		term  domain.RiskTerm
		score int
	}

	var candidates []candidate
	for _, a := range analyses {
		score := 0
		if !a.IsDefined {
			score += riskUndefinedPoints
		}
		if a.InconsistencyDetected {
			score += riskInconsistentPoints
		}
		if a.Category == domain.CategoryPromiseWord {
			score += riskPromiseWordPoints
		}
		highFrequency := a.OccurrenceCount > highFrequencyOccurrences
		if highFrequency {
			score += riskHighFrequencyPoints
		}
		if score < riskScoreFloor {
			continue
		}

		issue, recommendation := classifyRiskIssue(a, highFrequency)
		candidates = append(candidates, candidate{
			score: score,
			term: domain.RiskTerm{
				Term:            a.Term,
				RiskLevel:       riskLevel(score),
				Category:        a.Category,
				OccurrenceCount: a.OccurrenceCount,
				DocumentNames:   a.DocumentNames,
				Issue:           issue,
				Recommendation:  recommendation,
				ExampleContexts: exampleContexts(a.SampleContexts),
			},
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ri, rj := severityRank(candidates[i].term.RiskLevel), severityRank(candidates[j].term.RiskLevel)
		if ri != rj {
			return ri < rj
		}
		return candidates[i].term.OccurrenceCount > candidates[j].term.OccurrenceCount
	})
	if len(candidates) > maxRiskTerms {
		candidates = candidates[:maxRiskTerms]
	}

	out := make([]domain.RiskTerm, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.term)
	}
	return out
}

func riskLevel(score int) domain.RiskLevel {
	switch {
	case score >= 60:
		return domain.RiskCritical
	case score >= 40:
		return domain.RiskHigh
	default:
		return domain.RiskMedium
	}
}

func severityRank(level domain.RiskLevel) int {
	switch level {
	case domain.RiskCritical:
		return 0
	case domain.RiskHigh:
		return 1
	default:
		return 2
	}
}

func classifyRiskIssue(a domain.TermAnalysis, highFrequency bool) (domain.RiskIssue, string) {
	switch {
	case !a.IsDefined && a.InconsistencyDetected:
		return domain.IssueUndefinedAndInconsistent,
			fmt.Sprintf("Define %q and reconcile its conflicting usages across %d documents.", a.Term, len(a.DocumentNames))
	case a.InconsistencyDetected:
		return domain.IssueInconsistentMeaning,
			fmt.Sprintf("Align on a single meaning for %q; its usage differs between documents.", a.Term)
	case !a.IsDefined && highFrequency:
		return domain.IssueHighFrequencyUndefined,
			fmt.Sprintf("%q appears %d times without a definition; add one to the shared glossary first.", a.Term, a.OccurrenceCount)
	default:
		return domain.IssueUndefined,
			fmt.Sprintf("Add a definition for %q with explicit thresholds and boundaries.", a.Term)
	}
}

func exampleContexts(samples []string) []string {
	limit := maxExampleContexts
	if len(samples) < limit {
		limit = len(samples)
	}
	out := make([]string, limit)
	copy(out, samples[:limit])
	return out
}
