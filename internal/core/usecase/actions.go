package usecase

import (
	"fmt"
	"sort"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
)

const (
	maxQuickWins           = 3
	maxHighImpactActions   = 3
	quickWinMinOccurrences = 3
	systemicScoreCeiling   = 60.0
)

var systemicAdvice = map[string]string{
	componentDefinitionCoverage:   "Stand up a shared glossary and define the highest-risk terms first",
	componentConsistency:          "Run a cross-team terminology alignment review",
	componentBoundaryClarity:      "Add explicit inclusions, exclusions and limits to every promise",
	componentThresholdSpecificity: "Replace hedge language with numeric thresholds",
	componentJargonLoad:           "Expand acronyms on first use in customer-facing documents",
	componentOwnershipClarity:     "Name a single owner for every commitment",
}

// buildActionPlan derives the prioritized remediation list: quick wins for
// frequent undefined terms, high impact for inconsistent ones, systemic for
// the weakest components, and fixed maintenance reminders.
func buildActionPlan(analyses []domain.TermAnalysis, components []domain.ComponentResult) []domain.ActionItem {
	var plan []domain.ActionItem

	quickWins := 0
	for _, a := range analyses {
		if quickWins >= maxQuickWins {
			break
		}
		if a.IsDefined || a.OccurrenceCount <= quickWinMinOccurrences {
			continue
		}
		plan = append(plan, domain.ActionItem{
			Priority:  domain.PriorityQuickWin,
			Action:    fmt.Sprintf("Define %q in a shared glossary", a.Term),
			Rationale: fmt.Sprintf("Used %d times across %d documents without a definition", a.OccurrenceCount, len(a.DocumentNames)),
		})
		quickWins++
	}

	highImpact := 0
	for _, a := range analyses {
		if highImpact >= maxHighImpactActions {
			break
		}
		if !a.InconsistencyDetected {
			continue
		}
		plan = append(plan, domain.ActionItem{
			Priority:  domain.PriorityHighImpact,
			Action:    fmt.Sprintf("Reconcile the meaning of %q across teams", a.Term),
			Rationale: fmt.Sprintf("Inconsistent usage detected across %d documents", len(a.DocumentNames)),
		})
		highImpact++
	}

	plan = append(plan, systemicActions(components)...)
	plan = append(plan,
		domain.ActionItem{
			Priority:  domain.PriorityMaintenance,
			Action:    "Review the glossary quarterly and retire stale terms",
			Rationale: "Definitions drift as the business changes",
		},
		domain.ActionItem{
			Priority:  domain.PriorityMaintenance,
			Action:    "Audit new documents against the glossary before publishing",
			Rationale: "Keeps new language consistent with agreed definitions",
		},
	)
	return plan
}

// systemicActions targets the two lowest-scoring components, each only when
// it scores below the systemic ceiling.
func systemicActions(components []domain.ComponentResult) []domain.ActionItem {
	ranked := make([]domain.ComponentResult, len(components))
	copy(ranked, components)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})
	if len(ranked) > 2 {
		ranked = ranked[:2]
	}

	var out []domain.ActionItem
	for _, component := range ranked {
		if component.Score >= systemicScoreCeiling {
			continue
		}
		action, ok := systemicAdvice[component.Name]
		if !ok {
			action = fmt.Sprintf("Improve %s across the corpus", component.Name)
		}
		out = append(out, domain.ActionItem{
			Priority:  domain.PrioritySystemic,
			Action:    action,
			Rationale: fmt.Sprintf("%s scored %.1f, one of the weakest areas of the corpus", component.Name, component.Score),
		})
	}
	return out
}
