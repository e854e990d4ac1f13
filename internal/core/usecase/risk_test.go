package usecase

import (
	"strings"
	"testing"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
)

func TestRankRiskTermsScoringAndIssues(t *testing.T) {
	analyses := []domain.TermAnalysis{
		// undefined + inconsistent + promise word: 30+40+20 = 90 -> critical
		{
			Term: "support", Category: domain.CategoryPromiseWord,
			OccurrenceCount: 4, DocumentNames: []string{"a", "b"},
			InconsistencyDetected: true,
			SampleContexts:        []string{"one", "two", "three"},
		},
		// undefined + high frequency: 30+10 = 40 -> high
		{
			Term: "roi", Category: domain.CategoryFinancialStrategic,
			OccurrenceCount: 6, DocumentNames: []string{"a"},
		},
		// undefined only: 30 -> medium
		{
			Term: "process", Category: domain.CategoryGeneral,
			OccurrenceCount: 2, DocumentNames: []string{"a"},
		},
		// defined and consistent: 0, below the floor
		{
			Term: "onboarding", Category: domain.CategoryLifecycleVerb,
			IsDefined: true, OccurrenceCount: 9, DocumentNames: []string{"a", "b"},
		},
	}

	ranked := rankRiskTerms(analyses)
	if len(ranked) != 3 {
		t.Fatalf("got %d risk terms, want 3", len(ranked))
	}

	if ranked[0].Term != "support" || ranked[0].RiskLevel != domain.RiskCritical {
		t.Fatalf("ranked[0] = %q/%q, want support/critical", ranked[0].Term, ranked[0].RiskLevel)
	}
	if ranked[0].Issue != domain.IssueUndefinedAndInconsistent {
		t.Fatalf("support issue = %q", ranked[0].Issue)
	}
	if len(ranked[0].ExampleContexts) != 2 {
		t.Fatalf("example contexts = %d, want capped at 2", len(ranked[0].ExampleContexts))
	}

	if ranked[1].Term != "roi" || ranked[1].RiskLevel != domain.RiskHigh {
		t.Fatalf("ranked[1] = %q/%q, want roi/high", ranked[1].Term, ranked[1].RiskLevel)
	}
	if ranked[1].Issue != domain.IssueHighFrequencyUndefined {
		t.Fatalf("roi issue = %q", ranked[1].Issue)
	}

	if ranked[2].Term != "process" || ranked[2].RiskLevel != domain.RiskMedium {
		t.Fatalf("ranked[2] = %q/%q, want process/medium", ranked[2].Term, ranked[2].RiskLevel)
	}
	if ranked[2].Issue != domain.IssueUndefined {
		t.Fatalf("process issue = %q", ranked[2].Issue)
	}
	if !strings.Contains(ranked[2].Recommendation, "process") {
		t.Fatalf("recommendation should name the term: %q", ranked[2].Recommendation)
	}
}

func TestRankRiskTermsSeverityBeatsOccurrences(t *testing.T) {
	analyses := []domain.TermAnalysis{
		// 30+10 = 40 -> high, many occurrences
		{Term: "roi", Category: domain.CategoryFinancialStrategic, OccurrenceCount: 50, DocumentNames: []string{"a"}},
		// 30+40 = 70 -> critical, few occurrences
		{Term: "done", Category: domain.CategoryStatusLabel, OccurrenceCount: 2, DocumentNames: []string{"a", "b"}, InconsistencyDetected: true},
	}
	ranked := rankRiskTerms(analyses)
	if ranked[0].Term != "done" {
		t.Fatalf("ranked[0] = %q, want critical term first regardless of occurrences", ranked[0].Term)
	}
}

func TestRankRiskTermsOrdersByOccurrencesWithinSeverity(t *testing.T) {
	analyses := []domain.TermAnalysis{
		{Term: "scope", Category: domain.CategoryGeneral, OccurrenceCount: 1, DocumentNames: []string{"a"}},
		{Term: "process", Category: domain.CategoryGeneral, OccurrenceCount: 4, DocumentNames: []string{"a"}},
	}
	ranked := rankRiskTerms(analyses)
	if ranked[0].Term != "process" || ranked[1].Term != "scope" {
		t.Fatalf("within one severity, more occurrences first: got %q, %q", ranked[0].Term, ranked[1].Term)
	}
}

func TestRankRiskTermsInconsistentDefinedTerm(t *testing.T) {
	ranked := rankRiskTerms([]domain.TermAnalysis{
		// defined but inconsistent: 40 -> high
		{Term: "done", Category: domain.CategoryStatusLabel, IsDefined: true, OccurrenceCount: 3, DocumentNames: []string{"a", "b"}, InconsistencyDetected: true},
	})
	if len(ranked) != 1 || ranked[0].Issue != domain.IssueInconsistentMeaning {
		t.Fatalf("unexpected ranking: %+v", ranked)
	}
}

func TestRankRiskTermsTruncatesToTen(t *testing.T) {
	analyses := make([]domain.TermAnalysis, 14)
	for i := range analyses {
		analyses[i] = domain.TermAnalysis{
			Term:            string(rune('a' + i)),
			Category:        domain.CategoryGeneral,
			OccurrenceCount: i + 1,
			DocumentNames:   []string{"a"},
		}
	}
	ranked := rankRiskTerms(analyses)
	if len(ranked) != maxRiskTerms {
		t.Fatalf("got %d risk terms, want %d", len(ranked), maxRiskTerms)
	}
	if ranked[0].OccurrenceCount != 14 {
		t.Fatalf("top term occurrences = %d, want 14", ranked[0].OccurrenceCount)
	}
}
