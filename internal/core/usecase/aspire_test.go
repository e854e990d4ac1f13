package usecase

import (
	"testing"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
)

func TestBuildAspireGroupsByCategory(t *testing.T) {
	analyses := []domain.TermAnalysis{
		{Term: "support", Category: domain.CategoryPromiseWord, IsDefined: true},
		{Term: "unlimited", Category: domain.CategoryPromiseWord, InconsistencyDetected: true},
		{Term: "owner", Category: domain.CategoryOwnershipTerm, IsDefined: true},
		{Term: "roi", Category: domain.CategoryFinancialStrategic},
	}
	scores := buildAspire(analyses)

	// promise words: 1/2 defined, 1/2 consistent
	if scores.Prospecting != 50.0 {
		t.Fatalf("Prospecting = %v, want 50.0", scores.Prospecting)
	}
	// Relationship draws from the same promise-word pool.
	if scores.Relationship != scores.Prospecting {
		t.Fatalf("Relationship = %v, want same as Prospecting %v", scores.Relationship, scores.Prospecting)
	}
	// ownership: 1/1 defined, 1/1 consistent
	if scores.Alignment != 100.0 {
		t.Fatalf("Alignment = %v, want 100.0", scores.Alignment)
	}
	// financial: 0/1 defined, 1/1 consistent
	if scores.Strategy != 50.0 {
		t.Fatalf("Strategy = %v, want 50.0", scores.Strategy)
	}
}

func TestBuildAspireFallbackForEmptyDimensions(t *testing.T) {
	scores := buildAspire([]domain.TermAnalysis{
		{Term: "process", Category: domain.CategoryGeneral},
	})
	if scores.Integration != aspireFallback {
		t.Fatalf("Integration = %v, want fallback %v", scores.Integration, aspireFallback)
	}
	if scores.Engagement != aspireFallback {
		t.Fatalf("Engagement = %v, want fallback %v", scores.Engagement, aspireFallback)
	}
}
