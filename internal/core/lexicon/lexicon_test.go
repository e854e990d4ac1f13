package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
)

func TestDefaultCatalogTermsAreNormalized(t *testing.T) {
	cat := Default()
	terms := cat.Terms()
	if len(terms) < 100 {
		t.Fatalf("expected at least 100 catalog terms, got %d", len(terms))
	}
	for _, term := range terms {
		if term != strings.ToLower(strings.TrimSpace(term)) {
			t.Fatalf("term %q is not normalized", term)
		}
		if _, ok := cat.Category(term); !ok {
			t.Fatalf("term %q has no category", term)
		}
		if cat.TermMatcher(term) == nil {
			t.Fatalf("term %q has no matcher", term)
		}
		if len(cat.DefinitionMatchers(term)) == 0 {
			t.Fatalf("term %q has no definition templates", term)
		}
	}
}

func TestEveryCategoryHasExactlyOneMultiplier(t *testing.T) {
	cat := Default()
	expected := map[domain.TermCategory]float64{
		domain.CategoryPromiseWord:        3.0,
		domain.CategoryLifecycleVerb:      2.5,
		domain.CategoryFinancialStrategic: 2.0,
		domain.CategoryStatusLabel:        2.0,
		domain.CategoryOwnershipTerm:      1.5,
		domain.CategoryGeneral:            1.0,
	}
	for category, want := range expected {
		if got := cat.Multiplier(category); got != want {
			t.Fatalf("multiplier(%s) = %v, want %v", category, got, want)
		}
	}
	if got := cat.Multiplier(domain.TermCategory("unknown")); got != 1.0 {
		t.Fatalf("unknown category multiplier = %v, want general 1.0", got)
	}
}

func TestTermMatcherRespectsWordBoundaries(t *testing.T) {
	cat := Default()
	matcher := cat.TermMatcher("support")
	if matcher == nil {
		t.Fatal("no matcher for support")
	}
	if !matcher.MatchString("We offer Support.") {
		t.Fatal("expected case-insensitive match")
	}
	if matcher.MatchString("unsupported configurations") {
		t.Fatal("matched inside a larger word")
	}
}

func TestBoundarySignalsAreUnionOfSignalLists(t *testing.T) {
	cat := Default()
	want := len(cat.ExclusionSignals()) + len(cat.InclusionSignals()) + len(cat.LimitSignals())
	if got := len(cat.BoundarySignals()); got != want {
		t.Fatalf("boundary signals = %d, want %d", got, want)
	}
}

func TestNewRejectsDuplicateTerms(t *testing.T) {
	spec := defaultSpec()
	spec.Terms["general"] = append(spec.Terms["general"], "support")
	if _, err := New(spec); err == nil {
		t.Fatal("expected duplicate term error")
	}
}

func TestLoadFileOverridesTermsKeepsDefaultPatterns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	content := `
terms:
  promise_word:
    - turbo mode
  general:
    - gizmo
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(cat.Terms()) != 2 {
		t.Fatalf("expected 2 override terms, got %d", len(cat.Terms()))
	}
	if category, _ := cat.Category("turbo mode"); category != domain.CategoryPromiseWord {
		t.Fatalf("turbo mode category = %s", category)
	}
	if len(cat.PromisePatterns()) == 0 {
		t.Fatal("expected default promise patterns to survive a terms-only override")
	}
}

func TestLoadFileMissingPath(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
