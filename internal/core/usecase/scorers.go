package usecase

import (
	"math"
	"regexp"
	"strings"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
	"github.com/okorolenko/semantic-audit/internal/core/lexicon"
)

// Empty-input fallbacks keep the aggregate well-defined for sparse corpora.
const (
	fallbackDefinitionCoverage   = 50.0
	fallbackConsistency          = 80.0
	fallbackBoundaryClarity      = 70.0
	fallbackThresholdSpecificity = 70.0
	fallbackJargonLoad           = 80.0
	fallbackOwnershipClarity     = 70.0
)

var definitionQualityValues = map[domain.DefinitionQuality]float64{
	domain.DefinitionComplete: 1.0,
	domain.DefinitionPartial:  0.6,
	domain.DefinitionMinimal:  0.3,
	domain.DefinitionMissing:  0.0,
}

// scoreDefinitionCoverage is the risk-multiplier-weighted average of
// definition quality across all terms found, scaled to 0..100.
func scoreDefinitionCoverage(analyses []domain.TermAnalysis) (float64, map[string]float64) {
	details := map[string]float64{
		"terms_total":   float64(len(analyses)),
		"terms_defined": 0,
		"complete":      0,
		"partial":       0,
		"minimal":       0,
		"missing":       0,
	}
	if len(analyses) == 0 {
		return fallbackDefinitionCoverage, details
	}

	var weighted, total float64
	for _, a := range analyses {
		weighted += definitionQualityValues[a.DefinitionQuality] * a.RiskMultiplier
		total += a.RiskMultiplier
		details[string(a.DefinitionQuality)]++
		if a.IsDefined {
			details["terms_defined"]++
		}
	}
	return round1(weighted / total * 100), details
}

// scoreConsistency is the risk-multiplier-weighted fraction of cross-document
// terms not flagged inconsistent.
func scoreConsistency(analyses []domain.TermAnalysis) (float64, map[string]float64) {
	var crossTerms, inconsistent, totalWeight, consistentWeight float64
	for _, a := range analyses {
		if len(a.DocumentNames) < 2 {
			continue
		}
		crossTerms++
		totalWeight += a.RiskMultiplier
		if a.InconsistencyDetected {
			inconsistent++
		} else {
			consistentWeight += a.RiskMultiplier
		}
	}
	details := map[string]float64{
		"cross_document_terms": crossTerms,
		"inconsistent_terms":   inconsistent,
	}
	if crossTerms == 0 {
		return fallbackConsistency, details
	}
	return round1(consistentWeight / totalWeight * 100), details
}

// scoreBoundaryClarity compares boundary-signal density to promise-pattern
// density over the whole corpus.
func scoreBoundaryClarity(cat *lexicon.Catalog, docs []domain.InputDocument) (float64, map[string]float64) {
	var promises, boundaries float64
	for _, doc := range docs {
		for _, pattern := range cat.PromisePatterns() {
			promises += float64(len(pattern.FindAllStringIndex(doc.Content, -1)))
		}
		lower := strings.ToLower(doc.Content)
		for _, signal := range cat.BoundarySignals() {
			boundaries += float64(strings.Count(lower, signal))
		}
	}
	details := map[string]float64{
		"promise_count":  promises,
		"boundary_count": boundaries,
	}
	if promises == 0 {
		return fallbackBoundaryClarity, details
	}
	ratio := boundaries / promises * 100
	if ratio > 100 {
		ratio = 100
	}
	return round1(ratio), details
}

var (
	sentenceTerminators = regexp.MustCompile(`[.!?]+`)
	wordish             = regexp.MustCompile(`[A-Za-z0-9]`)
)

// scoreThresholdSpecificity penalizes vague hedge language relative to
// sentence count, two hundred points per vague phrase per sentence, floored
// at zero.
func scoreThresholdSpecificity(cat *lexicon.Catalog, docs []domain.InputDocument) (float64, map[string]float64) {
	var sentences, vague float64
	for _, doc := range docs {
		for _, part := range sentenceTerminators.Split(doc.Content, -1) {
			if wordish.MatchString(part) {
				sentences++
			}
		}
		for _, pattern := range cat.VaguePatterns() {
			vague += float64(len(pattern.FindAllStringIndex(doc.Content, -1)))
		}
	}
	details := map[string]float64{
		"sentence_count": sentences,
		"vague_count":    vague,
	}
	if sentences == 0 {
		return fallbackThresholdSpecificity, details
	}
	score := 100 - vague/sentences*200
	if score < 0 {
		score = 0
	}
	return round1(score), details
}

// Single capitals like "I" and "A" are never acronyms.
var acronymPattern = regexp.MustCompile(`\b[A-Z]{2,}\b`)

// scoreJargonLoad is a step function of unexplained-acronym density per 100
// words. Unlike the other scorers it returns discrete tier values.
func scoreJargonLoad(docs []domain.InputDocument) (float64, map[string]float64) {
	var totalWords, acronyms, unexplained float64
	for _, doc := range docs {
		totalWords += float64(doc.WordCount)
		for _, loc := range acronymPattern.FindAllStringIndex(doc.Content, -1) {
			acronyms++
			if !acronymExplained(doc.Content, loc[0], loc[1]) {
				unexplained++
			}
		}
	}
	details := map[string]float64{
		"total_words":          totalWords,
		"acronym_count":        acronyms,
		"unexplained_acronyms": unexplained,
	}
	if totalWords == 0 {
		return fallbackJargonLoad, details
	}

	density := unexplained / totalWords * 100
	details["density_per_100_words"] = math.Round(density*100) / 100
	switch {
	case density <= 0.5:
		return 95, details
	case density <= 1:
		return 85, details
	case density <= 2:
		return 70, details
	case density <= 4:
		return 50, details
	default:
		return 30, details
	}
}

// acronymExplained reports whether the occurrence sits next to a
// parenthetical expansion, as in "SLA (Service Level Agreement)" or
// "Service Level Agreement (SLA)".
func acronymExplained(content string, start, end int) bool {
	after := strings.TrimLeft(content[end:], " \t")
	if strings.HasPrefix(after, "(") {
		return true
	}
	before := strings.TrimRight(content[:start], " \t")
	return strings.HasSuffix(before, "(")
}

// scoreOwnershipClarity is the share of ownership statements that name a
// clear owner rather than deferring to "we will" language.
func scoreOwnershipClarity(cat *lexicon.Catalog, docs []domain.InputDocument) (float64, map[string]float64) {
	var clear, vague float64
	for _, doc := range docs {
		for _, pattern := range cat.ClearOwnershipPatterns() {
			clear += float64(len(pattern.FindAllStringIndex(doc.Content, -1)))
		}
		for _, pattern := range cat.VagueOwnershipPatterns() {
			vague += float64(len(pattern.FindAllStringIndex(doc.Content, -1)))
		}
	}
	details := map[string]float64{
		"clear_count": clear,
		"vague_count": vague,
	}
	if clear+vague == 0 {
		return fallbackOwnershipClarity, details
	}
	return round1(clear / (clear + vague) * 100), details
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
