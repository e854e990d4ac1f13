package usecase

import (
	"strings"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
	"github.com/okorolenko/semantic-audit/internal/core/lexicon"
)

// definitionMaxChars caps extracted definition text.
const definitionMaxChars = 200

type termDefinition struct {
	text         string
	hasThreshold bool
	hasBoundary  bool
	quality      domain.DefinitionQuality
}

// detectDefinition scans documents in input order and returns on the first
// template match in the first document that has one. Earliest-defined wins;
// later documents and templates are not consulted.
func detectDefinition(cat *lexicon.Catalog, term string, docs []domain.InputDocument) *termDefinition {
	templates := cat.DefinitionMatchers(term)
	for _, doc := range docs {
		for _, template := range templates {
			match := template.FindStringSubmatch(doc.Content)
			if match == nil {
				continue
			}
			return classifyDefinition(cat, match[1])
		}
	}
	return nil
}

// classifyDefinition grades a found definition: complete when it carries both
// a numeric-threshold cue and a scope-boundary cue, partial with exactly one,
// minimal with neither.
func classifyDefinition(cat *lexicon.Catalog, raw string) *termDefinition {
	text := strings.TrimSpace(raw)
	if runes := []rune(text); len(runes) > definitionMaxChars {
		text = string(runes[:definitionMaxChars])
	}
	lower := strings.ToLower(text)

	def := &termDefinition{text: text}
	def.hasThreshold = containsAny(lower, cat.LimitSignals())
	def.hasBoundary = containsAny(lower, cat.ExclusionSignals()) || containsAny(lower, cat.InclusionSignals())

	switch {
	case def.hasThreshold && def.hasBoundary:
		def.quality = domain.DefinitionComplete
	case def.hasThreshold || def.hasBoundary:
		def.quality = domain.DefinitionPartial
	default:
		def.quality = domain.DefinitionMinimal
	}
	return def
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
