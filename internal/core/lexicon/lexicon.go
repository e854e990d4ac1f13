// Package lexicon holds the static term catalog and pattern lists the scoring
// engine runs against. A Catalog is immutable after construction and safe to
// share across concurrent analyses.
package lexicon

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
)

// Risk multipliers are fixed constants, one per category.
var riskMultipliers = map[domain.TermCategory]float64{
	domain.CategoryPromiseWord:        3.0,
	domain.CategoryLifecycleVerb:      2.5,
	domain.CategoryFinancialStrategic: 2.0,
	domain.CategoryStatusLabel:        2.0,
	domain.CategoryOwnershipTerm:      1.5,
	domain.CategoryGeneral:            1.0,
}

// categoryOrder fixes the catalog scan order so extraction is deterministic.
var categoryOrder = []domain.TermCategory{
	domain.CategoryPromiseWord,
	domain.CategoryLifecycleVerb,
	domain.CategoryFinancialStrategic,
	domain.CategoryStatusLabel,
	domain.CategoryOwnershipTerm,
	domain.CategoryGeneral,
}

// Spec is the declarative catalog form, also the YAML override schema.
// Pattern entries are regular expressions compiled case-insensitively;
// signal entries are literal lowercase phrases.
type Spec struct {
	Terms   map[string][]string `yaml:"terms"`
	Signals struct {
		Limit     []string `yaml:"limit"`
		Exclusion []string `yaml:"exclusion"`
		Inclusion []string `yaml:"inclusion"`
	} `yaml:"signals"`
	Patterns struct {
		Vague          []string `yaml:"vague"`
		Promise        []string `yaml:"promise"`
		OwnershipClear []string `yaml:"ownership_clear"`
		OwnershipVague []string `yaml:"ownership_vague"`
	} `yaml:"patterns"`
}

type Catalog struct {
	order      []string
	categories map[string]domain.TermCategory

	limitSignals     []string
	exclusionSignals []string
	inclusionSignals []string
	boundarySignals  []string

	vaguePatterns     []*regexp.Regexp
	promisePatterns   []*regexp.Regexp
	clearOwnership    []*regexp.Regexp
	vagueOwnership    []*regexp.Regexp
	termMatchers      map[string]*regexp.Regexp
	definitionMatchers map[string][]*regexp.Regexp
}

// New builds an immutable catalog from a spec, precompiling every term
// matcher and definition template once.
func New(spec Spec) (*Catalog, error) {
	c := &Catalog{
		categories:         make(map[string]domain.TermCategory),
		termMatchers:       make(map[string]*regexp.Regexp),
		definitionMatchers: make(map[string][]*regexp.Regexp),
	}

	for _, category := range categoryOrder {
		for _, raw := range spec.Terms[string(category)] {
			term := strings.ToLower(strings.TrimSpace(raw))
			if term == "" {
				continue
			}
			if _, dup := c.categories[term]; dup {
				return nil, fmt.Errorf("lexicon: duplicate term %q", term)
			}
			matcher, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("lexicon: compile matcher for %q: %w", term, err)
			}
			templates, err := definitionTemplates(term)
			if err != nil {
				return nil, err
			}
			c.order = append(c.order, term)
			c.categories[term] = category
			c.termMatchers[term] = matcher
			c.definitionMatchers[term] = templates
		}
	}

	c.limitSignals = lowercaseAll(spec.Signals.Limit)
	c.exclusionSignals = lowercaseAll(spec.Signals.Exclusion)
	c.inclusionSignals = lowercaseAll(spec.Signals.Inclusion)
	c.boundarySignals = append(append(append([]string{},
		c.exclusionSignals...), c.inclusionSignals...), c.limitSignals...)

	var err error
	if c.vaguePatterns, err = compileAll("vague", spec.Patterns.Vague); err != nil {
		return nil, err
	}
	if c.promisePatterns, err = compileAll("promise", spec.Patterns.Promise); err != nil {
		return nil, err
	}
	if c.clearOwnership, err = compileAll("ownership_clear", spec.Patterns.OwnershipClear); err != nil {
		return nil, err
	}
	if c.vagueOwnership, err = compileAll("ownership_vague", spec.Patterns.OwnershipVague); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultSpec())
	if err != nil {
		panic(fmt.Sprintf("lexicon: default catalog invalid: %v", err))
	}
	return c
}

// Terms returns catalog terms in scan order.
func (c *Catalog) Terms() []string { return c.order }

func (c *Catalog) Category(term string) (domain.TermCategory, bool) {
	cat, ok := c.categories[strings.ToLower(term)]
	return cat, ok
}

// Multiplier returns the fixed risk multiplier for a category. Unknown
// categories weigh like General terms.
func (c *Catalog) Multiplier(category domain.TermCategory) float64 {
	if m, ok := riskMultipliers[category]; ok {
		return m
	}
	return riskMultipliers[domain.CategoryGeneral]
}

func (c *Catalog) TermMatcher(term string) *regexp.Regexp {
	return c.termMatchers[strings.ToLower(term)]
}

func (c *Catalog) DefinitionMatchers(term string) []*regexp.Regexp {
	return c.definitionMatchers[strings.ToLower(term)]
}

func (c *Catalog) LimitSignals() []string     { return c.limitSignals }
func (c *Catalog) ExclusionSignals() []string { return c.exclusionSignals }
func (c *Catalog) InclusionSignals() []string { return c.inclusionSignals }

// BoundarySignals is the union of exclusion, inclusion and limit phrases.
func (c *Catalog) BoundarySignals() []string { return c.boundarySignals }

func (c *Catalog) VaguePatterns() []*regexp.Regexp          { return c.vaguePatterns }
func (c *Catalog) PromisePatterns() []*regexp.Regexp        { return c.promisePatterns }
func (c *Catalog) ClearOwnershipPatterns() []*regexp.Regexp { return c.clearOwnership }
func (c *Catalog) VagueOwnershipPatterns() []*regexp.Regexp { return c.vagueOwnership }

// definitionTemplates builds the ordered definitional sentence patterns for a
// term. Each captures definition text non-greedily up to the next sentence
// terminator. Template order is significant: the first hit wins.
func definitionTemplates(term string) ([]*regexp.Regexp, error) {
	quoted := regexp.QuoteMeta(term)
	raw := []string{
		`(?i)\b` + quoted + `\s+(?:means|refers to|is defined as)\s+([^.!?\n]+)`,
		`(?i)when we say\s+["']?` + quoted + `["']?\s*,?\s*we mean\s+([^.!?\n]+)`,
		`(?i)\b` + quoted + `\s*[-–—:]\s*([^.!?\n]+)`,
		`(?i)definition of\s+["']?` + quoted + `["']?\s*:?\s*([^.!?\n]+)`,
		`(?i)["']` + quoted + `["']\s+(?:is|means)\s+([^.!?\n]+)`,
	}
	out := make([]*regexp.Regexp, 0, len(raw))
	for _, pattern := range raw {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("lexicon: compile definition template for %q: %w", term, err)
		}
		out = append(out, re)
	}
	return out, nil
}

func compileAll(group string, patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(`(?i)` + pattern)
		if err != nil {
			return nil, fmt.Errorf("lexicon: compile %s pattern %q: %w", group, pattern, err)
		}
		out = append(out, re)
	}
	return out, nil
}

func lowercaseAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
