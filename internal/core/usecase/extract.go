package usecase

import (
	"unicode/utf8"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
	"github.com/okorolenko/semantic-audit/internal/core/lexicon"
)

// contextRadius is the number of bytes captured around a match, clamped to
// document bounds and snapped to rune boundaries.
const contextRadius = 100

type termHits struct {
	term        string
	occurrences []domain.TermOccurrence
}

// extractOccurrences scans every document for every catalog term. The result
// order is deterministic: terms appear in first-seen order, which is document
// order and then catalog scan order within a document. Terms with zero
// matches are absent.
func extractOccurrences(cat *lexicon.Catalog, docs []domain.InputDocument) []termHits {
	index := make(map[string]int)
	var out []termHits

	for _, doc := range docs {
		for _, term := range cat.Terms() {
			locs := cat.TermMatcher(term).FindAllStringIndex(doc.Content, -1)
			if len(locs) == 0 {
				continue
			}
			i, seen := index[term]
			if !seen {
				i = len(out)
				index[term] = i
				out = append(out, termHits{term: term})
			}
			for _, loc := range locs {
				out[i].occurrences = append(out[i].occurrences, domain.TermOccurrence{
					Term:         term,
					DocumentID:   doc.ID,
					DocumentName: doc.Name,
					Context:      contextWindow(doc.Content, loc[0], loc[1]),
				})
			}
		}
	}
	return out
}

func contextWindow(content string, start, end int) string {
	from := start - contextRadius
	if from < 0 {
		from = 0
	}
	to := end + contextRadius
	if to > len(content) {
		to = len(content)
	}
	for from > 0 && !utf8.RuneStart(content[from]) {
		from--
	}
	for to < len(content) && !utf8.RuneStart(content[to]) {
		to++
	}
	return content[from:to]
}
