package ollama

import "fmt"

const maxContextSnippet = 1000

func buildConsistencyPrompt(term, contextA, contextB string) string {
	return fmt.Sprintf(`You compare how a business term is used in two text excerpts.
Return a strict JSON object with keys:
inconsistent (boolean, true only when the two usages imply conflicting meanings or commitments), reason (string, one sentence).
No markdown, no extra keys.

Term: %q

Excerpt 1:
%s

Excerpt 2:
%s
`, term, clip(contextA), clip(contextB))
}

func clip(s string) string {
	if len(s) > maxContextSnippet {
		return s[:maxContextSnippet]
	}
	return s
}
