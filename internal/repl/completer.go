package repl

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// specialForms are completable alongside the environment's bindings even
// though they are not env entries.
var specialForms = []string{"def", "cond", "lambda", "macro", "quote", "loop", "recur"}

// isWordBoundary reports whether the rune delimits a completable word.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '(', ')', '"':
		return true
	}
	return false
}

// currentWord returns the trailing word of the input line and the offset it
// starts at.
func currentWord(line string) (string, int) {
	start := len(line)
	for start > 0 {
		r := rune(line[start-1])
		if isWordBoundary(r) {
			break
		}
		start--
	}
	return line[start:], start
}

// complete returns completion candidates for the trailing word of the
// line, fuzzy-matched against the bound symbols and the special forms.
func complete(line string, symbols []string) []string {
	word, _ := currentWord(line)
	if word == "" {
		return nil
	}

	pool := make([]string, 0, len(symbols)+len(specialForms))
	pool = append(pool, symbols...)
	pool = append(pool, specialForms...)

	matches := fuzzy.Find(word, pool)
	out := make([]string, 0, len(matches))
	seen := make(map[string]struct{})
	for _, m := range matches {
		name := pool[m.Index]
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// applyCompletion replaces the trailing word of line with the candidate.
func applyCompletion(line, candidate string) string {
	_, start := currentWord(line)
	return line[:start] + candidate
}

// candidateHint renders the candidate list for display under the input.
func candidateHint(candidates []string, selected int) string {
	if len(candidates) == 0 {
		return ""
	}
	const maxShown = 8
	shown := candidates
	if len(shown) > maxShown {
		shown = shown[:maxShown]
	}
	parts := make([]string, len(shown))
	for i, c := range shown {
		if i == selected {
			parts[i] = "[" + c + "]"
		} else {
			parts[i] = c
		}
	}
	return strings.Join(parts, "  ")
}
