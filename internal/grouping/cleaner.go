package grouping

import (
	"strings"
	"unicode"
)

// fallbackName is returned when cleaning leaves nothing usable.
const fallbackName = "Service"

// separators between clauses of a raw service name. The catalog data
// contains names like "Wash & Fold - Wash And Fold" where a rename left
// both the old and new label glued together.
func isSeparator(r rune) bool {
	switch r {
	case '-', '–', '—', '|', ',':
		return true
	}
	return false
}

// CleanServiceName collapses an inconsistently formatted service name
// into a single display label. Clauses are split on separator
// punctuation, exact duplicates are dropped, and clauses that reduce to
// the same normalised root (case, pluralisation, "-ing" suffixes,
// connector words and punctuation ignored) are treated as duplicates of
// the first occurrence. The function is total and idempotent.
func CleanServiceName(raw string) string {
	pieces := splitClauses(raw)
	if len(pieces) == 0 {
		return fallbackName
	}

	// Exact duplicates first (case-sensitive).
	pieces = dedupeExact(pieces)

	// Then duplicates by normalised root, keeping first occurrences.
	if len(pieces) > 1 {
		seen := make(map[string]bool, len(pieces))
		kept := pieces[:0]
		for _, p := range pieces {
			root := normalizeClause(p)
			if seen[root] {
				continue
			}
			seen[root] = true
			kept = append(kept, p)
		}
		pieces = kept
	}

	if len(pieces) == 1 {
		return pieces[0]
	}
	return strings.Join(pieces, " - ")
}

func splitClauses(raw string) []string {
	var pieces []string
	for _, p := range strings.FieldsFunc(raw, isSeparator) {
		p = strings.TrimSpace(p)
		if p != "" {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

func dedupeExact(pieces []string) []string {
	seen := make(map[string]bool, len(pieces))
	kept := pieces[:0]
	for _, p := range pieces {
		if seen[p] {
			continue
		}
		seen[p] = true
		kept = append(kept, p)
	}
	return kept
}

// normalizeClause reduces a clause to a comparison root: lowercase,
// connector words dropped, trailing "s" then "ing" stripped per word,
// non-alphanumerics removed.
func normalizeClause(clause string) string {
	clause = strings.ToLower(clause)

	var b strings.Builder
	var word []rune
	flush := func() {
		if len(word) == 0 {
			return
		}
		w := string(word)
		word = word[:0]
		if w == "and" || w == "n" {
			return
		}
		w = strings.TrimSuffix(w, "s")
		w = strings.TrimSuffix(w, "ing")
		b.WriteString(w)
	}

	for _, r := range clause {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word = append(word, r)
		} else {
			flush()
		}
	}
	flush()

	return b.String()
}
