// Package skills provides skill token normalization and fuzzy skill matching.
package skills

import (
	"strings"
	"unicode"
)

// NormalizeAll normalizes a list of raw skill tokens, dropping entries that
// normalize to the empty string. Synonyms are resolved via the given
// resolver; pass nil to skip synonym resolution.
func NormalizeAll(raw []string, resolver SynonymResolver) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		n := Normalize(s, resolver)
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Normalize canonicalizes a single free-text skill token: lower-cases,
// trims, and strips characters outside [a-z0-9+#\s]. Non-ASCII letters are
// stripped, not transliterated. Tokens like "c++" and "c#" survive intact.
// Interior whitespace runs collapse to one space.
func Normalize(s string, resolver SynonymResolver) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range strings.ToLower(s) {
		switch {
		case ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') || r == '+' || r == '#':
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if b.Len() > 0 && !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	n := strings.TrimSpace(b.String())
	if n == "" {
		return ""
	}
	if resolver != nil {
		if canonical := resolver.Resolve(n); canonical != "" {
			return canonical
		}
	}
	return n
}

// Match reports whether two normalized skill tokens are considered the same
// skill. Containment in either direction counts as a match, which tolerates
// compound tokens ("node" vs "nodejs") at the cost of some false positives.
// Aliases with no shared substring ("js" vs "javascript") are the synonym
// resolver's job, applied during normalization.
func Match(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// MatchRequired matches a candidate's skills against a job's required
// skills. Both lists are normalized through the resolver first. Returns the
// required skills that matched and those that did not, in required order.
func MatchRequired(candidateSkills, requiredSkills []string, resolver SynonymResolver) (matched, missing []string) {
	candidate := NormalizeAll(candidateSkills, resolver)
	for _, req := range NormalizeAll(requiredSkills, resolver) {
		found := false
		for _, have := range candidate {
			if Match(have, req) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}
	return matched, missing
}
