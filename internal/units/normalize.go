package units

import (
	"regexp"
	"strings"
)

// superscripts maps Unicode superscript digits to caret notation.
var superscripts = map[rune]string{
	'⁰': "^0", '¹': "^1", '²': "^2", '³': "^3", '⁴': "^4",
	'⁵': "^5", '⁶': "^6", '⁷': "^7", '⁸': "^8", '⁹': "^9",
}

var (
	perWordRe      = regexp.MustCompile(`(?i)\s+per\s+`)
	operatorGapRe  = regexp.MustCompile(`\s*([/^·*-])\s*`)
	bareExponentRe = regexp.MustCompile(`([A-Za-z])([2-9])([/^·*-]|$)`)
	unitTokenRe    = regexp.MustCompile(`^[A-Za-z°µ%]+(\^[0-9]+)?$`)
	spaceRunRe     = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a raw unit string: Unicode superscripts become
// caret notation, the word "per" becomes a slash, whitespace around
// operators collapses, bare digit exponents gain a caret (m2 -> m^2), and
// the product spellings "·" and "*" become "-". Two space-separated tokens
// that both look like units are joined as an implicit product. Pure,
// total, deterministic; never fails.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range s {
		if caret, ok := superscripts[r]; ok {
			b.WriteString(caret)
			continue
		}
		b.WriteRune(r)
	}
	s = b.String()

	s = perWordRe.ReplaceAllString(s, "/")
	s = operatorGapRe.ReplaceAllString(s, "$1")
	s = bareExponentRe.ReplaceAllString(s, "$1^$2$3")
	s = strings.ReplaceAll(s, "·", "-")
	s = strings.ReplaceAll(s, "*", "-")

	if strings.ContainsAny(s, " \t") {
		tokens := strings.Fields(s)
		if len(tokens) == 2 && unitTokenRe.MatchString(tokens[0]) && unitTokenRe.MatchString(tokens[1]) {
			s = tokens[0] + "-" + tokens[1]
		} else {
			s = spaceRunRe.ReplaceAllString(strings.TrimSpace(s), " ")
		}
	}
	return s
}

// NormalizeWithAliases applies Normalize and then resolves the result
// through the alias table, exact match first, then case-insensitive.
// Absence of an alias is not an error: the normalized string is returned
// unchanged.
func (e *Engine) NormalizeWithAliases(raw string) string {
	normalized := Normalize(raw)
	if canonical, ok := e.store.CanonicalUnit(normalized); ok {
		return canonical
	}
	return normalized
}
