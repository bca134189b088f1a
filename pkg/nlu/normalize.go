// Package nlu implements the deterministic, rule-based understanding layer:
// text normalization, intent classification and slot extraction. Every rule
// is an ordered, inspectable table; there is no statistical model here.
package nlu

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	nonToken   = regexp.MustCompile(`[^a-z0-9\s-]`)
	spaceRun   = regexp.MustCompile(`\s+`)
	hyphenRun  = regexp.MustCompile(`-{2,}`)
)

// Normalize lowercases, strips diacritics and replaces every character that
// is not a letter, digit, space or hyphen with a space, then collapses
// whitespace. Idempotent: Normalize(Normalize(x)) == Normalize(x). Empty
// input yields empty output.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	s = nonToken.ReplaceAllString(s, " ")
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Slugify turns a plant name into a URL path segment: normalized form with
// spaces replaced by single hyphens and hyphen runs collapsed.
func Slugify(s string) string {
	s = strings.ReplaceAll(Normalize(s), " ", "-")
	return strings.Trim(hyphenRun.ReplaceAllString(s, "-"), "-")
}
