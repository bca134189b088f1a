// Package retrieval fetches plant-care content from a whitelist of external
// sites. For each source an ordered list of URL templates is tried against
// slug candidates; the first valid page wins for that source and the engine
// stops once enough distinct sources contributed one page each.
package retrieval

import "strings"

// SlugPlaceholder marks the slug position inside a URL template.
const SlugPlaceholder = "{slug}"

// Source is one whitelisted site. Template order is a priority signal: the
// most specific, most likely correct template comes first.
type Source struct {
	Name     string
	Patterns []string
}

// DefaultSources is the retrieval whitelist, defined at startup and
// read-only afterwards.
var DefaultSources = []Source{
	{
		Name: "Conservation Nature",
		Patterns: []string{
			"https://www.conservation-nature.fr/plantes/{slug}",
		},
	},
	{
		Name: "Nature & Jardin",
		// The site's structure varies, so several safe paths are tried.
		Patterns: []string{
			"http://nature.jardin.free.fr/{slug}.html",
			"http://nature.jardin.free.fr/{slug}/index.html",
			"http://nature.jardin.free.fr/{slug}/",
			"http://nature.jardin.free.fr/{slug}",
		},
	},
}

// URL substitutes a slug into a template.
func (s Source) URL(pattern, slug string) string {
	return strings.ReplaceAll(pattern, SlugPlaceholder, slug)
}

// CandidateSlugs derives the ordered slug sequence for a normalized query,
// most specific first: the full slug, then its first hyphen-separated
// component alone as a broader fallback (species to genus).
func CandidateSlugs(normalizedQuery string) []string {
	if normalizedQuery == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(normalizedQuery, "-") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) >= 2 {
		return []string{normalizedQuery, parts[0]}
	}
	return []string{normalizedQuery}
}
