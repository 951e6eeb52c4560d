// Package normalize provides utilities for normalizing user-supplied names and search terms.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// likeEscape is the escape character used in LIKE patterns built by ContainsPattern.
const likeEscape = `\`

// Name trims surrounding whitespace from a user-supplied name and composes it to NFC,
// so "Ros\u00e9" and "Rose\u0301" store and compare as the same name.
// An empty result means the name is missing.
func Name(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// FlowerNames trims every name and drops the blank ones, keeping submission order.
// Blank entries are not an error; callers treat them as absent.
func FlowerNames(names []string) []string {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := Name(name); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}

// ContainsPattern builds a LIKE pattern matching any value containing term.
// LIKE wildcards in term are escaped so they match literally; use with ESCAPE '\'.
func ContainsPattern(term string) string {
	r := strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	)
	return "%" + r.Replace(term) + "%"
}
