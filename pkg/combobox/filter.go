package combobox

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Filter returns the indexes of the terms that match query, best match
// first. An empty query is never passed to a Filter.
type Filter func(query string, terms []string) []int

// PrefixFilter keeps the terms that start with query, ignoring case, in their
// original order.
func PrefixFilter(query string, terms []string) []int {
	q := strings.ToLower(query)
	var out []int
	for i, term := range terms {
		if strings.HasPrefix(strings.ToLower(term), q) {
			out = append(out, i)
		}
	}
	return out
}

// FuzzyFilter keeps the terms that contain the characters of query in order,
// ranked by match quality.
func FuzzyFilter(query string, terms []string) []int {
	matches := fuzzy.Find(query, terms)
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}

func hasPrefixFold(s, prefix string) bool {
	r, p := []rune(s), []rune(prefix)
	return len(r) >= len(p) && strings.EqualFold(string(r[:len(p)]), prefix)
}
