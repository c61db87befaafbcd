package osloplan

import (
	"sort"
	"strings"
)

// Relevance scores assigned by MatchScore. An exact title match always
// outranks a title substring match, which outranks a match in any other
// searchable field.
const (
	ScoreExactTitle = 3
	ScoreTitle      = 2
	ScoreOtherField = 1
)

// MatchScore ranks how well a document matches a search query.
// Matching is case-insensitive substring containment over the title,
// category, and department fields. Returns 0 for no match or an
// empty query.
func MatchScore(d *Document, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	title := strings.ToLower(d.Title)
	switch {
	case title == q:
		return ScoreExactTitle
	case strings.Contains(title, q):
		return ScoreTitle
	case strings.Contains(strings.ToLower(d.Category), q),
		strings.Contains(strings.ToLower(d.Department), q):
		return ScoreOtherField
	}
	return 0
}

// SortResults orders search results best match first: by score descending,
// then document priority descending, then title ascending. The sort is
// stable so equally ranked documents keep their catalog order.
func SortResults(results []*SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].Document.Priority != results[j].Document.Priority {
			return results[i].Document.Priority > results[j].Document.Priority
		}
		return results[i].Document.Title < results[j].Document.Title
	})
}
