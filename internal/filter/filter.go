// Package filter derives the displayed view from a table snapshot. It is
// pure: the input table is never mutated and identical inputs always
// produce identical output.
package filter

import (
	"strings"

	"github.com/sonikratika023-droid/livepulse-automated/internal/article"
)

// Criteria is the combined set of active predicates. An empty set on any
// axis leaves that axis unfiltered (the multiselect "all" default).
// Sentiment, source and topic values are opaque strings compared
// case-sensitively against whatever the table actually contains.
type Criteria struct {
	Search     string
	Sentiments []string
	Sources    []string
	Topics     []string
}

// IsZero reports whether no predicate is active.
func (c Criteria) IsZero() bool {
	return c.Search == "" && len(c.Sentiments) == 0 && len(c.Sources) == 0 && len(c.Topics) == 0
}

// Apply filters the table with every predicate ANDed, preserving the
// relative order of matching rows. Tables are dashboard-sized, so this
// is a plain O(n) scan on every call; a future indexed implementation
// can live behind the same signature.
func Apply(t article.Table, c Criteria) article.Table {
	if c.IsZero() {
		return t
	}

	search := strings.ToLower(c.Search)
	sentiments := toSet(c.Sentiments)
	sources := toSet(c.Sources)
	topics := toSet(c.Topics)

	out := make(article.Table, 0, len(t))
	for _, a := range t {
		if search != "" && !matchesSearch(a, search) {
			continue
		}
		if sentiments != nil && !sentiments[a.Sentiment] {
			continue
		}
		if sources != nil && !sources[a.Source] {
			continue
		}
		if topics != nil && !topics[a.Topic] {
			continue
		}
		out = append(out, a)
	}
	return out
}

// matchesSearch does a case-insensitive substring match over title OR
// description. A missing description only rules out that field, not the
// row.
func matchesSearch(a article.Article, lowered string) bool {
	if strings.Contains(strings.ToLower(a.Title), lowered) {
		return true
	}
	return a.Description != "" && strings.Contains(strings.ToLower(a.Description), lowered)
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
