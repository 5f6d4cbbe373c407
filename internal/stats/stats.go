// Package stats computes the derived numbers behind the overview screen:
// headline metrics, per-label distributions and trending title keywords.
// Everything here is a pure pass over an already-filtered table.
package stats

import (
	"sort"
	"strings"
	"unicode"

	"github.com/sonikratika023-droid/livepulse-automated/internal/article"
)

// Summary is the headline metric row.
type Summary struct {
	Total       int
	SourceCount int
	TopicCount  int
}

// LabelCount pairs a label with how many articles carry it.
type LabelCount struct {
	Label string
	Count int
}

// Summarize computes the headline metrics for a table.
func Summarize(t article.Table) Summary {
	return Summary{
		Total:       len(t),
		SourceCount: len(t.Sources()),
		TopicCount:  len(t.Topics()),
	}
}

// Share returns the fraction (0–1) of articles carrying the given
// sentiment label. Zero for an empty table.
func Share(t article.Table, sentiment string) float64 {
	if len(t) == 0 {
		return 0
	}
	n := 0
	for _, a := range t {
		if a.Sentiment == sentiment {
			n++
		}
	}
	return float64(n) / float64(len(t))
}

// SentimentCounts returns every sentiment label with its article count,
// ordered by count descending, ties broken by first appearance.
func SentimentCounts(t article.Table) []LabelCount {
	return countBy(t, func(a article.Article) string { return a.Sentiment }, 0)
}

// TopSources returns the n most frequent sources.
func TopSources(t article.Table, n int) []LabelCount {
	return countBy(t, func(a article.Article) string { return a.Source }, n)
}

// TopTopics returns the n most frequent topics.
func TopTopics(t article.Table, n int) []LabelCount {
	return countBy(t, func(a article.Article) string { return a.Topic }, n)
}

func countBy(t article.Table, key func(article.Article) string, limit int) []LabelCount {
	counts := make(map[string]int)
	order := make(map[string]int)
	for i, a := range t {
		k := key(a)
		if _, seen := counts[k]; !seen {
			order[k] = i
		}
		counts[k]++
	}

	out := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, LabelCount{Label: label, Count: count})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return order[out[i].Label] < order[out[j].Label]
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// stopwords are dropped from keyword extraction. Short function words
// only; anything domain-specific stays visible.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "have": true,
	"in": true, "is": true, "it": true, "its": true, "new": true, "no": true,
	"not": true, "of": true, "on": true, "or": true, "over": true, "say": true,
	"says": true, "that": true, "the": true, "their": true, "this": true,
	"to": true, "up": true, "was": true, "were": true, "will": true, "with": true,
	"after": true, "amid": true, "into": true, "more": true, "than": true,
}

// Keywords returns the n most frequent title words among articles with
// the given sentiment label, lowercased, stopwords and single letters
// removed. This is the word cloud's data in rankable form.
func Keywords(t article.Table, sentiment string, n int) []LabelCount {
	counts := make(map[string]int)
	order := make(map[string]int)
	pos := 0
	for _, a := range t {
		if a.Sentiment != sentiment {
			continue
		}
		for _, w := range tokenize(a.Title) {
			if _, seen := counts[w]; !seen {
				order[w] = pos
				pos++
			}
			counts[w]++
		}
	}

	out := make([]LabelCount, 0, len(counts))
	for w, c := range counts {
		out = append(out, LabelCount{Label: w, Count: c})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return order[out[i].Label] < order[out[j].Label]
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func tokenize(s string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len([]rune(w)) < 2 || stopwords[w] {
			continue
		}
		words = append(words, w)
	}
	return words
}
