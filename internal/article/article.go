package article

import (
	"sort"
	"time"
)

// Article is one annotated news item as stored in the remote table.
// Sentiment and topic come pre-computed from the ingestion side; this
// program never infers them.
type Article struct {
	ID             string
	Title          string
	Description    string
	URL            string
	Source         string
	Topic          string
	Sentiment      string
	SentimentScore float64
	Published      time.Time // zero = unknown
}

// Table is one snapshot of the articles table, in store order.
// It is replaced wholesale on refresh and never mutated in place.
type Table []Article

// Sentiments returns the distinct sentiment labels in first-seen order.
// Labels are opaque: whatever casing the upstream store emits is kept.
func (t Table) Sentiments() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range t {
		if !seen[a.Sentiment] {
			seen[a.Sentiment] = true
			out = append(out, a.Sentiment)
		}
	}
	return out
}

// Sources returns the distinct source names, sorted.
func (t Table) Sources() []string {
	return t.distinctSorted(func(a Article) string { return a.Source })
}

// Topics returns the distinct topic names, sorted.
func (t Table) Topics() []string {
	return t.distinctSorted(func(a Article) string { return a.Topic })
}

func (t Table) distinctSorted(key func(Article) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range t {
		k := key(a)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// PublishedLabel renders the publish date, or "N/A" when unknown.
func (a Article) PublishedLabel() string {
	if a.Published.IsZero() {
		return "N/A"
	}
	return a.Published.Format("2006-01-02 15:04")
}

// timeLayouts are the publish-date shapes seen in the store and in CSV
// exports, tried in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses a publish date, returning the zero time when the value
// is empty or matches no known layout. An unknown date is display-level
// "N/A", never an error.
func ParseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
