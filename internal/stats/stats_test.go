package stats

import (
	"testing"

	"github.com/sonikratika023-droid/livepulse-automated/internal/article"
)

func sampleTable() article.Table {
	return article.Table{
		{Title: "Storm hits coast", Source: "BBC", Topic: "Weather", Sentiment: "Negative"},
		{Title: "Storm damage grows", Source: "BBC", Topic: "Weather", Sentiment: "Negative"},
		{Title: "Markets rally on jobs data", Source: "CNN", Topic: "Finance", Sentiment: "Positive"},
		{Title: "Parliament session calm", Source: "Reuters", Topic: "Politics", Sentiment: "Neutral"},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleTable())
	if s.Total != 4 {
		t.Errorf("Total = %d, want 4", s.Total)
	}
	if s.SourceCount != 3 {
		t.Errorf("SourceCount = %d, want 3", s.SourceCount)
	}
	if s.TopicCount != 3 {
		t.Errorf("TopicCount = %d, want 3", s.TopicCount)
	}
}

func TestShare(t *testing.T) {
	if got := Share(sampleTable(), "Negative"); got != 0.5 {
		t.Errorf("Share(Negative) = %v, want 0.5", got)
	}
	if got := Share(sampleTable(), "nonexistent"); got != 0 {
		t.Errorf("Share(nonexistent) = %v, want 0", got)
	}
	if got := Share(article.Table{}, "Positive"); got != 0 {
		t.Errorf("Share of empty table = %v, want 0", got)
	}
}

func TestSentimentCounts(t *testing.T) {
	got := SentimentCounts(sampleTable())
	if len(got) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(got))
	}
	if got[0].Label != "Negative" || got[0].Count != 2 {
		t.Errorf("top label = %+v, want Negative:2", got[0])
	}
	// Ties keep first-appearance order.
	if got[1].Label != "Positive" || got[2].Label != "Neutral" {
		t.Errorf("tie order wrong: %+v", got[1:])
	}
}

func TestTopSourcesLimit(t *testing.T) {
	got := TopSources(sampleTable(), 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(got))
	}
	if got[0].Label != "BBC" || got[0].Count != 2 {
		t.Errorf("top source = %+v, want BBC:2", got[0])
	}
}

func TestKeywords(t *testing.T) {
	got := Keywords(sampleTable(), "Negative", 5)
	if len(got) == 0 {
		t.Fatal("expected keywords for Negative articles")
	}
	if got[0].Label != "storm" || got[0].Count != 2 {
		t.Errorf("top keyword = %+v, want storm:2", got[0])
	}
	for _, kw := range got {
		if stopwords[kw.Label] {
			t.Errorf("stopword %q leaked into keywords", kw.Label)
		}
	}
}

func TestKeywordsIgnoresOtherSentiments(t *testing.T) {
	got := Keywords(sampleTable(), "Positive", 10)
	for _, kw := range got {
		if kw.Label == "storm" {
			t.Error("Positive keywords include a Negative-only title word")
		}
	}
}
