package filter

import (
	"reflect"
	"testing"

	"github.com/sonikratika023-droid/livepulse-automated/internal/article"
)

func sampleTable() article.Table {
	return article.Table{
		{ID: "1", Title: "Storm hits coast", Source: "BBC", Topic: "Weather", Sentiment: "Negative", Description: "Heavy rain expected"},
		{ID: "2", Title: "Markets rally", Source: "CNN", Topic: "Finance", Sentiment: "Positive"},
		{ID: "3", Title: "Quiet day in parliament", Source: "BBC", Topic: "Politics", Sentiment: "Neutral", Description: "A calm session before the storm"},
	}
}

func ids(t article.Table) []string {
	out := make([]string, len(t))
	for i, a := range t {
		out[i] = a.ID
	}
	return out
}

func TestApplyAndSemantics(t *testing.T) {
	got := Apply(sampleTable(), Criteria{
		Search:     "storm",
		Sentiments: []string{"Negative"},
	})
	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Errorf("expected only row 1, got %v", ids(got))
	}
}

func TestApplyEmptyCriteriaReturnsInputUnchanged(t *testing.T) {
	in := sampleTable()
	got := Apply(in, Criteria{})
	if !reflect.DeepEqual(got, in) {
		t.Errorf("empty criteria should return the table unchanged")
	}
}

func TestApplySearchCaseInsensitive(t *testing.T) {
	got := Apply(sampleTable(), Criteria{Search: "STORM"})
	// "storm" appears in row 1's title and row 3's description.
	if !reflect.DeepEqual(ids(got), []string{"1", "3"}) {
		t.Errorf("expected rows 1 and 3, got %v", ids(got))
	}
}

func TestApplySearchMissingDescription(t *testing.T) {
	// Row 2 has no description; a title match must still include it.
	got := Apply(sampleTable(), Criteria{Search: "markets"})
	if !reflect.DeepEqual(ids(got), []string{"2"}) {
		t.Errorf("expected row 2, got %v", ids(got))
	}

	// And its missing description must not match anything.
	got = Apply(sampleTable(), Criteria{Search: "zzz"})
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", ids(got))
	}
}

func TestApplySentimentCaseSensitive(t *testing.T) {
	// Labels are opaque: "negative" does not match "Negative".
	got := Apply(sampleTable(), Criteria{Sentiments: []string{"negative"}})
	if len(got) != 0 {
		t.Errorf("lowercase label should not match capitalized data, got %v", ids(got))
	}
}

func TestApplySetMembership(t *testing.T) {
	got := Apply(sampleTable(), Criteria{Sources: []string{"BBC"}})
	if !reflect.DeepEqual(ids(got), []string{"1", "3"}) {
		t.Errorf("expected BBC rows in order, got %v", ids(got))
	}

	got = Apply(sampleTable(), Criteria{Topics: []string{"Finance", "Politics"}})
	if !reflect.DeepEqual(ids(got), []string{"2", "3"}) {
		t.Errorf("expected rows 2 and 3, got %v", ids(got))
	}
}

func TestApplyIdempotent(t *testing.T) {
	c := Criteria{Search: "storm", Sentiments: []string{"Negative", "Neutral"}}
	once := Apply(sampleTable(), c)
	twice := Apply(once, c)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("applying the same criteria twice changed the result: %v vs %v", ids(once), ids(twice))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := sampleTable()
	want := sampleTable()
	Apply(in, Criteria{Search: "storm", Sources: []string{"BBC"}})
	if !reflect.DeepEqual(in, want) {
		t.Error("Apply mutated its input table")
	}
}

func TestCriteriaIsZero(t *testing.T) {
	if !(Criteria{}).IsZero() {
		t.Error("empty criteria should be zero")
	}
	if (Criteria{Search: "x"}).IsZero() {
		t.Error("criteria with search text is not zero")
	}
	if (Criteria{Topics: []string{"Weather"}}).IsZero() {
		t.Error("criteria with a topic set is not zero")
	}
}
