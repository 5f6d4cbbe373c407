package tui

import (
	"reflect"
	"testing"

	"github.com/sonikratika023-droid/livepulse-automated/internal/article"
)

func panelTable() article.Table {
	return article.Table{
		{Sentiment: "Negative", Source: "BBC", Topic: "Weather"},
		{Sentiment: "Positive", Source: "CNN", Topic: "Finance"},
		{Sentiment: "Neutral", Source: "BBC", Topic: "Politics"},
	}
}

func TestPanelCriteriaEmptyMeansAll(t *testing.T) {
	p := newFilterPanel()
	p.setOptions(panelTable())

	c := p.criteria("")
	if !c.IsZero() {
		t.Errorf("no toggles should produce zero criteria, got %+v", c)
	}
}

func TestPanelToggleBuildsCriteria(t *testing.T) {
	p := newFilterPanel()
	p.setOptions(panelTable())

	// First group is sentiment, options in first-seen order.
	p.toggleCurrent() // Negative
	p.moveCursor(1)
	p.toggleCurrent() // Positive

	c := p.criteria("storm")
	if c.Search != "storm" {
		t.Errorf("search = %q", c.Search)
	}
	if !reflect.DeepEqual(c.Sentiments, []string{"Negative", "Positive"}) {
		t.Errorf("sentiments = %v", c.Sentiments)
	}
	if c.Sources != nil || c.Topics != nil {
		t.Errorf("untouched axes should stay nil: %v %v", c.Sources, c.Topics)
	}
}

func TestPanelToggleIsSymmetric(t *testing.T) {
	p := newFilterPanel()
	p.setOptions(panelTable())

	p.toggleCurrent()
	p.toggleCurrent()
	if !p.criteria("").IsZero() {
		t.Error("toggling twice should clear the selection")
	}
}

func TestPanelSurvivesRefresh(t *testing.T) {
	p := newFilterPanel()
	p.setOptions(panelTable())
	p.toggleCurrent() // Negative

	// New snapshot still contains Negative; the toggle must survive.
	p.setOptions(panelTable())
	c := p.criteria("")
	if !reflect.DeepEqual(c.Sentiments, []string{"Negative"}) {
		t.Errorf("active toggle lost on refresh: %v", c.Sentiments)
	}

	// Snapshot without Negative drops the dead toggle.
	p.setOptions(article.Table{{Sentiment: "Positive", Source: "CNN", Topic: "Finance"}})
	if !p.criteria("").IsZero() {
		t.Error("toggle for a vanished value should be dropped")
	}
}

func TestPanelGroupNavigationWraps(t *testing.T) {
	p := newFilterPanel()
	p.setOptions(panelTable())

	if p.group().name != "Sentiment" {
		t.Fatalf("first group = %q", p.group().name)
	}
	p.nextGroup()
	p.nextGroup()
	p.nextGroup()
	if p.group().name != "Sentiment" {
		t.Errorf("expected wrap back to Sentiment, got %q", p.group().name)
	}
	p.prevGroup()
	if p.group().name != "Topic" {
		t.Errorf("expected Topic, got %q", p.group().name)
	}
}

func TestPanelClear(t *testing.T) {
	p := newFilterPanel()
	p.setOptions(panelTable())
	p.toggleCurrent()
	p.nextGroup()
	p.toggleCurrent()
	if p.activeCount() != 2 {
		t.Fatalf("expected 2 active toggles, got %d", p.activeCount())
	}
	p.clear()
	if p.activeCount() != 0 {
		t.Errorf("clear left %d toggles", p.activeCount())
	}
	if p.label() != "All" {
		t.Errorf("label after clear = %q, want All", p.label())
	}
}
