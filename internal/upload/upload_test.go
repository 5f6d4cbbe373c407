package upload

import (
	"errors"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := `title,source,topic,sentiment,sentiment_score,published_date,url,description
Storm hits coast,BBC,Weather,Negative,-0.82,2026-08-12,https://example.com/storm,Heavy rain expected
Markets rally,CNN,Finance,Positive,,,,
`
	table, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table))
	}

	a := table[0]
	if a.Title != "Storm hits coast" || a.Source != "BBC" || a.Topic != "Weather" {
		t.Errorf("unexpected first row: %+v", a)
	}
	if a.Sentiment != "Negative" {
		t.Errorf("sentiment = %q", a.Sentiment)
	}
	if a.SentimentScore != -0.82 {
		t.Errorf("score = %v", a.SentimentScore)
	}
	if a.Published.IsZero() {
		t.Error("expected parsed publish date")
	}

	b := table[1]
	if b.SentimentScore != 0 {
		t.Errorf("missing score should be 0, got %v", b.SentimentScore)
	}
	if !b.Published.IsZero() {
		t.Errorf("missing date should be zero, got %v", b.Published)
	}
	if b.ID == "" {
		t.Error("rows without an id column value should get a synthetic one")
	}
}

func TestReadCSVColumnOrderIsFree(t *testing.T) {
	input := `sentiment,topic,source,title
Positive,Finance,CNN,Markets rally
`
	table, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if table[0].Title != "Markets rally" || table[0].Sentiment != "Positive" {
		t.Errorf("columns mapped wrong: %+v", table[0])
	}
}

func TestReadCSVMissingRequiredColumn(t *testing.T) {
	input := `title,source,sentiment
Storm hits coast,BBC,Negative
`
	_, err := ReadCSV(strings.NewReader(input))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Line != 1 {
		t.Errorf("header error should report line 1, got %d", perr.Line)
	}
	if !strings.Contains(perr.Msg, "topic") {
		t.Errorf("expected missing column named, got %q", perr.Msg)
	}
}

func TestReadCSVMissingRequiredValue(t *testing.T) {
	input := `title,source,topic,sentiment
Storm hits coast,BBC,Weather,Negative
,BBC,Weather,Negative
`
	_, err := ReadCSV(strings.NewReader(input))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Line != 3 {
		t.Errorf("expected error on line 3, got %d", perr.Line)
	}
}

func TestReadCSVBadScore(t *testing.T) {
	input := `title,source,topic,sentiment,sentiment_score
Storm hits coast,BBC,Weather,Negative,not-a-number
`
	_, err := ReadCSV(strings.NewReader(input))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Line != 2 {
		t.Errorf("expected error on line 2, got %d", perr.Line)
	}
}

func TestReadCSVEmptyFile(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError for empty file, got %v", err)
	}
}

func TestReadCSVPreservesRowOrder(t *testing.T) {
	input := `title,source,topic,sentiment
C article,S,T,Neutral
A article,S,T,Neutral
B article,S,T,Neutral
`
	table, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	want := []string{"C article", "A article", "B article"}
	for i, w := range want {
		if table[i].Title != w {
			t.Errorf("row %d = %q, want %q", i, table[i].Title, w)
		}
	}
}
