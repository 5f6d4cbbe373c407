// Package upload parses a user-supplied CSV export into the same table
// shape the remote store serves. It is a fallback for when the store has
// no rows yet; its output is never merged with remote data.
package upload

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sonikratika023-droid/livepulse-automated/internal/article"
)

// requiredColumns must all be present in the header, each row non-empty.
var requiredColumns = []string{"title", "source", "topic", "sentiment"}

// ParseError reports the first malformed row or header problem. Line is
// 1-based; 1 is the header. Malformed rows fail the whole load rather
// than being dropped silently — the caller decides what to tell the user.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("csv line %d: %s", e.Line, e.Msg)
}

// ReadCSV parses a delimited article export. The first record is a
// header; column order is free. Required columns: title, source, topic,
// sentiment. Optional: id, description, url, sentiment_score,
// published_date.
func ReadCSV(r io.Reader) (article.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // length checked against the header below

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{Line: 1, Msg: "file is empty"}
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, &ParseError{Line: 1, Msg: fmt.Sprintf("missing required column %q", name)}
		}
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var table article.Table
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Line: line, Msg: err.Error()}
		}

		a := article.Article{
			ID:          field(rec, "id"),
			Title:       field(rec, "title"),
			Description: field(rec, "description"),
			URL:         field(rec, "url"),
			Source:      field(rec, "source"),
			Topic:       field(rec, "topic"),
			Sentiment:   field(rec, "sentiment"),
		}
		for _, name := range requiredColumns {
			if field(rec, name) == "" {
				return nil, &ParseError{Line: line, Msg: fmt.Sprintf("missing required value %q", name)}
			}
		}
		if a.ID == "" {
			a.ID = fmt.Sprintf("csv-%d", line)
		}
		if raw := field(rec, "sentiment_score"); raw != "" {
			score, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Msg: fmt.Sprintf("bad sentiment_score %q", raw)}
			}
			a.SentimentScore = score
		}
		a.Published = article.ParseTime(field(rec, "published_date"))

		table = append(table, a)
	}

	return table, nil
}
