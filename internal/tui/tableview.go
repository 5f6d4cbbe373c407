package tui

import (
	"github.com/charmbracelet/bubbles/table"

	"github.com/sonikratika023-droid/livepulse-automated/internal/article"
)

// newArticleTable builds the tabular view with the same columns the web
// dashboard shows: source, published, title, sentiment, topic.
func newArticleTable(height int) table.Model {
	t := table.New(
		table.WithColumns(articleColumns(80)),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		Bold(true).
		Foreground(colorPrimary).
		BorderForeground(colorBorder)
	s.Selected = s.Selected.
		Foreground(colorAccent).
		Bold(true)
	t.SetStyles(s)
	return t
}

func articleColumns(width int) []table.Column {
	// Title takes whatever is left after the fixed columns.
	titleWidth := width - (16 + 17 + 12 + 14) - 8
	if titleWidth < 20 {
		titleWidth = 20
	}
	return []table.Column{
		{Title: "Source", Width: 16},
		{Title: "Published", Width: 17},
		{Title: "Title", Width: titleWidth},
		{Title: "Sentiment", Width: 12},
		{Title: "Topic", Width: 14},
	}
}

func articleRows(t article.Table, limit int) []table.Row {
	if len(t) > limit {
		t = t[:limit]
	}
	rows := make([]table.Row, 0, len(t))
	for _, a := range t {
		rows = append(rows, table.Row{
			a.Source,
			a.PublishedLabel(),
			a.Title,
			a.Sentiment,
			a.Topic,
		})
	}
	return rows
}
