package tui

import (
	"fmt"
	"strings"

	"github.com/sonikratika023-droid/livepulse-automated/internal/article"
	"github.com/sonikratika023-droid/livepulse-automated/internal/browser"
)

// descriptionLimit matches the web dashboard's 500-character summary cut.
const descriptionLimit = 500

// renderCards draws the article-card view: every card shows its header
// line; the selected card expands to the full summary.
func (a *App) renderCards(width, height int) string {
	rows := a.view
	if len(rows) > a.rowLimit {
		rows = rows[:a.rowLimit]
	}
	if len(rows) == 0 {
		return cardMetaStyle.Render("\n  No articles match the current filters.")
	}

	var rendered []string
	used := 0
	// Window the cards around the cursor so the selected one stays visible.
	start := a.cursor - 2
	if start < 0 {
		start = 0
	}
	for i := start; i < len(rows); i++ {
		card := renderCard(rows[i], i == a.cursor, a.expanded && i == a.cursor, width-4)
		h := strings.Count(card, "\n") + 1
		if used+h > height && len(rendered) > 0 {
			break
		}
		rendered = append(rendered, card)
		used += h
	}

	return strings.Join(rendered, "\n")
}

func renderCard(a article.Article, selected, expanded bool, width int) string {
	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}

	badge := sentimentStyle(a.Sentiment).Bold(true).Render(a.Sentiment)
	score := cardMetaStyle.Render(fmt.Sprintf("%.2f", a.SentimentScore))

	var lines []string
	lines = append(lines, cardTitleStyle.Render(truncateStr(a.Title, width-4)))
	lines = append(lines, cardMetaStyle.Render(
		fmt.Sprintf("%s · %s · %s · ", a.Source, a.PublishedLabel(), a.Topic))+badge+" "+score)

	if expanded {
		desc := a.Description
		if desc == "" {
			desc = "No description available."
		}
		desc = truncateStr(desc, descriptionLimit)
		lines = append(lines, "")
		for _, l := range wrap(desc, width-4) {
			lines = append(lines, cardBodyStyle.Render(l))
		}
		if a.URL != "" && browser.Validate(a.URL) == nil {
			lines = append(lines, "")
			lines = append(lines, cardLinkStyle.Render("o open in browser → "+truncateStr(a.URL, width-24)))
		}
	}

	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// wrap breaks text on word boundaries to the given width.
func wrap(s string, width int) []string {
	if width < 10 {
		width = 10
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
