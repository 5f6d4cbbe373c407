package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/sonikratika023-droid/livepulse-automated/internal/article"
	"github.com/sonikratika023-droid/livepulse-automated/internal/stats"
)

const (
	chartHeight = 8
	topN        = 10
	keywordN    = 8
)

// renderOverview is the terminal analogue of the web dashboard's first
// screen: metric row, sentiment distribution, top sources/topics,
// trending keywords.
func (a *App) renderOverview(width, height int) string {
	var sections []string

	sections = append(sections, renderMetricRow(a.view, width))
	sections = append(sections, "")

	half := width/2 - 2
	if half < 20 {
		half = width - 2
	}

	sentimentChart := renderCountChart("Sentiment Distribution", stats.SentimentCounts(a.view), half, true)
	sourceChart := renderCountChart(fmt.Sprintf("Top %d Sources", topN), stats.TopSources(a.view, topN), half, false)
	if half == width-2 {
		sections = append(sections, sentimentChart, "", sourceChart)
	} else {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, sentimentChart, "  ", sourceChart))
	}
	sections = append(sections, "")

	sections = append(sections, renderCountChart(fmt.Sprintf("Top %d Topics", topN), stats.TopTopics(a.view, topN), width-2, false))
	sections = append(sections, "")
	sections = append(sections, renderKeywords(a.view, width))

	if a.updateVersion != "" {
		sections = append(sections, "")
		sections = append(sections, cardMetaStyle.Render(
			fmt.Sprintf(" Update available: v%s", a.updateVersion)))
	}

	return strings.Join(sections, "\n")
}

func renderMetricRow(t article.Table, width int) string {
	s := stats.Summarize(t)

	boxes := []string{
		renderMetric("Articles", fmt.Sprintf("%d", s.Total)),
		renderMetric("Sources", fmt.Sprintf("%d", s.SourceCount)),
		renderMetric("Topics", fmt.Sprintf("%d", s.TopicCount)),
	}
	// Share of the most common sentiment, whatever its label.
	if counts := stats.SentimentCounts(t); len(counts) > 0 {
		top := counts[0]
		pct := stats.Share(t, top.Label) * 100
		boxes = append(boxes, renderMetric(top.Label, fmt.Sprintf("%.1f%%", pct)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func renderMetric(label, value string) string {
	content := metricValueStyle.Render(value) + "\n" + metricLabelStyle.Render(label)
	return metricBoxStyle.Render(content)
}

// renderCountChart draws one bar per label. sentimentColors switches the
// palette to the per-label badge colors.
func renderCountChart(title string, counts []stats.LabelCount, width int, sentimentColors bool) string {
	if len(counts) == 0 {
		return sectionTitleStyle.Render(title) + "\n" + cardMetaStyle.Render(" no data")
	}

	bc := barchart.New(width, chartHeight)
	for _, lc := range counts {
		style := lipgloss.NewStyle().Foreground(colorPrimary)
		if sentimentColors {
			style = sentimentStyle(lc.Label)
		}
		bc.Push(barchart.BarData{
			Label: truncateStr(lc.Label, 12),
			Values: []barchart.BarValue{
				{Name: lc.Label, Value: float64(lc.Count), Style: style},
			},
		})
	}
	bc.Draw()

	return sectionTitleStyle.Render(title) + "\n" + bc.View()
}

// renderKeywords is the word cloud stand-in: ranked title words for the
// two most common sentiment labels side by side.
func renderKeywords(t article.Table, width int) string {
	counts := stats.SentimentCounts(t)
	if len(counts) == 0 {
		return ""
	}
	if len(counts) > 2 {
		counts = counts[:2]
	}

	colWidth := width/len(counts) - 2
	var cols []string
	for _, lc := range counts {
		words := stats.Keywords(t, lc.Label, keywordN)
		var lines []string
		lines = append(lines, sentimentStyle(lc.Label).Bold(true).Render(lc.Label+" keywords"))
		for _, w := range words {
			lines = append(lines, fmt.Sprintf("  %s %s",
				cardBodyStyle.Render(truncateStr(w.Label, colWidth-8)),
				cardMetaStyle.Render(fmt.Sprintf("(%d)", w.Count))))
		}
		if len(words) == 0 {
			lines = append(lines, cardMetaStyle.Render("  none"))
		}
		cols = append(cols, lipgloss.NewStyle().Width(colWidth).Render(strings.Join(lines, "\n")))
	}

	return sectionTitleStyle.Render("Trending Keywords") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
