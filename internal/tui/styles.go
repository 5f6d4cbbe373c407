package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Palette lifted from the web dashboard this replaces: indigo header,
	// green/red/gray sentiment badges.
	colorPrimary  = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#667EEA"}
	colorText     = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorDim      = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent   = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorBorder   = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorStatusBg = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}
	colorStatusFg = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorPositive = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	colorNegative = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	colorNeutral  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	metricBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			Align(lipgloss.Center)

	metricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	metricLabelStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary).
				PaddingLeft(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	cardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	cardMetaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	cardBodyStyle = lipgloss.NewStyle().
			Foreground(colorText)

	cardLinkStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	staleStyle = lipgloss.NewStyle().
			Foreground(colorNegative).
			Bold(true)

	localStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	searchPromptStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1).
			Bold(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	optionActiveStyle = lipgloss.NewStyle().
				Foreground(colorPositive).
				Bold(true)

	optionStyle = lipgloss.NewStyle().
			Foreground(colorText)
)

// sentimentStyle picks the badge color for a label. Matching is
// display-only and forgiving about casing; unknown labels fall back to
// the primary color so new upstream labels still render.
func sentimentStyle(label string) lipgloss.Style {
	switch strings.ToLower(label) {
	case "positive":
		return lipgloss.NewStyle().Foreground(colorPositive)
	case "negative":
		return lipgloss.NewStyle().Foreground(colorNegative)
	case "neutral":
		return lipgloss.NewStyle().Foreground(colorNeutral)
	default:
		return lipgloss.NewStyle().Foreground(colorPrimary)
	}
}
