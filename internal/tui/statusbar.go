package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type statusInfo struct {
	shown      int
	total      int
	filters    string
	capturedAt time.Time
	stale      bool
	local      bool
	refreshing bool
	searching  bool
}

func renderStatusBar(info statusInfo, width int) string {
	left := fmt.Sprintf(" %d of %d articles", info.shown, info.total)
	if info.filters != "All" && info.filters != "" {
		left += " · " + truncateStr(info.filters, width/2)
	}
	if !info.capturedAt.IsZero() {
		left += " · fetched " + relativeTime(info.capturedAt)
	}
	if info.local {
		left += " · " + localStyle.Render("local file")
	}
	if info.stale {
		left += " · " + staleStyle.Render("stale")
	}
	if info.refreshing {
		left += " (refreshing...)"
	}

	right := " 1 overview  2 table  3 cards  / search  f filter  r refresh  q quit "
	if info.searching {
		right = " esc cancel  enter apply "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right
	return statusBarStyle.Width(width).Render(bar)
}
