package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sonikratika023-droid/livepulse-automated/internal/article"
	"github.com/sonikratika023-droid/livepulse-automated/internal/filter"
)

// filterPanel is the multiselect over the three membership axes. Nothing
// toggled on an axis means "all", mirroring the filter semantics.
type filterPanel struct {
	groups   []filterGroup
	groupIdx int
	cursor   int
}

type filterGroup struct {
	name    string
	options []string
	active  map[string]bool
}

func newFilterPanel() filterPanel {
	return filterPanel{
		groups: []filterGroup{
			{name: "Sentiment", active: make(map[string]bool)},
			{name: "Source", active: make(map[string]bool)},
			{name: "Topic", active: make(map[string]bool)},
		},
	}
}

// setOptions refreshes the selectable values from the current snapshot.
// Active toggles survive a refresh as long as the value still exists.
func (p *filterPanel) setOptions(t article.Table) {
	p.groups[0].options = t.Sentiments()
	p.groups[1].options = t.Sources()
	p.groups[2].options = t.Topics()
	for gi := range p.groups {
		g := &p.groups[gi]
		valid := make(map[string]bool, len(g.options))
		for _, o := range g.options {
			valid[o] = true
		}
		for v := range g.active {
			if !valid[v] {
				delete(g.active, v)
			}
		}
	}
	p.clamp()
}

func (p *filterPanel) group() *filterGroup {
	return &p.groups[p.groupIdx]
}

func (p *filterPanel) nextGroup() {
	p.groupIdx = (p.groupIdx + 1) % len(p.groups)
	p.cursor = 0
}

func (p *filterPanel) prevGroup() {
	p.groupIdx = (p.groupIdx + len(p.groups) - 1) % len(p.groups)
	p.cursor = 0
}

func (p *filterPanel) moveCursor(delta int) {
	p.cursor += delta
	p.clamp()
}

func (p *filterPanel) clamp() {
	n := len(p.group().options)
	if n == 0 {
		p.cursor = 0
		return
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= n {
		p.cursor = n - 1
	}
}

func (p *filterPanel) toggleCurrent() {
	g := p.group()
	if p.cursor >= len(g.options) {
		return
	}
	v := g.options[p.cursor]
	if g.active[v] {
		delete(g.active, v)
	} else {
		g.active[v] = true
	}
}

func (p *filterPanel) clear() {
	for gi := range p.groups {
		p.groups[gi].active = make(map[string]bool)
	}
}

// activeCount returns how many toggles are on across all axes.
func (p *filterPanel) activeCount() int {
	n := 0
	for _, g := range p.groups {
		n += len(g.active)
	}
	return n
}

// criteria assembles the filter input from the toggles plus search text.
// Option order is kept so criteria comparison stays deterministic.
func (p *filterPanel) criteria(search string) filter.Criteria {
	pick := func(g filterGroup) []string {
		if len(g.active) == 0 {
			return nil
		}
		var out []string
		for _, o := range g.options {
			if g.active[o] {
				out = append(out, o)
			}
		}
		return out
	}
	return filter.Criteria{
		Search:     search,
		Sentiments: pick(p.groups[0]),
		Sources:    pick(p.groups[1]),
		Topics:     pick(p.groups[2]),
	}
}

func (p *filterPanel) label() string {
	var parts []string
	for _, g := range p.groups {
		if len(g.active) == 0 {
			continue
		}
		var on []string
		for _, o := range g.options {
			if g.active[o] {
				on = append(on, o)
			}
		}
		parts = append(parts, g.name+": "+strings.Join(on, ","))
	}
	if len(parts) == 0 {
		return "All"
	}
	return strings.Join(parts, " · ")
}

func (p *filterPanel) render(width, height int) string {
	var tabs []string
	for i, g := range p.groups {
		label := fmt.Sprintf("%s (%d)", g.name, len(g.active))
		if i == p.groupIdx {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(label))
		}
	}

	var lines []string
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	lines = append(lines, "")

	g := p.group()
	if len(g.options) == 0 {
		lines = append(lines, cardMetaStyle.Render("no values in current data"))
	}
	maxRows := height - 6
	if maxRows < 1 {
		maxRows = 1
	}
	start := 0
	if p.cursor >= maxRows {
		start = p.cursor - maxRows + 1
	}
	for i := start; i < len(g.options) && i < start+maxRows; i++ {
		o := g.options[i]
		mark := "[ ]"
		style := optionStyle
		if g.active[o] {
			mark = "[x]"
			style = optionActiveStyle
		}
		cursor := "  "
		if i == p.cursor {
			cursor = "> "
		}
		lines = append(lines, cursor+style.Render(mark+" "+truncateStr(o, width-10)))
	}

	lines = append(lines, "")
	lines = append(lines, cardMetaStyle.Render("space toggle · tab axis · c clear · esc close"))

	return panelStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}
