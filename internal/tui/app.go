package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sonikratika023-droid/livepulse-automated/internal/article"
	"github.com/sonikratika023-droid/livepulse-automated/internal/browser"
	"github.com/sonikratika023-droid/livepulse-automated/internal/cache"
	"github.com/sonikratika023-droid/livepulse-automated/internal/filter"
	"github.com/sonikratika023-droid/livepulse-automated/internal/update"
)

type viewMode int

const (
	viewOverview viewMode = iota
	viewTable
	viewCards
)

type inputMode int

const (
	inputNormal inputMode = iota
	inputSearch
	inputFilter
)

// RunOpts holds all parameters for launching the dashboard.
type RunOpts struct {
	Cache    *cache.Cache  // nil in CSV-only sessions
	Override article.Table // CSV fallback, nil if none supplied
	TTL      time.Duration
	RowLimit int
	Version  string
}

// App is the dashboard model. It only ever reads whole snapshots from
// the cache; all filtering happens on its copy of the table reference.
type App struct {
	cache    *cache.Cache
	override article.Table
	ttl      time.Duration
	rowLimit int
	version  string

	// Current snapshot and its derived view.
	table      article.Table
	view       article.Table
	capturedAt time.Time
	stale      bool
	local      bool
	dataErr    error
	loaded     bool

	criteria filter.Criteria
	panel    filterPanel

	searchInput textinput.Model
	spinner     spinner.Model
	tbl         table.Model

	viewMode  viewMode
	inputMode inputMode
	cursor    int
	expanded  bool

	width, height int
	refreshing    bool
	updateVersion string
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search title or description..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	rowLimit := opts.RowLimit
	if rowLimit <= 0 {
		rowLimit = 50
	}

	return &App{
		cache:       opts.Cache,
		override:    opts.Override,
		ttl:         opts.TTL,
		rowLimit:    rowLimit,
		version:     opts.Version,
		panel:       newFilterPanel(),
		searchInput: ti,
		spinner:     sp,
		tbl:         newArticleTable(20),
	}
}

// Run launches the dashboard and blocks until quit.
func Run(opts RunOpts) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick, a.loadCmd(), a.checkUpdateCmd()}
	if a.cache != nil {
		cmds = append(cmds, a.tickCmd())
	}
	a.refreshing = true
	return tea.Batch(cmds...)
}

// loadCmd reads a snapshot off the main loop. The cache handles TTL and
// refresh coalescing, so firing this often is harmless.
func (a *App) loadCmd() tea.Cmd {
	c := a.cache
	override := a.override
	return func() tea.Msg {
		if c == nil {
			return dataMsg{
				res:   cache.Result{Table: override, CapturedAt: time.Now()},
				local: true,
			}
		}
		return dataMsg{res: c.Get(context.Background())}
	}
}

// tickCmd schedules the background refresh at the TTL cadence.
func (a *App) tickCmd() tea.Cmd {
	return tea.Tick(a.ttl, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) checkUpdateCmd() tea.Cmd {
	version := a.version
	return func() tea.Msg {
		if res := update.Check(context.Background(), version); res != nil {
			return updateMsg{version: res.LatestVersion}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.tbl.SetColumns(articleColumns(msg.Width))
		a.tbl.SetWidth(msg.Width - 2)
		a.tbl.SetHeight(a.contentHeight())
		return a, nil

	case spinner.TickMsg:
		if !a.refreshing {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case dataMsg:
		a.applyData(msg)
		return a, nil

	case tickMsg:
		if a.cache == nil {
			return a, nil
		}
		return a, tea.Batch(a.loadCmd(), a.tickCmd())

	case updateMsg:
		a.updateVersion = msg.version
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// applyData installs a snapshot. An empty or unavailable remote result
// falls back to the CSV override when one was supplied; override data is
// never merged with remote data.
func (a *App) applyData(msg dataMsg) {
	a.refreshing = false
	a.loaded = true
	res := msg.res
	a.local = msg.local
	a.stale = res.Stale
	a.dataErr = res.Err
	a.capturedAt = res.CapturedAt

	t := res.Table
	if len(t) == 0 && a.override != nil {
		t = a.override
		a.local = true
		a.capturedAt = time.Now()
	}
	a.table = t
	a.panel.setOptions(a.table)
	a.applyFilters()
}

// applyFilters recomputes the derived view. Runs on every keystroke and
// toggle; the pipeline is a pure pass over the snapshot.
func (a *App) applyFilters() {
	a.criteria = a.panel.criteria(a.searchInput.Value())
	a.view = filter.Apply(a.table, a.criteria)
	a.tbl.SetRows(articleRows(a.view, a.rowLimit))
	if a.cursor >= len(a.view) {
		a.cursor = len(a.view) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.inputMode {
	case inputSearch:
		return a.handleSearchKey(msg)
	case inputFilter:
		return a.handleFilterKey(msg)
	default:
		return a.handleNormalKey(msg)
	}
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.inputMode = inputNormal
		a.applyFilters()
		return a, nil
	case "enter":
		a.searchInput.Blur()
		a.inputMode = inputNormal
		return a, nil
	}
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.applyFilters()
	return a, cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f", "q":
		a.inputMode = inputNormal
	case "tab", "l", "right":
		a.panel.nextGroup()
	case "shift+tab", "h", "left":
		a.panel.prevGroup()
	case "j", "down":
		a.panel.moveCursor(1)
	case "k", "up":
		a.panel.moveCursor(-1)
	case " ", "enter":
		a.panel.toggleCurrent()
		a.applyFilters()
	case "c":
		a.panel.clear()
		a.applyFilters()
	}
	return a, nil
}

func (a *App) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "1":
		a.viewMode = viewOverview
	case "2":
		a.viewMode = viewTable
	case "3":
		a.viewMode = viewCards

	case "/":
		a.inputMode = inputSearch
		a.searchInput.Focus()
		return a, textinput.Blink

	case "f":
		a.inputMode = inputFilter

	case "r":
		// Manual refresh: invalidate, then read through the cache. Other
		// readers landing in the same window share the one fetch.
		if a.cache != nil {
			a.cache.Invalidate()
			a.refreshing = true
			return a, tea.Batch(a.loadCmd(), a.spinner.Tick)
		}

	case "j", "down":
		if a.viewMode == viewCards {
			if a.cursor < len(a.view)-1 && a.cursor < a.rowLimit-1 {
				a.cursor++
				a.expanded = false
			}
			return a, nil
		}

	case "k", "up":
		if a.viewMode == viewCards {
			if a.cursor > 0 {
				a.cursor--
				a.expanded = false
			}
			return a, nil
		}

	case "enter", " ":
		if a.viewMode == viewCards {
			a.expanded = !a.expanded
			return a, nil
		}

	case "o":
		if u := a.selectedURL(); u != "" {
			// Fire and forget; a failed launch is not a dashboard error.
			_ = browser.Open(u)
			return a, nil
		}
	}

	// Table view owns its own scrolling.
	if a.viewMode == viewTable {
		var cmd tea.Cmd
		a.tbl, cmd = a.tbl.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) selectedURL() string {
	switch a.viewMode {
	case viewCards:
		if a.cursor < len(a.view) {
			return a.view[a.cursor].URL
		}
	case viewTable:
		i := a.tbl.Cursor()
		if i >= 0 && i < len(a.view) && i < a.rowLimit {
			return a.view[i].URL
		}
	}
	return ""
}

func (a *App) contentHeight() int {
	// header + optional search line + status bar
	h := a.height - 4
	if h < 5 {
		h = 5
	}
	return h
}

func (a *App) View() string {
	if a.width == 0 {
		return "loading..."
	}

	header := headerStyle.Render("LivePulse") +
		cardMetaStyle.Render("  real-time news intelligence  ") +
		cardMetaStyle.Render(time.Now().Format("Jan 2 15:04"))

	var body string
	switch {
	case !a.loaded:
		body = lipgloss.Place(a.width, a.contentHeight(), lipgloss.Center, lipgloss.Center,
			a.spinner.View()+" fetching articles...")
	case a.inputMode == inputFilter:
		body = a.panel.render(a.width, a.contentHeight())
	case len(a.table) == 0 && a.dataErr != nil:
		body = lipgloss.Place(a.width, a.contentHeight(), lipgloss.Center, lipgloss.Center,
			staleStyle.Render("Data unavailable")+"\n\n"+
				cardMetaStyle.Render(truncateStr(a.dataErr.Error(), a.width-8))+"\n\n"+
				cardMetaStyle.Render("r retry · q quit"))
	case len(a.table) == 0:
		body = lipgloss.Place(a.width, a.contentHeight(), lipgloss.Center, lipgloss.Center,
			cardMetaStyle.Render("No articles yet. Run the scraper, or pass --csv to load a file."))
	default:
		switch a.viewMode {
		case viewTable:
			body = a.tbl.View()
		case viewCards:
			body = a.renderCards(a.width, a.contentHeight())
		default:
			body = a.renderOverview(a.width, a.contentHeight())
		}
	}

	var searchLine string
	if a.inputMode == inputSearch || a.searchInput.Value() != "" {
		searchLine = "\n" + a.searchInput.View()
	}

	status := renderStatusBar(statusInfo{
		shown:      len(a.view),
		total:      len(a.table),
		filters:    a.filterLabel(),
		capturedAt: a.capturedAt,
		stale:      a.stale,
		local:      a.local,
		refreshing: a.refreshing,
		searching:  a.inputMode == inputSearch,
	}, a.width)

	content := header + "\n" + body + searchLine
	// Pin the status bar to the bottom.
	lines := strings.Count(content, "\n") + 1
	if pad := a.height - 1 - lines; pad > 0 {
		content += strings.Repeat("\n", pad)
	}
	return content + "\n" + status
}

func (a *App) filterLabel() string {
	label := a.panel.label()
	if s := a.searchInput.Value(); s != "" {
		if label == "All" {
			label = fmt.Sprintf("search %q", s)
		} else {
			label += fmt.Sprintf(" · search %q", s)
		}
	}
	return label
}
