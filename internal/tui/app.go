// Package tui provides the interactive Bubble Tea dashboard for wallet.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/wallet/internal/model"
	"github.com/theirongolddev/wallet/internal/pipeline"
	"github.com/theirongolddev/wallet/internal/tui/components"
	"github.com/theirongolddev/wallet/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the saved inputs and history have been read
// and the projection recomputed.
type DataLoadedMsg struct {
	Snapshot model.Snapshot
	History  []model.BalanceHistoryRecord
	Outcome  pipeline.Outcome
	Err      error
}

// SavedMsg is sent when today's projection has been recorded.
type SavedMsg struct {
	Outcome pipeline.Outcome
	History []model.BalanceHistoryRecord
	Err     error
}

const (
	tabProjection = iota
	tabBreakdown
	tabHistory
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 160
	minContentHeight = 5
)

// App is the root Bubble Tea model.
type App struct {
	planner *pipeline.Planner
	symbol  string
	keys    keyMap

	// Data
	snapshot model.Snapshot
	outcome  pipeline.Outcome
	history  []model.BalanceHistoryRecord
	loaded   bool
	err      error
	status   string

	// UI state
	width         int
	height        int
	activeTab     int
	showHelp      bool
	historyScroll int
	saving        bool

	spinner spinner.Model
}

// NewApp creates a new TUI app model backed by planner.
func NewApp(planner *pipeline.Planner, currencySymbol string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		planner: planner,
		symbol:  currencySymbol,
		keys:    defaultKeyMap(),
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.planner),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || msg.Action != tea.MouseActionPress {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.scrollHistory(-1)
		case tea.MouseButtonWheelDown:
			a.scrollHistory(1)
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := components.TabAtX(msg.X, a.activeTab); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if !a.loaded {
			return a, nil
		}

		if key.Matches(msg, a.keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch {
		case key.Matches(msg, a.keys.Projection):
			a.activeTab = tabProjection
		case key.Matches(msg, a.keys.Breakdown):
			a.activeTab = tabBreakdown
		case key.Matches(msg, a.keys.History):
			a.activeTab = tabHistory
		case key.Matches(msg, a.keys.NextTab):
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case key.Matches(msg, a.keys.PrevTab):
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case key.Matches(msg, a.keys.Up):
			a.scrollHistory(-1)
		case key.Matches(msg, a.keys.Down):
			a.scrollHistory(1)
		case key.Matches(msg, a.keys.Reload):
			a.status = "reloading"
			return a, loadDataCmd(a.planner)
		case key.Matches(msg, a.keys.Save):
			if a.saving || a.err != nil {
				return a, nil
			}
			a.saving = true
			a.status = "saving"
			return a, saveCmd(a.planner, a.snapshot)
		}
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.err = msg.Err
		a.snapshot = msg.Snapshot
		a.history = msg.History
		a.outcome = msg.Outcome
		a.historyScroll = 0
		a.status = ""
		if msg.Err != nil {
			a.status = "error: " + msg.Err.Error()
		}
		return a, nil

	case SavedMsg:
		a.saving = false
		if msg.History != nil {
			a.history = msg.History
		}
		var perr *pipeline.PersistError
		switch {
		case errors.As(msg.Err, &perr):
			a.outcome = msg.Outcome
			a.status = "not saved: " + perr.Error()
		case msg.Err != nil:
			a.status = "error: " + msg.Err.Error()
		default:
			a.outcome = msg.Outcome
			a.status = "recorded " + msg.Outcome.Record.Date.Format("2006-01-02")
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) scrollHistory(delta int) {
	if a.activeTab != tabHistory {
		return
	}
	a.historyScroll = max(0, min(a.historyScroll+delta, len(a.history)-1))
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  wallet needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 3).
		Render(a.spinner.View() + lipgloss.NewStyle().Foreground(t.TextMuted).Render(" Loading saved inputs..."))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewHelp() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range a.keys.helpRows() {
		h := bind.Help()
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", h.Key)),
			descStyle.Render(h.Desc))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("Press any key to close"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 3).
		Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, "[p/b/h] tabs  [s] record  [r] reload  [?] help  [q] quit", a.status)

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch {
	case a.err != nil:
		content = components.ContentCard("Error", a.err.Error(), cw)
	case a.activeTab == tabProjection:
		content = a.renderProjectionTab(cw)
	case a.activeTab == tabBreakdown:
		content = a.renderBreakdownTab(cw)
	case a.activeTab == tabHistory:
		content = a.renderHistoryTab(cw, contentH)
	}
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.PlaceHorizontal(w, lipgloss.Center, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Commands ───────────────────────────────────────────────────

func loadDataCmd(p *pipeline.Planner) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		snap, history, err := p.Load(ctx)
		if err != nil {
			return DataLoadedMsg{Snapshot: snap, Err: err}
		}
		out, err := p.Compute(pipeline.SubmissionFromSnapshot(snap))
		return DataLoadedMsg{Snapshot: snap, History: history, Outcome: out, Err: err}
	}
}

func saveCmd(p *pipeline.Planner, snap model.Snapshot) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		out, err := p.Submit(ctx, pipeline.SubmissionFromSnapshot(snap))
		// The outcome is valid even when persisting failed.
		_, history, loadErr := p.Load(ctx)
		if loadErr != nil {
			history = nil
		}
		return SavedMsg{Outcome: out, History: history, Err: err}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
