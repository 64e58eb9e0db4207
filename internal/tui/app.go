// Package tui provides the interactive terminal browser over days and their runs.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fentz26/advent/internal/models"
	"github.com/fentz26/advent/internal/runner"
)

var (
	primaryColor = lipgloss.Color("#7C3AED")
	mutedColor   = lipgloss.Color("#6B7280")
	errorColor   = lipgloss.Color("#EF4444")
	fgColor      = lipgloss.Color("#F9FAFB")

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(fgColor).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	activePanelStyle = panelStyle.
				BorderForeground(primaryColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)

// App is the main TUI model.
type App struct {
	ctx     context.Context
	backend Backend
	list    list.Model
	detail  viewport.Model
	items   []DayItem
	history []models.Run
	message string
	err     error
	running int
	width   int
	height  int
}

// New creates the browser. Solves started from it run under ctx.
func New(ctx context.Context, backend Backend) *App {
	return &App{
		ctx:     ctx,
		backend: backend,
		list:    newDayList(),
		detail:  viewport.New(60, 20),
	}
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(ctx context.Context, backend Backend) error {
	p := tea.NewProgram(New(ctx, backend), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

type daysLoadedMsg struct {
	items []DayItem
}

type historyLoadedMsg struct {
	day  int
	runs []models.Run
}

type runFinishedMsg struct {
	day  int
	runs []models.Run
	err  error
}

type errMsg struct {
	err error
}

// Init loads the day list.
func (a *App) Init() tea.Cmd {
	return a.refresh()
}

func (a *App) refresh() tea.Cmd {
	return func() tea.Msg {
		latest, err := a.backend.LatestRuns()
		if err != nil {
			return errMsg{err}
		}
		return daysLoadedMsg{buildItems(a.backend.Days(), latest)}
	}
}

func (a *App) loadHistory(day int) tea.Cmd {
	return func() tea.Msg {
		runs, err := a.backend.History(day, historyLimit+1)
		if err != nil {
			return errMsg{err}
		}
		return historyLoadedMsg{day: day, runs: runs}
	}
}

func (a *App) runDay(day int) tea.Cmd {
	return func() tea.Msg {
		runs, err := a.backend.RunDay(a.ctx, day)
		return runFinishedMsg{day: day, runs: runs, err: err}
	}
}

// selected returns the highlighted day, if any.
func (a *App) selected() (DayItem, bool) {
	item, ok := a.list.SelectedItem().(DayItem)
	return item, ok
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case daysLoadedMsg:
		a.items = msg.items
		a.list.SetItems(toListItems(a.items))
		a.updateDetail()
		if item, ok := a.selected(); ok {
			return a, a.loadHistory(item.Day)
		}
		return a, nil

	case historyLoadedMsg:
		if item, ok := a.selected(); ok && item.Day == msg.day {
			a.history = msg.runs
			a.updateDetail()
		}
		return a, nil

	case runFinishedMsg:
		a.running = 0
		if msg.err != nil {
			a.err = msg.err
			a.message = ""
		} else {
			a.err = nil
			a.message = fmt.Sprintf("Day %d: %s", msg.day, runner.Summarize(msg.runs))
		}
		return a, a.refresh()

	case errMsg:
		a.err = msg.err
		return a, nil

	case tea.KeyMsg:
		if a.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "r":
			a.message = "Refreshing..."
			return a, a.refresh()
		case "enter":
			item, ok := a.selected()
			if !ok || a.running != 0 {
				return a, nil
			}
			a.running = item.Day
			a.err = nil
			a.message = fmt.Sprintf("Solving day %d...", item.Day)
			return a, a.runDay(item.Day)
		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			var cmd tea.Cmd
			a.detail, cmd = a.detail.Update(msg)
			return a, cmd
		}
	}

	before, _ := a.selected()
	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	if after, ok := a.selected(); ok && after.Day != before.Day {
		a.history = nil
		a.updateDetail()
		return a, tea.Batch(cmd, a.loadHistory(after.Day))
	}
	return a, cmd
}

func (a *App) layout() {
	listWidth := a.width / 3
	bodyHeight := max(a.height-2, 1)
	a.list.SetSize(listWidth, bodyHeight)
	a.detail.Width = max(a.width-listWidth-4, 1)
	a.detail.Height = max(bodyHeight-2, 1)
	a.updateDetail()
}

func (a *App) updateDetail() {
	item, ok := a.selected()
	if !ok {
		a.detail.SetContent(helpStyle.Render("No days registered."))
		return
	}
	a.detail.SetContent(renderDetail(item, a.history))
}

// View renders the browser.
func (a *App) View() string {
	pane := panelStyle
	if a.running != 0 {
		pane = activePanelStyle
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, a.list.View(), pane.Render(a.detail.View()))
	return lipgloss.JoinVertical(lipgloss.Left, body, a.statusBar())
}

func (a *App) statusBar() string {
	text := "enter: run  r: refresh  /: filter  q: quit"
	switch {
	case a.err != nil:
		text = errorStyle.Render("Error: " + a.err.Error())
	case a.message != "":
		text = a.message
	}
	return statusBarStyle.Render(text)
}
