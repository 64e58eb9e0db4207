package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/fentz26/advent/internal/models"
)

var (
	listTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusPass      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	statusFail      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	statusUnchecked = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	statusError     = lipgloss.NewStyle().Foreground(lipgloss.Color("5")) // Magenta
	statusNone      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// DayItem implements list.Item for one day and its latest runs.
type DayItem struct {
	Day   int
	Name  string
	Parts [2]*models.Run
}

func (i DayItem) FilterValue() string { return i.Name }
func (i DayItem) Title() string       { return fmt.Sprintf("Day %d: %s", i.Day, i.Name) }
func (i DayItem) Description() string {
	return fmt.Sprintf("%s  %s", formatPart(1, i.Parts[0]), formatPart(2, i.Parts[1]))
}

func formatPart(part int, run *models.Run) string {
	if run == nil {
		return statusNone.Render(fmt.Sprintf("○ part %d", part))
	}
	return formatStatus(run.Status).Render(fmt.Sprintf("● part %d %s", part, run.Status))
}

func formatStatus(status models.RunStatus) lipgloss.Style {
	switch status {
	case models.RunStatusPass:
		return statusPass
	case models.RunStatusFail:
		return statusFail
	case models.RunStatusUnchecked:
		return statusUnchecked
	case models.RunStatusError:
		return statusError
	default:
		return statusNone
	}
}

// buildItems joins days with their latest runs.
func buildItems(days []DayInfo, latest []models.Run) []DayItem {
	items := make([]DayItem, len(days))
	index := make(map[int]int, len(days))
	for i, d := range days {
		items[i] = DayItem{Day: d.Day, Name: d.Title}
		index[d.Day] = i
	}
	for _, run := range latest {
		i, ok := index[run.Day]
		if !ok || run.Part < 1 || run.Part > 2 {
			continue
		}
		items[i].Parts[run.Part-1] = &run
	}
	return items
}

func newDayList() list.Model {
	delegate := list.NewDefaultDelegate()
	l := list.New([]list.Item{}, delegate, 40, 20)
	l.Title = "Days"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = listTitleStyle
	return l
}

func toListItems(items []DayItem) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}
