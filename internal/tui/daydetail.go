package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/fentz26/advent/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginTop(1)
)

// historyLimit bounds the runs shown under a day.
const historyLimit = 10

// renderDetail renders a day's latest answers and recent runs.
func renderDetail(item DayItem, history []models.Run) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(item.Title()))
	b.WriteString("\n\n")

	for i, run := range item.Parts {
		label := fmt.Sprintf("Part %d", i+1)
		if run == nil {
			b.WriteString(renderField(label, "not run"))
			continue
		}
		b.WriteString(renderField(label, formatStatus(run.Status).Render(string(run.Status))))
		if run.Answer != "" {
			b.WriteString(renderField("  Answer", run.Answer))
		}
		if run.Expected != "" && run.Expected != run.Answer {
			b.WriteString(renderField("  Expected", run.Expected))
		}
		if run.Error != "" {
			b.WriteString(renderField("  Error", truncate(run.Error, 100)))
		}
		b.WriteString(renderField("  Took", fmt.Sprintf("%dms", run.DurationMs)))
	}

	if len(history) > 0 {
		b.WriteString(sectionStyle.Render("History"))
		b.WriteString("\n")
		for i, run := range history {
			if i >= historyLimit {
				b.WriteString(fmt.Sprintf("  ... and %d more runs\n", len(history)-historyLimit))
				break
			}
			answer := run.Answer
			if answer == "" {
				answer = "-"
			}
			b.WriteString(fmt.Sprintf("  part %d %s %s (%s)\n",
				run.Part,
				formatStatus(run.Status).Render(string(run.Status)),
				truncate(answer, 40),
				humanize.Time(run.StartedAt)))
		}
	}

	return b.String()
}

func renderField(label, value string) string {
	return fmt.Sprintf("%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
