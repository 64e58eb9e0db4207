package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fentz26/advent/internal/models"
)

type fakeBackend struct {
	latest  []models.Run
	history map[int][]models.Run
	ran     []int
	runErr  error
}

func (f *fakeBackend) Days() []DayInfo {
	return []DayInfo{
		{Day: 1, Title: "Chronal Calibration"},
		{Day: 2, Title: "Inventory Management System"},
	}
}

func (f *fakeBackend) LatestRuns() ([]models.Run, error) { return f.latest, nil }

func (f *fakeBackend) History(day, limit int) ([]models.Run, error) {
	return f.history[day], nil
}

func (f *fakeBackend) RunDay(ctx context.Context, day int) ([]models.Run, error) {
	f.ran = append(f.ran, day)
	if f.runErr != nil {
		return nil, f.runErr
	}
	return []models.Run{
		{Day: day, Part: 1, Answer: "3", Status: models.RunStatusPass},
		{Day: day, Part: 2, Answer: "2", Status: models.RunStatusFail, Expected: "5"},
	}, nil
}

// send applies msg and then every message its command produces.
func send(t *testing.T, a *App, msg tea.Msg) {
	t.Helper()
	_, cmd := a.Update(msg)
	drain(t, a, cmd)
}

func drain(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				drain(t, a, c)
			}
			return
		}
		_, cmd = a.Update(msg)
	}
}

func newTestApp(t *testing.T, backend *fakeBackend) *App {
	t.Helper()
	a := New(context.Background(), backend)
	send(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	drain(t, a, a.Init())
	return a
}

func TestAppListsDays(t *testing.T) {
	backend := &fakeBackend{
		latest: []models.Run{{Day: 1, Part: 1, Answer: "484", Status: models.RunStatusPass}},
		history: map[int][]models.Run{
			1: {{Day: 1, Part: 1, Answer: "484", Status: models.RunStatusPass, StartedAt: time.Now()}},
		},
	}
	a := newTestApp(t, backend)

	require.Len(t, a.items, 2)
	require.NotNil(t, a.items[0].Parts[0])
	assert.Nil(t, a.items[0].Parts[1])
	assert.Len(t, a.history, 1)

	view := a.View()
	assert.Contains(t, view, "Day 1: Chronal Calibration")
	assert.Contains(t, view, "484")
}

func TestAppRunsSelectedDay(t *testing.T) {
	backend := &fakeBackend{}
	a := newTestApp(t, backend)

	send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []int{1}, backend.ran)
	assert.Equal(t, 0, a.running)
	assert.Equal(t, "Day 1: 1 pass, 1 fail, 0 unchecked, 0 error", a.message)
}

func TestAppRunError(t *testing.T) {
	backend := &fakeBackend{runErr: errors.New("no input")}
	a := newTestApp(t, backend)

	send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Error(t, a.err)
	assert.Contains(t, a.statusBar(), "no input")
}

func TestAppSelectionLoadsHistory(t *testing.T) {
	backend := &fakeBackend{
		history: map[int][]models.Run{
			2: {{Day: 2, Part: 2, Answer: "fgij", Status: models.RunStatusUnchecked, StartedAt: time.Now()}},
		},
	}
	a := newTestApp(t, backend)
	assert.Empty(t, a.history)

	send(t, a, tea.KeyMsg{Type: tea.KeyDown})
	item, ok := a.selected()
	require.True(t, ok)
	assert.Equal(t, 2, item.Day)
	require.Len(t, a.history, 1)
	assert.Equal(t, "fgij", a.history[0].Answer)
}

func TestAppQuit(t *testing.T) {
	a := newTestApp(t, &fakeBackend{})

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := a.Update(key)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, key.String())
	}
}

func TestRenderDetail(t *testing.T) {
	item := DayItem{
		Day:  4,
		Name: "Repose Record",
		Parts: [2]*models.Run{
			{Day: 4, Part: 1, Answer: "240", Expected: "26281", Status: models.RunStatusFail, DurationMs: 3},
			nil,
		},
	}
	out := renderDetail(item, nil)
	assert.Contains(t, out, "Day 4: Repose Record")
	assert.Contains(t, out, "240")
	assert.Contains(t, out, "26281")
	assert.Contains(t, out, "not run")
	assert.False(t, strings.Contains(out, "History"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "a b", truncate("a\nb", 10))
}
