package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remindcal/internal/model"
	"remindcal/internal/store"
)

func newTestApp(t *testing.T) (*App, *store.Store) {
	t.Helper()
	s := store.New(filepath.Join(t.TempDir(), "remind.json"))
	now := time.Date(2024, time.March, 14, 10, 0, 0, 0, time.UTC)
	a := New(s, Options{WeekStart: time.Monday, Now: func() time.Time { return now }})
	return a, s
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button}
}

// clickDay presses a mouse button over the cell showing day.
func clickDay(t *testing.T, a *App, day int, button tea.MouseButton) {
	t.Helper()
	for r, w := range a.view.Weeks {
		for c, cell := range w {
			if cell.Day == day {
				x, y := cellOrigin(r, c)
				a.Update(click(x+2, y, button))
				return
			}
		}
	}
	t.Fatalf("day %d not on screen", day)
}

func TestHitTest(t *testing.T) {
	assert.Equal(t, target{kind: targetPrev}, hitTest(marginX, navRow))
	assert.Equal(t, target{kind: targetNext}, hitTest(marginX+gridWidth-1, navRow))
	assert.Equal(t, target{}, hitTest(marginX+gridWidth/2, navRow))
	assert.Equal(t, target{kind: targetPreview}, hitTest(marginX+3, previewRow))
	assert.Equal(t, target{kind: targetCell, row: 0, col: 0}, hitTest(marginX, firstWeek))
	assert.Equal(t, target{kind: targetCell, row: 5, col: 6}, hitTest(marginX+gridWidth-1, firstWeek+5))
	assert.Equal(t, target{}, hitTest(marginX+gridWidth, firstWeek))
	assert.Equal(t, target{}, hitTest(0, firstWeek))
	assert.Equal(t, target{}, hitTest(marginX, headerRow))
}

func TestClickTogglesReminder(t *testing.T) {
	a, s := newTestApp(t)

	clickDay(t, a, 12, tea.MouseButtonLeft)
	require.Equal(t, modePrompt, a.mode)
	assert.Contains(t, a.View(), "Add Reminder")

	a.Update(key("Dentist"))
	a.Update(key("enter"))
	assert.Equal(t, modeCalendar, a.mode)
	text, ok := s.Get("2024-3-12")
	require.True(t, ok)
	assert.Equal(t, "Dentist", text)
	assert.Contains(t, a.view.MarkedDays(), 12)
	assert.Contains(t, a.View(), "•")

	clickDay(t, a, 12, tea.MouseButtonLeft)
	assert.Equal(t, modeCalendar, a.mode)
	assert.False(t, s.Has("2024-3-12"))
	assert.Empty(t, a.view.MarkedDays())
}

func TestPromptCancelAddsNothing(t *testing.T) {
	a, s := newTestApp(t)

	clickDay(t, a, 3, tea.MouseButtonLeft)
	a.Update(key("Dentist"))
	a.Update(key("esc"))
	assert.Equal(t, modeCalendar, a.mode)
	assert.False(t, s.Has("2024-3-3"))
}

func TestRightClickShowsReminder(t *testing.T) {
	a, s := newTestApp(t)
	require.NoError(t, s.Set("2024-3-5", "Call mom"))
	a.redraw()

	clickDay(t, a, 5, tea.MouseButtonRight)
	require.Equal(t, modeDialog, a.mode)
	assert.Equal(t, "Reminder for 2024-3-5:\nCall mom", a.dialog.body)

	a.Update(key("enter"))
	assert.Equal(t, modeCalendar, a.mode)

	clickDay(t, a, 6, tea.MouseButtonRight)
	assert.Equal(t, "No reminder set for 2024-3-6.", a.dialog.body)
	a.Update(click(0, 0, tea.MouseButtonLeft))
	assert.Equal(t, modeCalendar, a.mode)
	assert.Equal(t, 1, s.Len())
}

func TestClickBlankCellDoesNothing(t *testing.T) {
	a, s := newTestApp(t)
	// March 2024 starts on a Friday; Monday of the first row is blank.
	x, y := cellOrigin(0, 0)
	a.Update(click(x, y, tea.MouseButtonLeft))
	assert.Equal(t, modeCalendar, a.mode)
	assert.Equal(t, 0, s.Len())
}

func TestNavigationButtons(t *testing.T) {
	a, _ := newTestApp(t)

	a.Update(click(marginX+1, navRow, tea.MouseButtonLeft))
	assert.Equal(t, model.DisplayState{Year: 2024, Month: time.February}, a.state)
	assert.Contains(t, a.View(), "February 2024")

	a.Update(click(marginX+gridWidth-2, navRow, tea.MouseButtonLeft))
	a.Update(click(marginX+gridWidth-2, navRow, tea.MouseButtonLeft))
	assert.Equal(t, model.DisplayState{Year: 2024, Month: time.April}, a.state)

	a.Update(key("t"))
	assert.Equal(t, model.DisplayState{Year: 2024, Month: time.March}, a.state)
}

func TestPreviewButton(t *testing.T) {
	a, s := newTestApp(t)
	require.NoError(t, s.Set("2024-3-5", "Call mom"))
	require.NoError(t, s.Set("2024-3-20", "Pay rent"))
	require.NoError(t, s.Set("2024-4-2", "Elsewhere"))

	a.Update(click(marginX+2, previewRow, tea.MouseButtonLeft))
	require.Equal(t, modeDialog, a.mode)
	assert.Equal(t, "5 March: Call mom\n20 March: Pay rent", a.dialog.body)
	assert.Contains(t, a.View(), "Preview Reminders")
}

func TestKeyboardCursorCrossesMonths(t *testing.T) {
	a, _ := newTestApp(t)
	a.cursor = 31
	a.Update(key("right"))
	assert.Equal(t, model.DisplayState{Year: 2024, Month: time.April}, a.state)
	assert.Equal(t, 1, a.cursor)

	a.Update(key("left"))
	assert.Equal(t, model.DisplayState{Year: 2024, Month: time.March}, a.state)
	assert.Equal(t, 31, a.cursor)
}

func TestKeyboardToggle(t *testing.T) {
	a, s := newTestApp(t)
	a.Update(key("enter"))
	require.Equal(t, modePrompt, a.mode)
	a.Update(key("Standup"))
	a.Update(key("enter"))
	assert.True(t, s.Has("2024-3-14"))

	a.Update(key("p"))
	assert.Equal(t, "14 March: Standup", a.dialog.body)
}

func TestViewLayoutMatchesHitTest(t *testing.T) {
	a, _ := newTestApp(t)
	lines := strings.Split(a.View(), "\n")
	require.Greater(t, len(lines), statusRow)
	assert.Contains(t, lines[navRow], "March 2024")
	assert.Contains(t, lines[previewRow], "Preview Reminders")
	assert.Contains(t, lines[headerRow], "Mon")
	// March 1st 2024 sits in the first week row.
	assert.Contains(t, lines[firstWeek], " 1")
}
