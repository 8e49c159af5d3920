// Package tui is the terminal front end: a month grid that reacts to mouse
// clicks and key presses.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"remindcal/internal/calendar"
	"remindcal/internal/grid"
	appLog "remindcal/internal/log"
	"remindcal/internal/model"
	"remindcal/internal/store"
)

const windowTitle = "Calendar"

type mode int

const (
	modeCalendar mode = iota
	modePrompt
	modeDialog
)

// Options configures the UI.
type Options struct {
	WeekStart time.Weekday
	Mouse     bool
	AltScreen bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// App is the bubbletea model. All state lives here and is only touched from
// Update, so the store needs no locking.
type App struct {
	opts    Options
	store   *store.Store
	handler *calendar.Handler

	state  model.DisplayState
	view   calendar.View
	cursor int

	mode   mode
	prompt promptState
	dialog dialogState

	status string
	err    error
}

type promptState struct {
	title string
	label string
	input textinput.Model
	done  func(text string, ok bool)
}

type dialogState struct {
	title string
	body  string
}

// New builds the UI over a loaded store, showing the current month.
func New(s *store.Store, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	now := opts.Now()

	a := &App{
		opts:   opts,
		store:  s,
		state:  calendar.Today(now),
		cursor: now.Day(),
	}
	a.handler = calendar.NewHandler(s, a)
	a.handler.Changed = a.onChanged
	a.redraw()
	return a
}

// Run starts the program and blocks until the user quits.
func Run(s *store.Store, opts Options) error {
	var progOpts []tea.ProgramOption
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	final, err := tea.NewProgram(New(s, opts), progOpts...).Run()
	if a, ok := final.(*App); ok {
		appLog.Info("ui closed", "month", a.state.Label(), "reminders", a.store.Len())
	}
	return err
}

func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle)
}

// RequestText opens the reminder prompt. done runs when the user confirms
// or cancels.
func (a *App) RequestText(title, label string, done func(text string, ok bool)) {
	in := textinput.New()
	in.Placeholder = "e.g. Dentist at 10"
	in.CharLimit = 256
	in.Width = gridWidth - 8
	in.Focus()

	a.prompt = promptState{title: title, label: label, input: in, done: done}
	a.mode = modePrompt
}

func (a *App) onChanged(err error) {
	a.err = err
	if err == nil {
		a.status = fmt.Sprintf("Saved %d reminder(s) to %s", a.store.Len(), a.store.Path())
	}
	a.redraw()
}

func (a *App) redraw() {
	a.view = calendar.Render(a.state, a.store, a.opts.WeekStart, a.opts.Now())
}

func (a *App) setState(s model.DisplayState) {
	a.state = s
	if n := grid.DaysIn(s.Year, s.Month); a.cursor > n {
		a.cursor = n
	}
	if a.cursor < 1 {
		a.cursor = 1
	}
	a.redraw()
}

func (a *App) showDialog(title, body string) {
	a.dialog = dialogState{title: title, body: body}
	a.mode = modeDialog
}

func (a *App) toggle(day int) tea.Cmd {
	if day <= 0 {
		return nil
	}
	a.cursor = day
	a.handler.Toggle(a.state, day)
	if a.mode == modePrompt {
		return textinput.Blink
	}
	return nil
}

func (a *App) show(day int) {
	if day <= 0 {
		return
	}
	a.cursor = day
	a.showDialog("Reminder", a.handler.Show(a.state, day))
}

func (a *App) preview() {
	a.showDialog("Preview Reminders", a.handler.Preview(a.state))
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch a.mode {
		case modePrompt:
			return a.updatePrompt(msg)
		case modeDialog:
			return a.updateDialog(msg)
		default:
			return a.updateCalendar(msg)
		}
	case tea.MouseMsg:
		return a.handleMouse(msg)
	}

	if a.mode == modePrompt {
		var cmd tea.Cmd
		a.prompt.input, cmd = a.prompt.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "left", "h":
		a.moveCursor(-1)
	case "right", "l":
		a.moveCursor(1)
	case "up", "k":
		a.moveCursor(-7)
	case "down", "j":
		a.moveCursor(7)
	case "[", ",", "pgup":
		a.setState(calendar.PreviousMonth(a.state))
	case "]", ".", "pgdown":
		a.setState(calendar.NextMonth(a.state))
	case "t":
		now := a.opts.Now()
		a.cursor = now.Day()
		a.setState(calendar.Today(now))
	case "enter", " ":
		return a, a.toggle(a.cursor)
	case "s":
		a.show(a.cursor)
	case "p":
		a.preview()
	}
	return a, nil
}

// moveCursor shifts the selected day, crossing into adjacent months.
func (a *App) moveCursor(days int) {
	d := time.Date(a.state.Year, a.state.Month, a.cursor+days, 0, 0, 0, 0, time.UTC)
	a.cursor = d.Day()
	if d.Year() != a.state.Year || d.Month() != a.state.Month {
		a.setState(model.CurrentDisplayState(d))
	}
}

func (a *App) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "enter":
		a.finishPrompt(a.prompt.input.Value(), true)
		return a, nil
	case "esc":
		a.finishPrompt("", false)
		return a, nil
	}
	var cmd tea.Cmd
	a.prompt.input, cmd = a.prompt.input.Update(msg)
	return a, cmd
}

func (a *App) finishPrompt(text string, ok bool) {
	done := a.prompt.done
	a.prompt = promptState{}
	a.mode = modeCalendar
	if done != nil {
		done(text, ok)
	}
}

func (a *App) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "enter", "esc", "q", " ":
		a.mode = modeCalendar
	}
	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return a, nil
	}
	switch a.mode {
	case modePrompt:
		return a, nil
	case modeDialog:
		if msg.Button == tea.MouseButtonLeft {
			a.mode = modeCalendar
		}
		return a, nil
	}

	hit := hitTest(msg.X, msg.Y)
	switch msg.Button {
	case tea.MouseButtonLeft:
		switch hit.kind {
		case targetPrev:
			a.setState(calendar.PreviousMonth(a.state))
		case targetNext:
			a.setState(calendar.NextMonth(a.state))
		case targetPreview:
			a.preview()
		case targetCell:
			return a, a.toggle(a.dayAt(hit))
		}
	case tea.MouseButtonRight:
		if hit.kind == targetCell {
			a.show(a.dayAt(hit))
		}
	}
	return a, nil
}

// dayAt returns the day drawn in a grid cell, or 0 for blank cells.
func (a *App) dayAt(t target) int {
	if t.row < 0 || t.row >= len(a.view.Weeks) || t.col < 0 || t.col > 6 {
		return 0
	}
	return a.view.Weeks[t.row][t.col].Day
}

func (a *App) View() string {
	switch a.mode {
	case modePrompt:
		return a.renderPrompt()
	case modeDialog:
		return a.renderDialog()
	default:
		return a.renderCalendar()
	}
}

func (a *App) renderCalendar() string {
	lines := make([]string, 0, statusRow+2)
	for i := 0; i < marginY; i++ {
		lines = append(lines, "")
	}

	lines = append(lines,
		navButtonStyle.Render("<")+titleStyle.Render(a.view.Title)+navButtonStyle.Render(">"),
		"",
		previewButtonStyle.Render(previewLabel),
		"",
	)

	var header strings.Builder
	for _, h := range a.view.Headers {
		header.WriteString(headerStyle.Render(h))
	}
	lines = append(lines, header.String())

	for row := 0; row < gridRows; row++ {
		if row >= len(a.view.Weeks) {
			lines = append(lines, "")
			continue
		}
		var b strings.Builder
		for _, c := range a.view.Weeks[row] {
			b.WriteString(a.renderCell(c))
		}
		lines = append(lines, b.String())
	}

	lines = append(lines, "", a.renderStatus(), a.renderHelp())

	pad := strings.Repeat(" ", marginX)
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderCell(c calendar.Cell) string {
	if c.Day == 0 {
		return dayStyle.Render("")
	}
	mark := " "
	if c.Marked {
		mark = markerStyle.Render("•")
	}
	content := fmt.Sprintf("%2d", c.Day) + mark

	switch {
	case c.Day == a.cursor:
		return cursorStyle.Render(content)
	case c.Today:
		return todayStyle.Render(content)
	default:
		return dayStyle.Render(content)
	}
}

func (a *App) renderStatus() string {
	if a.err != nil {
		return errorStyle.Render("Error: " + a.err.Error())
	}
	return statusStyle.Render(a.status)
}

func (a *App) renderHelp() string {
	pairs := [][2]string{
		{"click/enter", "toggle"},
		{"right-click/s", "show"},
		{"p", "preview"},
		{"[ ]", "month"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, helpKeyStyle.Render(p[0])+" "+helpTextStyle.Render(p[1]))
	}
	return strings.Join(parts, helpTextStyle.Render(" · "))
}

func (a *App) renderPrompt() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		modalTitleStyle.Render(a.prompt.title),
		"",
		a.prompt.label,
		"",
		a.prompt.input.View(),
		"",
		helpTextStyle.Render("enter save · esc cancel"),
	)
	return a.modal(body)
}

func (a *App) renderDialog() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		modalTitleStyle.Render(a.dialog.title),
		"",
		a.dialog.body,
		"",
		helpTextStyle.Render("enter or click to close"),
	)
	return a.modal(body)
}

func (a *App) modal(body string) string {
	box := modalStyle.Render(body)
	return lipgloss.NewStyle().Margin(marginY, marginX).Render(box)
}
