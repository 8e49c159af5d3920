package calendar

import (
	"fmt"
	"sort"
	"strings"

	appLog "remindcal/internal/log"
	"remindcal/internal/model"
	"remindcal/internal/store"
)

const (
	promptTitle = "Add Reminder"
	promptLabel = "Enter a reminder for this date:"

	noRemindersThisMonth = "No reminders set for this month."
)

// TextInput asks the user for a line of text. done is called exactly once,
// with ok false when the user cancelled. Implementations may call done
// before RequestText returns.
type TextInput interface {
	RequestText(title, prompt string, done func(text string, ok bool))
}

// Handler routes day-cell gestures to the reminder store.
type Handler struct {
	store *store.Store
	input TextInput

	// Changed is called after every toggle completes, with the persist
	// error if any. The UI redraws from here.
	Changed func(err error)
}

func NewHandler(s *store.Store, input TextInput) *Handler {
	return &Handler{store: s, input: input}
}

// Toggle is the primary-click action. A marked day loses its reminder; an
// unmarked day prompts for text and is marked if the text is not empty.
// Either way the store is persisted.
func (h *Handler) Toggle(state model.DisplayState, day int) {
	if day <= 0 {
		return
	}
	key := state.Key(day)

	if h.store.Has(key) {
		err := h.store.Remove(key)
		if err != nil {
			appLog.Error("remove reminder failed", err, "key", key)
		} else {
			appLog.Info("reminder removed", "key", key)
		}
		h.changed(err)
		return
	}

	h.input.RequestText(promptTitle, promptLabel, func(text string, ok bool) {
		var err error
		if ok && text != "" {
			err = h.store.Set(key, text)
			if err == nil {
				appLog.Info("reminder added", "key", key)
			}
		} else {
			err = h.store.SaveAll()
		}
		if err != nil {
			appLog.Error("save reminder failed", err, "key", key)
		}
		h.changed(err)
	})
}

func (h *Handler) changed(err error) {
	if h.Changed != nil {
		h.Changed(err)
	}
}

// Show is the secondary-click action. It never mutates the store.
func (h *Handler) Show(state model.DisplayState, day int) string {
	key := state.Key(day)
	if text, ok := h.store.Get(key); ok {
		return fmt.Sprintf("Reminder for %s:\n%s", key, text)
	}
	return fmt.Sprintf("No reminder set for %s.", key)
}

// Preview lists every reminder in the displayed month, one line per day.
func (h *Handler) Preview(state model.DisplayState) string {
	return Preview(state, h.store.Entries())
}

// Preview formats the reminders of entries that fall in state's month,
// ordered by day.
func Preview(state model.DisplayState, entries []model.ReminderEntry) string {
	type line struct {
		day  int
		text string
	}
	var lines []line
	for _, e := range entries {
		_, _, d, err := model.ParseDateKey(string(e.Key))
		if err != nil {
			appLog.Warn("skipping malformed date key", "key", e.Key)
			continue
		}
		if !state.Contains(e.Key) {
			continue
		}
		lines = append(lines, line{day: d, text: e.Text})
	}
	if len(lines) == 0 {
		return noRemindersThisMonth
	}

	sort.SliceStable(lines, func(i, j int) bool { return lines[i].day < lines[j].day })

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d %s: %s", l.day, state.Month, l.text)
	}
	return b.String()
}
