package calendar

import (
	"time"

	"remindcal/internal/grid"
	"remindcal/internal/model"
)

// Lookup is the read side of the reminder store used for drawing.
type Lookup interface {
	Has(key model.DateKey) bool
}

// Cell is one day slot on screen. Day is 0 for slots outside the month.
type Cell struct {
	Day    int
	Marked bool
	Today  bool
}

// View describes a complete calendar screen for one month.
type View struct {
	State   model.DisplayState
	Title   string
	Headers [7]string
	Weeks   [][7]Cell
}

// Render builds the full view for state. It is called after every
// navigation or reminder change; nothing is carried over from the previous
// view.
func Render(state model.DisplayState, reminders Lookup, weekStart time.Weekday, today time.Time) View {
	v := View{
		State:   state,
		Title:   state.Label(),
		Headers: grid.Headers(weekStart),
	}

	isCurrent := today.Year() == state.Year && today.Month() == state.Month
	for _, w := range grid.Month(state.Year, state.Month, weekStart) {
		var row [7]Cell
		for i, day := range w {
			if day == 0 {
				continue
			}
			row[i] = Cell{
				Day:    day,
				Marked: reminders.Has(state.Key(day)),
				Today:  isCurrent && today.Day() == day,
			}
		}
		v.Weeks = append(v.Weeks, row)
	}
	return v
}

// MarkedDays lists the marked days of the view in order.
func (v View) MarkedDays() []int {
	var out []int
	for _, w := range v.Weeks {
		for _, c := range w {
			if c.Marked {
				out = append(out, c.Day)
			}
		}
	}
	return out
}
