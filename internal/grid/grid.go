// Package grid lays out the days of a month as calendar weeks.
package grid

import "time"

// Week is one row of the calendar. A zero cell is a day outside the month.
type Week [7]int

var weekdayAbbrev = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingOffset is the number of blank cells before day 1 when weeks start
// on weekStart.
func LeadingOffset(year int, month time.Month, weekStart time.Weekday) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(first) - int(weekStart) + 7) % 7
}

// Headers returns the weekday column titles starting at weekStart.
func Headers(weekStart time.Weekday) [7]string {
	var out [7]string
	for i := range out {
		out[i] = weekdayAbbrev[(int(weekStart)+i)%7]
	}
	return out
}

// Month builds the weeks of the given month. The caller guarantees month is
// in range; the result always has 4 to 6 weeks of 7 cells.
func Month(year int, month time.Month, weekStart time.Weekday) []Week {
	days := DaysIn(year, month)
	offset := LeadingOffset(year, month, weekStart)

	weeks := make([]Week, 0, 6)
	var w Week
	col := offset
	for day := 1; day <= days; day++ {
		w[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, w)
			w = Week{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, w)
	}
	return weeks
}
