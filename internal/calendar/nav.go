package calendar

import (
	"time"

	"remindcal/internal/model"
)

// PreviousMonth steps back one month, wrapping January into December of
// the previous year.
func PreviousMonth(s model.DisplayState) model.DisplayState {
	if s.Month == time.January {
		return model.DisplayState{Year: s.Year - 1, Month: time.December}
	}
	return model.DisplayState{Year: s.Year, Month: s.Month - 1}
}

// NextMonth steps forward one month, wrapping December into January of the
// next year.
func NextMonth(s model.DisplayState) model.DisplayState {
	if s.Month == time.December {
		return model.DisplayState{Year: s.Year + 1, Month: time.January}
	}
	return model.DisplayState{Year: s.Year, Month: s.Month + 1}
}

// Today returns the month containing now.
func Today(now time.Time) model.DisplayState {
	return model.CurrentDisplayState(now)
}
