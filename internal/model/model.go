package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateKey is returned when a string is not a "YYYY-M-D" key for
// a real calendar date.
var ErrInvalidDateKey = errors.New("invalid date key")

// DateKey identifies a single calendar day, e.g. "2024-3-5".
//
// Month and day are not zero-padded. Files written by earlier versions use
// this form, so it is kept even though keys do not sort lexically.
type DateKey string

// NewDateKey builds the key for the given day.
func NewDateKey(year int, month time.Month, day int) DateKey {
	return DateKey(fmt.Sprintf("%d-%d-%d", year, int(month), day))
}

// ParseDateKey splits a key into its components. Zero-padded input such as
// "2024-03-05" is accepted; impossible dates (2023-2-29) are rejected.
func ParseDateKey(s string) (int, time.Month, int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDateKey, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDateKey, s)
		}
		nums[i] = n
	}
	year, month, day := nums[0], time.Month(nums[1]), nums[2]
	if month < time.January || month > time.December || day < 1 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDateKey, s)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Month() != month || t.Day() != day {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDateKey, s)
	}
	return year, month, day, nil
}

// Date returns the key as midnight UTC of its day.
func (k DateKey) Date() (time.Time, error) {
	y, m, d, err := ParseDateKey(string(k))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func (k DateKey) String() string { return string(k) }

// ReminderEntry is a single marked date and its reminder text.
type ReminderEntry struct {
	Key  DateKey
	Text string
}

// DisplayState is the month currently shown. Month is always in
// [January, December]; only the navigation functions change it.
type DisplayState struct {
	Year  int
	Month time.Month
}

// CurrentDisplayState returns the month containing now.
func CurrentDisplayState(now time.Time) DisplayState {
	return DisplayState{Year: now.Year(), Month: now.Month()}
}

// Key returns the date key for a day of the displayed month.
func (s DisplayState) Key(day int) DateKey {
	return NewDateKey(s.Year, s.Month, day)
}

// Label is the header text, e.g. "March 2024".
func (s DisplayState) Label() string {
	return fmt.Sprintf("%s %d", s.Month, s.Year)
}

// Contains reports whether key falls inside the displayed year and month.
func (s DisplayState) Contains(key DateKey) bool {
	y, m, _, err := ParseDateKey(string(key))
	if err != nil {
		return false
	}
	return y == s.Year && m == s.Month
}
