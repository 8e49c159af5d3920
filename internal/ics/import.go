package ics

import (
	"errors"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	appLog "remindcal/internal/log"
	"remindcal/internal/model"
)

// Import reads the VEVENTs of an iCalendar stream as reminders keyed by
// their start date. Events without a summary or a usable DTSTART are
// skipped and logged. Times are not converted between zones; the calendar
// date written in DTSTART is used as-is.
func Import(r io.Reader) ([]model.ReminderEntry, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		appLog.Error("ics parse failed", err)
		return nil, err
	}

	out := make([]model.ReminderEntry, 0)
	for _, ve := range cal.Events() {
		entry, perr := entryFromEvent(ve)
		if perr != nil {
			// Log and skip this event, but keep parsing others.
			appLog.Warn("ics vevent skipped", "reason", perr.Error(), "uid", eventUID(ve))
			continue
		}
		out = append(out, entry)
	}

	appLog.Info("ics import parsed", "event_count", len(out))
	return out, nil
}

func entryFromEvent(ve *ical.VEvent) (model.ReminderEntry, error) {
	var out model.ReminderEntry

	p := ve.GetProperty(ical.ComponentPropertySummary)
	if p == nil || p.Value == "" {
		return out, errors.New("missing SUMMARY")
	}
	out.Text = p.Value

	dt := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dt == nil {
		return out, errors.New("missing DTSTART")
	}
	day, err := parseICSDate(dt.Value)
	if err != nil {
		return out, err
	}
	out.Key = model.NewDateKey(day.Year(), day.Month(), day.Day())
	return out, nil
}

func eventUID(ve *ical.VEvent) string {
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		return p.Value
	}
	return ""
}

// parseICSDate extracts the calendar date from a DATE (20240305) or
// DATE-TIME (20240305T090000, 20240305T090000Z) value.
func parseICSDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, errors.New("empty DTSTART value")
	}
	if i := strings.IndexByte(v, 'T'); i >= 0 {
		v = v[:i]
	}
	const layoutDate = "20060102"
	return time.Parse(layoutDate, v)
}
