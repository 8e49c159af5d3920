// Package ics converts reminders to and from iCalendar files so they can be
// shared with other calendar applications.
package ics

import (
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	appLog "remindcal/internal/log"
	"remindcal/internal/model"
)

// uidNamespace seeds the per-reminder UIDs. Exporting the same date twice
// yields the same UID, so re-imports into other calendars update in place.
var uidNamespace = uuid.MustParse("6f1c2f1e-3b0a-4d8e-9a57-0c2d4b7f9e31")

// EventUID returns the stable VEVENT UID for a date key.
func EventUID(key model.DateKey) string {
	return uuid.NewSHA1(uidNamespace, []byte(key)).String() + "@remindcal"
}

// Export writes entries as a VCALENDAR with one all-day VEVENT per
// reminder. Entries with unparseable keys are skipped and logged.
func Export(w io.Writer, entries []model.ReminderEntry, productID string) error {
	return exportAt(w, entries, productID, time.Now().UTC())
}

func exportAt(w io.Writer, entries []model.ReminderEntry, productID string, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	written := 0
	for _, e := range entries {
		day, err := e.Key.Date()
		if err != nil {
			appLog.Warn("ics export: skipping malformed key", "key", e.Key)
			continue
		}
		ev := cal.AddEvent(EventUID(e.Key))
		ev.SetDtStampTime(stamp)
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		ev.SetSummary(e.Text)
		written++
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return err
	}
	appLog.Info("ics export completed", "event_count", written)
	return nil
}
