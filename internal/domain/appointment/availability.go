package appointment

import (
	"time"

	"barbertime/internal/models"
)

// ===============================
// Availability calculator
// ===============================

// Window is a barber's working interval [Start, End) on one concrete date.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// WorkingWindow resolves a barber's weekly schedule against a calendar
// date. The store guarantees at most one entry per weekday; a missing
// entry, a non-working entry, or unset time bounds all mean the barber
// is closed that day. Closed is a normal outcome, not an error.
func WorkingWindow(entries []models.ScheduleEntry, date time.Time) (Window, bool) {
	weekday := int(date.Weekday())

	for _, e := range entries {
		if e.Weekday != weekday {
			continue
		}
		if !e.Working || e.StartTime == "" || e.EndTime == "" {
			return Window{}, false
		}
		return Window{
			Start: atTimeOfDay(date, e.StartTime),
			End:   atTimeOfDay(date, e.EndTime),
		}, true
	}

	return Window{}, false
}

func atTimeOfDay(date time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}
