package appointment

import (
	"time"

	"barbertime/internal/models"
)

// ===============================
// Conflict detection
// ===============================

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints are not an overlap, so
// back-to-back bookings are always allowed.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// HasConflict scans existing appointments for one that blocks the
// candidate interval [start, end). Anything not in Booked status never
// blocks. The scan is linear; a single shop's daily book is small.
func HasConflict(existing []models.Appointment, start, end time.Time) bool {
	for _, ap := range existing {
		if !Status(ap.Status).Blocks() {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true
		}
	}
	return false
}

// CoversStart reports whether the appointment's span contains t.
// Slot enumeration blocks a slot only when an existing booking covers
// the slot's start, which is intentionally looser than Overlaps: a
// long slot poking into a later booking still shows as free. That is
// the behavior clients already depend on.
func CoversStart(ap models.Appointment, t time.Time) bool {
	return !t.Before(ap.StartTime) && t.Before(ap.EndTime)
}
