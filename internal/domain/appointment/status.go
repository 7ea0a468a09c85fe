package appointment

import "barbertime/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked    Status = "Booked"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
	StatusNoShow    Status = "NoShow"
)

// ParseStatus validates the literal serialized form. Any transition
// between valid statuses is allowed; the status field is a plain
// overwrite, not a guarded state machine.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusBooked, StatusCompleted, StatusCancelled, StatusNoShow:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// InitialStatus is the status every new appointment is created in.
func InitialStatus() Status {
	return StatusBooked
}

// Blocks reports whether an appointment in this status occupies its
// time slot. Only Booked appointments participate in conflict and
// availability checks.
func (s Status) Blocks() bool {
	return s == StatusBooked
}
