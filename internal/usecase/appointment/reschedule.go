package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"barbertime/internal/audit"
	"barbertime/internal/cache"
	"barbertime/internal/clock"
	domain "barbertime/internal/domain/appointment"
	"barbertime/internal/httperr"
	"barbertime/internal/models"
)

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.SlotCache
	clk   clock.Clock
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slots *cache.SlotCache,
	clk clock.Clock,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
		slots: slots,
		clk:   clk,
	}
}

// Execute moves an appointment to a new start. The only guard is that
// the appointment has not already started; working hours and conflicts
// are deliberately not re-checked here — changing that is a product
// decision, not a bug fix.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	id uuid.UUID,
	newStart time.Time,
	notes *string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !ap.StartTime.After(uc.clk.Now()) {
		return nil, httperr.ErrBusiness("cannot_modify_past")
	}

	oldStart := ap.StartTime

	ap.StartTime = newStart
	ap.EndTime = newStart.Add(time.Duration(ap.DurationMinutes) * time.Minute)
	if notes != nil {
		ap.Notes = *notes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"from": oldStart, "to": newStart},
	})

	uc.slots.Invalidate(ctx, ap.BarberID, oldStart)
	uc.slots.Invalidate(ctx, ap.BarberID, newStart)

	return ap, nil
}
