package appointment

import (
	"context"

	"github.com/google/uuid"

	"barbertime/internal/audit"
	"barbertime/internal/cache"
	domain "barbertime/internal/domain/appointment"
	"barbertime/internal/httperr"
	"barbertime/internal/models"
)

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.SlotCache
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slots *cache.SlotCache,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
		slots: slots,
	}
}

// Execute overwrites the status field. There is no transition graph:
// setting the same status twice is a harmless no-op, and any valid
// status may follow any other.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	id uuid.UUID,
	status string,
) (*models.Appointment, error) {

	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	ap.Status = string(parsed)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": parsed},
	})

	// A cancellation or no-show frees the slot; a re-book takes it.
	uc.slots.Invalidate(ctx, ap.BarberID, ap.StartTime)

	return ap, nil
}
