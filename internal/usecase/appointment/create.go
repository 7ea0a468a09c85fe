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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerID uuid.UUID
	BarberID   uuid.UUID

	StartTime   time.Time
	ServiceType string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.SlotCache
	clk   clock.Clock
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slots *cache.SlotCache,
	clk clock.Clock,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		slots: slots,
		clk:   clk,
	}
}

// Execute runs the booking pipeline. Checks run in a fixed order and
// stop at the first failure, so the caller always sees the most
// fundamental problem first.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// 1. Customer must exist.
	if _, err := uc.repo.GetCustomer(ctx, in.CustomerID); err != nil {
		return nil, httperr.ErrBusiness("customer_not_found")
	}

	// 2. Barber must exist and be active.
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if !barber.Active {
		return nil, httperr.ErrBusiness("barber_inactive")
	}

	// 3. Bookings only in the future.
	if !in.StartTime.After(uc.clk.Now()) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// 4. The barber works that day at all.
	window, open := domain.WorkingWindow(barber.WeeklySchedule, in.StartTime)
	if !open {
		return nil, httperr.ErrBusiness("outside_working_days")
	}

	// 5. The start falls inside the working window. Only the start is
	// constrained: a late booking may run past closing time.
	if !window.Contains(in.StartTime) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// 6. Duration is a fixed lookup by service category.
	duration := domain.ServiceDuration(in.ServiceType)

	ap := &models.Appointment{
		CustomerID:      in.CustomerID,
		BarberID:        in.BarberID,
		StartTime:       in.StartTime,
		DurationMinutes: int(duration.Minutes()),
		EndTime:         in.StartTime.Add(duration),
		ServiceType:     in.ServiceType,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	// 7. Conflict check + insert, atomically in the store.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.slots.Invalidate(ctx, in.BarberID, in.StartTime)

	created, err := uc.repo.GetAppointmentDetailed(ctx, ap.ID)
	if err != nil {
		// The row is committed; return it without the resolved refs.
		return ap, nil
	}
	return created, nil
}
