package appointment

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	domain "barbertime/internal/domain/appointment"
	"barbertime/internal/httperr"
	"barbertime/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory stand-in for the GORM repository. Its
// CreateAppointment mirrors the real conflict-checked insert.
type fakeRepo struct {
	customers    map[uuid.UUID]*models.Customer
	barbers      map[uuid.UUID]*models.Barber
	appointments map[uuid.UUID]*models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		customers:    map[uuid.UUID]*models.Customer{},
		barbers:      map[uuid.UUID]*models.Barber{},
		appointments: map[uuid.UUID]*models.Appointment{},
	}
}

func (r *fakeRepo) addCustomer(c models.Customer) *models.Customer {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = &c
	return &c
}

func (r *fakeRepo) addBarber(b models.Barber) *models.Barber {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.barbers[b.ID] = &b
	return &b
}

func (r *fakeRepo) addAppointment(ap models.Appointment) *models.Appointment {
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	r.appointments[ap.ID] = &ap
	return &ap
}

func (r *fakeRepo) GetCustomer(_ context.Context, id uuid.UUID) (*models.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, errNotFound
	}
	out := *c
	return &out, nil
}

func (r *fakeRepo) GetBarber(_ context.Context, id uuid.UUID) (*models.Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, errNotFound
	}
	out := *b
	return &out, nil
}

func (r *fakeRepo) ListBarbersWorkingOn(_ context.Context, weekday int) ([]models.Barber, error) {
	var out []models.Barber
	for _, b := range r.barbers {
		if !b.Active {
			continue
		}
		for _, e := range b.WeeklySchedule {
			if e.Weekday == weekday && e.Working {
				out = append(out, *b)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	var existing []models.Appointment
	for _, other := range r.appointments {
		if other.BarberID == ap.BarberID {
			existing = append(existing, *other)
		}
	}

	if domain.HasConflict(existing, ap.StartTime, ap.EndTime) {
		return httperr.ErrBusiness("slot_unavailable")
	}

	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errNotFound
	}
	out := *ap
	return &out, nil
}

func (r *fakeRepo) GetAppointmentDetailed(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	ap, err := r.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if c, ok := r.customers[ap.CustomerID]; ok {
		ap.Customer = *c
	}
	if b, ok := r.barbers[ap.BarberID]; ok {
		ap.Barber = *b
	}
	return ap, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return errNotFound
	}
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) ListBookedForDay(
	_ context.Context,
	barberID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID || ap.Status != string(domain.StatusBooked) {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		out = append(out, *ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(
	_ context.Context,
	barberID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		withRefs := *ap
		if c, ok := r.customers[ap.CustomerID]; ok {
			withRefs.Customer = *c
		}
		out = append(out, withRefs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
