package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"barbertime/internal/models"
)

type Repository interface {
	// -------- Customer --------
	GetCustomer(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Customer, error)

	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Barber, error)

	ListBarbersWorkingOn(
		ctx context.Context,
		weekday int,
	) ([]models.Barber, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read / state change) --------
	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	GetAppointmentDetailed(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability --------
	ListBookedForDay(
		ctx context.Context,
		barberID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
