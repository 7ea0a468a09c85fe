package appointment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "barbertime/internal/domain/appointment"
	"barbertime/internal/httperr"
	"barbertime/internal/models"
)

func TestUpdateAppointmentStatus(t *testing.T) {
	setup := func() (*fakeRepo, *UpdateAppointmentStatus, *models.Appointment) {
		repo := newFakeRepo()
		ap := repo.addAppointment(models.Appointment{
			BarberID:        uuid.New(),
			CustomerID:      uuid.New(),
			StartTime:       mondayAt(10, 0),
			DurationMinutes: 30,
			EndTime:         mondayAt(10, 30),
			Status:          string(domain.StatusBooked),
		})
		return repo, NewUpdateAppointmentStatus(repo, nil, nil), ap
	}

	t.Run("overwrites the status", func(t *testing.T) {
		_, uc, ap := setup()

		updated, err := uc.Execute(context.Background(), ap.ID, "Completed")
		require.NoError(t, err)
		assert.Equal(t, "Completed", updated.Status)
	})

	t.Run("repeating a status is a no-op, not an error", func(t *testing.T) {
		_, uc, ap := setup()

		for i := 0; i < 2; i++ {
			updated, err := uc.Execute(context.Background(), ap.ID, "Cancelled")
			require.NoError(t, err)
			assert.Equal(t, "Cancelled", updated.Status)
		}
	})

	t.Run("terminal states may be overwritten", func(t *testing.T) {
		// No transition graph is enforced; Cancelled back to Booked is allowed.
		_, uc, ap := setup()

		_, err := uc.Execute(context.Background(), ap.ID, "Cancelled")
		require.NoError(t, err)

		updated, err := uc.Execute(context.Background(), ap.ID, "Booked")
		require.NoError(t, err)
		assert.Equal(t, "Booked", updated.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, uc, ap := setup()

		_, err := uc.Execute(context.Background(), ap.ID, "Done")
		assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, uc, _ := setup()

		_, err := uc.Execute(context.Background(), uuid.New(), "Cancelled")
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})
}
