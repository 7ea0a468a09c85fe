package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "barbertime/internal/domain/appointment"
	"barbertime/internal/httperr"
	"barbertime/internal/models"
)

func TestGetAvailableSlots(t *testing.T) {
	monday := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	setup := func() (*fakeRepo, *GetAvailableSlots, *models.Barber) {
		repo := newFakeRepo()
		barber := repo.addBarber(models.Barber{
			Name:           "Mike Johnson",
			Active:         true,
			WeeklySchedule: mikeSchedule(),
		})
		return repo, NewGetAvailableSlots(repo, nil), barber
	}

	t.Run("unknown barber", func(t *testing.T) {
		_, uc, _ := setup()

		_, err := uc.Execute(context.Background(), uuid.New(), monday)
		assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
	})

	t.Run("closed day returns an empty sequence", func(t *testing.T) {
		_, uc, barber := setup()

		slots, err := uc.Execute(context.Background(), barber.ID, monday.AddDate(0, 0, 6)) // Sunday
		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("open day covers the window on a 30-minute grid", func(t *testing.T) {
		_, uc, barber := setup()

		slots, err := uc.Execute(context.Background(), barber.ID, monday)
		require.NoError(t, err)

		// 09:00 .. 16:30, 16 slots; 17:00 itself is excluded.
		require.Len(t, slots, 16)
		assert.Equal(t, mondayAt(9, 0), slots[0])
		assert.Equal(t, mondayAt(16, 30), slots[15])
		for i := 1; i < len(slots); i++ {
			assert.Equal(t, 30*time.Minute, slots[i].Sub(slots[i-1]))
		}
	})

	t.Run("booked span blocks the slots starting inside it", func(t *testing.T) {
		repo, uc, barber := setup()

		repo.addAppointment(models.Appointment{
			BarberID:        barber.ID,
			StartTime:       mondayAt(10, 0),
			DurationMinutes: 60,
			EndTime:         mondayAt(11, 0),
			Status:          string(domain.StatusBooked),
		})

		slots, err := uc.Execute(context.Background(), barber.ID, monday)
		require.NoError(t, err)

		assert.Len(t, slots, 14)
		assert.NotContains(t, slots, mondayAt(10, 0))
		assert.NotContains(t, slots, mondayAt(10, 30))
		assert.Contains(t, slots, mondayAt(11, 0), "a booking ending at 11:00 frees the 11:00 slot")
	})

	// Slot blocking looks only at the slot start, not at the full slot
	// interval. An off-grid booking from 10:15 hides 10:30 but leaves
	// 10:00 visible even though the two overlap.
	t.Run("start-containment rule, not full overlap", func(t *testing.T) {
		repo, uc, barber := setup()

		repo.addAppointment(models.Appointment{
			BarberID:        barber.ID,
			StartTime:       mondayAt(10, 15),
			DurationMinutes: 30,
			EndTime:         mondayAt(10, 45),
			Status:          string(domain.StatusBooked),
		})

		slots, err := uc.Execute(context.Background(), barber.ID, monday)
		require.NoError(t, err)

		assert.Contains(t, slots, mondayAt(10, 0))
		assert.NotContains(t, slots, mondayAt(10, 30))
	})

	t.Run("cancelled bookings never hide slots", func(t *testing.T) {
		repo, uc, barber := setup()

		repo.addAppointment(models.Appointment{
			BarberID:        barber.ID,
			StartTime:       mondayAt(10, 0),
			DurationMinutes: 30,
			EndTime:         mondayAt(10, 30),
			Status:          string(domain.StatusCancelled),
		})

		slots, err := uc.Execute(context.Background(), barber.ID, monday)
		require.NoError(t, err)
		assert.Contains(t, slots, mondayAt(10, 0))
	})
}

func TestListAvailableBarbers(t *testing.T) {
	monday := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	repo := newFakeRepo()
	mike := repo.addBarber(models.Barber{
		Name:           "Mike Johnson",
		Active:         true,
		WeeklySchedule: mikeSchedule(),
	})
	repo.addBarber(models.Barber{
		Name:   "Sarah Smith",
		Active: true,
		WeeklySchedule: []models.ScheduleEntry{
			{Weekday: int(time.Monday), StartTime: "10:00", EndTime: "18:00", Working: false},
			{Weekday: int(time.Tuesday), StartTime: "10:00", EndTime: "18:00", Working: true},
		},
	})
	repo.addBarber(models.Barber{
		Name:           "Inactive Joe",
		Active:         false,
		WeeklySchedule: mikeSchedule(),
	})

	uc := NewListAvailableBarbers(repo)

	t.Run("only active barbers working that weekday", func(t *testing.T) {
		barbers, err := uc.Execute(context.Background(), monday)
		require.NoError(t, err)

		require.Len(t, barbers, 1)
		assert.Equal(t, mike.ID, barbers[0].ID)
	})

	t.Run("both on tuesday", func(t *testing.T) {
		barbers, err := uc.Execute(context.Background(), monday.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Len(t, barbers, 2)
	})
}
