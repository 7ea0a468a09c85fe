package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"barbertime/internal/cache"
	domain "barbertime/internal/domain/appointment"
	"barbertime/internal/httperr"
)

// Slots are offered on a fixed half-hour grid regardless of service
// duration; the service picked at booking time decides how much of the
// grid the appointment actually consumes.
const SlotStep = 30 * time.Minute

type GetAvailableSlots struct {
	repo  domain.Repository
	slots *cache.SlotCache
}

func NewGetAvailableSlots(
	repo domain.Repository,
	slots *cache.SlotCache,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:  repo,
		slots: slots,
	}
}

// Execute enumerates bookable start times for one barber and date. A
// closed day yields an empty sequence. A slot is blocked only when an
// existing Booked appointment's span covers the slot start; this is
// looser than the create-time conflict rule and kept that way on
// purpose, since clients already rely on it.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	date time.Time,
) ([]time.Time, error) {

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	if cached, ok := uc.slots.Get(ctx, barberID, date); ok {
		return cached, nil
	}

	window, open := domain.WorkingWindow(barber.WeeklySchedule, date)
	if !open {
		return []time.Time{}, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	booked, err := uc.repo.ListBookedForDay(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := make([]time.Time, 0)
	for cur := window.Start; cur.Before(window.End); cur = cur.Add(SlotStep) {
		blocked := false
		for _, ap := range booked {
			if domain.CoversStart(ap, cur) {
				blocked = true
				break
			}
		}
		if !blocked {
			slots = append(slots, cur)
		}
	}

	uc.slots.Set(ctx, barberID, date, slots)

	return slots, nil
}
