package appointment

import (
	"context"
	"time"

	domain "barbertime/internal/domain/appointment"
	"barbertime/internal/models"
)

type ListAvailableBarbers struct {
	repo domain.Repository
}

func NewListAvailableBarbers(repo domain.Repository) *ListAvailableBarbers {
	return &ListAvailableBarbers{repo: repo}
}

// Execute returns the active barbers with a working schedule entry on
// the date's weekday. It says nothing about free slots; pair it with
// GetAvailableSlots for that.
func (uc *ListAvailableBarbers) Execute(
	ctx context.Context,
	date time.Time,
) ([]models.Barber, error) {
	return uc.repo.ListBarbersWorkingOn(ctx, int(date.Weekday()))
}
