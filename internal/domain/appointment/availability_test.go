package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbertime/internal/models"
)

func entry(weekday int, start, end string, working bool) models.ScheduleEntry {
	return models.ScheduleEntry{
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		Working:   working,
	}
}

func TestWorkingWindow(t *testing.T) {
	// 2025-06-02 is a Monday.
	monday := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	sunday := monday.AddDate(0, 0, -1)
	saturday := monday.AddDate(0, 0, 5)

	schedule := []models.ScheduleEntry{
		entry(int(time.Monday), "09:00", "17:00", true),
		entry(int(time.Sunday), "09:00", "17:00", false),
		// No Saturday entry at all.
	}

	t.Run("working day yields the window", func(t *testing.T) {
		w, open := WorkingWindow(schedule, monday)
		require.True(t, open)
		assert.Equal(t, time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC), w.Start)
		assert.Equal(t, time.Date(2025, time.June, 2, 17, 0, 0, 0, time.UTC), w.End)
	})

	t.Run("non-working entry means closed", func(t *testing.T) {
		_, open := WorkingWindow(schedule, sunday)
		assert.False(t, open)
	})

	t.Run("missing entry means closed", func(t *testing.T) {
		_, open := WorkingWindow(schedule, saturday)
		assert.False(t, open)
	})

	t.Run("blank bounds mean closed even when working", func(t *testing.T) {
		_, open := WorkingWindow([]models.ScheduleEntry{
			entry(int(time.Monday), "", "", true),
		}, monday)
		assert.False(t, open)
	})

	t.Run("window is anchored to the query date", func(t *testing.T) {
		nextMonday := monday.AddDate(0, 0, 7)
		w, open := WorkingWindow(schedule, nextMonday.Add(15*time.Hour))
		require.True(t, open)
		assert.Equal(t, nextMonday.Add(9*time.Hour), w.Start)
	})
}

func TestWindowContains(t *testing.T) {
	w := Window{
		Start: time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.June, 2, 17, 0, 0, 0, time.UTC),
	}

	assert.True(t, w.Contains(w.Start), "start is inclusive")
	assert.True(t, w.Contains(w.End.Add(-15*time.Minute)))
	assert.False(t, w.Contains(w.End), "end is exclusive")
	assert.False(t, w.Contains(w.Start.Add(-time.Minute)))
}
