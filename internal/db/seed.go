package db

import (
	"time"

	"gorm.io/gorm"

	"barbertime/internal/models"
)

// Seed loads a small sample dataset on an empty database so the API is
// usable right after first boot. It is a no-op once any barber exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Barber{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		mike := models.Barber{
			Name:        "Mike Johnson",
			Email:       "mike@barbershop.com",
			Phone:       "555-0101",
			Specialties: "Haircuts, Fades, Styling",
			Active:      true,
		}
		sarah := models.Barber{
			Name:        "Sarah Smith",
			Email:       "sarah@barbershop.com",
			Phone:       "555-0102",
			Specialties: "Haircuts, Beards, Color",
			Active:      true,
		}

		if err := tx.Create(&mike).Error; err != nil {
			return err
		}
		if err := tx.Create(&sarah).Error; err != nil {
			return err
		}

		schedules := append(
			weekSchedule(mike, "09:00", "17:00", map[time.Weekday]dayOverride{
				time.Saturday: {start: "10:00", end: "15:00", working: true},
				time.Sunday:   {working: false},
			}),
			weekSchedule(sarah, "10:00", "18:00", map[time.Weekday]dayOverride{
				time.Monday:   {working: false},
				time.Saturday: {start: "09:00", end: "16:00", working: true},
				time.Sunday:   {working: false},
			})...,
		)

		if err := tx.Create(&schedules).Error; err != nil {
			return err
		}

		customers := []models.Customer{
			{Name: "John Doe", Email: "john@example.com", Phone: "555-1001"},
			{Name: "Jane Smith", Email: "jane@example.com", Phone: "555-1002"},
			{Name: "Bob Wilson", Email: "bob@example.com", Phone: "555-1003"},
		}

		return tx.Create(&customers).Error
	})
}

type dayOverride struct {
	start   string
	end     string
	working bool
}

func weekSchedule(
	barber models.Barber,
	start string,
	end string,
	overrides map[time.Weekday]dayOverride,
) []models.ScheduleEntry {

	entries := make([]models.ScheduleEntry, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		entry := models.ScheduleEntry{
			BarberID:  barber.ID,
			Weekday:   int(day),
			StartTime: start,
			EndTime:   end,
			Working:   true,
		}

		if ov, ok := overrides[day]; ok {
			entry.Working = ov.working
			if ov.start != "" {
				entry.StartTime = ov.start
				entry.EndTime = ov.end
			}
		}

		entries = append(entries, entry)
	}
	return entries
}
