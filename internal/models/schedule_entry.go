package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleEntry is one weekday of a barber's weekly schedule.
// Times are stored as "HH:MM" strings; when Working is false the
// time bounds are ignored.
type ScheduleEntry struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	BarberID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_barber_weekday" json:"barber_id"`

	Weekday int `gorm:"not null;uniqueIndex:idx_barber_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Working   bool   `json:"is_working"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *ScheduleEntry) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
