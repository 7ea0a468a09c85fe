package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Barber struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Email       string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone       string `gorm:"size:20" json:"phone"`
	Specialties string `gorm:"size:500" json:"specialties"`

	Active bool `gorm:"default:true" json:"is_active"`

	WeeklySchedule []ScheduleEntry `gorm:"constraint:OnDelete:CASCADE;" json:"weekly_schedule,omitempty"`
	Appointments   []Appointment   `gorm:"constraint:OnDelete:RESTRICT;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
