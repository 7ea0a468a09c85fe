package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinDurationMinutes = 15
	MaxDurationMinutes = 300
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerID uuid.UUID `gorm:"type:uuid;not null;index:idx_customer_start" json:"customer_id"`
	Customer   Customer  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer,omitempty"`

	BarberID uuid.UUID `gorm:"type:uuid;not null;index:idx_barber_start" json:"barber_id"`
	Barber   Barber    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"barber,omitempty"`

	// Not unique per (barber, start): a Cancelled or NoShow row may
	// share its start with a later re-booking. Concurrent inserts are
	// serialized by the locked conflict check instead.
	StartTime       time.Time `gorm:"not null;index:idx_barber_start;index:idx_customer_start" json:"start_time"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	EndTime         time.Time `gorm:"not null" json:"end_time"`

	ServiceType string `gorm:"size:50;not null" json:"service_type"`

	Status string `gorm:"size:20;default:'Booked'" json:"status"`

	Notes string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
