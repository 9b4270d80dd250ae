package models

import (
	"time"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/bookings"
)

// BookingModel is the GORM database model for consultation bookings
type BookingModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	ProfileID       string    `gorm:"not null;index;type:varchar(255)"`
	StartTime       time.Time `gorm:"not null;index"`
	EndTime         time.Time `gorm:"not null;index"`
	Status          string    `gorm:"not null;index;type:varchar(16)"`
	CalendarEventID string    `gorm:"type:varchar(1024)"`
	Notes           string    `gorm:"type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (BookingModel) TableName() string {
	return "bookings"
}

// ToDomain converts GORM model to domain entity
func (m *BookingModel) ToDomain() *bookings.Booking {
	return &bookings.Booking{
		ID:              m.ID,
		ProfileID:       m.ProfileID,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		Status:          bookings.Status(m.Status),
		CalendarEventID: m.CalendarEventID,
		Notes:           m.Notes,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model. Slot bounds are stored in
// UTC so range predicates compare consistently on every driver.
func (m *BookingModel) FromDomain(b *bookings.Booking) {
	m.ID = b.ID
	m.ProfileID = b.ProfileID
	m.StartTime = b.StartTime.UTC()
	m.EndTime = b.EndTime.UTC()
	m.Status = string(b.Status)
	m.CalendarEventID = b.CalendarEventID
	m.Notes = b.Notes
	m.DateTimeCreated = b.DateTimeCreated
}

// All returns every model for schema migration.
func All() []any {
	return []any{&ProfileModel{}, &DocumentModel{}, &SignatureModel{}, &BookingModel{}}
}
