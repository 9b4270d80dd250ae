package models

import (
	"time"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
)

// ProfileModel is the GORM database model for profiles
type ProfileModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(255)"`
	Email           string    `gorm:"not null;index;type:varchar(255)"`
	FullName        string    `gorm:"type:varchar(255)"`
	Phone           string    `gorm:"type:varchar(50)"`
	Status          string    `gorm:"not null;index;type:varchar(32)"`
	Role            string    `gorm:"not null;default:member;type:varchar(16)"`
	RejectionReason string    `gorm:"type:text"`
	DateTimeCreated time.Time `gorm:"not null;index"`
	DateTimeUpdated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToDomain converts GORM model to domain entity
func (m *ProfileModel) ToDomain() *profiles.Profile {
	return &profiles.Profile{
		ID:              m.ID,
		Email:           m.Email,
		FullName:        m.FullName,
		Phone:           m.Phone,
		Status:          profiles.Status(m.Status),
		Role:            profiles.Role(m.Role),
		RejectionReason: m.RejectionReason,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProfileModel) FromDomain(p *profiles.Profile) {
	m.ID = p.ID
	m.Email = p.Email
	m.FullName = p.FullName
	m.Phone = p.Phone
	m.Status = string(p.Status)
	m.Role = string(p.Role)
	m.RejectionReason = p.RejectionReason
	m.DateTimeCreated = p.DateTimeCreated
	m.DateTimeUpdated = p.DateTimeUpdated
}
