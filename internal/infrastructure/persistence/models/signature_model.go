package models

import (
	"time"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/documents"
)

// SignatureModel is the GORM database model for document signatures
type SignatureModel struct {
	ID             string    `gorm:"primaryKey;type:uuid"`
	DocumentID     string    `gorm:"not null;type:uuid;uniqueIndex:idx_signatures_document_profile"`
	DocumentKind   string    `gorm:"not null;type:varchar(16)"`
	ProfileID      string    `gorm:"not null;type:varchar(255);uniqueIndex:idx_signatures_document_profile;index"`
	SignerName     string    `gorm:"not null;type:varchar(255)"`
	IPAddress      string    `gorm:"type:varchar(64)"`
	UserAgent      string    `gorm:"type:varchar(512)"`
	DateTimeSigned time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SignatureModel) TableName() string {
	return "document_signatures"
}

// ToDomain converts GORM model to domain entity
func (m *SignatureModel) ToDomain() *documents.Signature {
	return &documents.Signature{
		ID:             m.ID,
		DocumentID:     m.DocumentID,
		DocumentKind:   documents.Kind(m.DocumentKind),
		ProfileID:      m.ProfileID,
		SignerName:     m.SignerName,
		IPAddress:      m.IPAddress,
		UserAgent:      m.UserAgent,
		DateTimeSigned: m.DateTimeSigned,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SignatureModel) FromDomain(s *documents.Signature) {
	m.ID = s.ID
	m.DocumentID = s.DocumentID
	m.DocumentKind = string(s.DocumentKind)
	m.ProfileID = s.ProfileID
	m.SignerName = s.SignerName
	m.IPAddress = s.IPAddress
	m.UserAgent = s.UserAgent
	m.DateTimeSigned = s.DateTimeSigned
}
