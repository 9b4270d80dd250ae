package models

import (
	"time"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/documents"
)

// DocumentModel is the GORM database model for agreements
type DocumentModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Kind            string    `gorm:"not null;uniqueIndex:idx_documents_kind_version;type:varchar(16)"`
	Title           string    `gorm:"not null;type:varchar(255)"`
	Version         int       `gorm:"not null;uniqueIndex:idx_documents_kind_version"`
	Content         string    `gorm:"not null;type:text"`
	Active          bool      `gorm:"not null;default:false;index"`
	CreatedBy       string    `gorm:"type:varchar(255)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (DocumentModel) TableName() string {
	return "documents"
}

// ToDomain converts GORM model to domain entity
func (m *DocumentModel) ToDomain() *documents.Document {
	return &documents.Document{
		ID:              m.ID,
		Kind:            documents.Kind(m.Kind),
		Title:           m.Title,
		Version:         m.Version,
		Content:         m.Content,
		Active:          m.Active,
		CreatedBy:       m.CreatedBy,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DocumentModel) FromDomain(d *documents.Document) {
	m.ID = d.ID
	m.Kind = string(d.Kind)
	m.Title = d.Title
	m.Version = d.Version
	m.Content = d.Content
	m.Active = d.Active
	m.CreatedBy = d.CreatedBy
	m.DateTimeCreated = d.DateTimeCreated
}
